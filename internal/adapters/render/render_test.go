package render_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/Pa04rth/OpenCRE/internal/adapters/render"
	"github.com/Pa04rth/OpenCRE/internal/core/domain"
	"github.com/Pa04rth/OpenCRE/internal/core/ports"
	"github.com/Pa04rth/OpenCRE/internal/engine/forest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleForest(t *testing.T) domain.Forest {
	t.Helper()
	iso := domain.Document{Name: "ISO 27001", Doctype: domain.DoctypeStandard, SectionID: "A.9"}
	grand := domain.Document{ID: "333-333", Name: "Passwords", Doctype: domain.DoctypeCRE}
	child := domain.Document{
		ID: "222-222", Name: "Authentication", Doctype: domain.DoctypeCRE,
		Links: []domain.Link{
			{Ltype: domain.LinkContains, Document: &grand},
			{Ltype: domain.LinkLinkedTo, Document: &iso},
		},
	}
	root := domain.Document{
		ID: "111-111", Name: "Access control", Doctype: domain.DoctypeCRE,
		Links: []domain.Link{{Ltype: domain.LinkContains, Document: &child}},
	}
	f, errs := forest.New(domain.NewStore([]domain.Document{root, child, grand})).BuildForest([]domain.Document{root})
	require.Empty(t, errs)
	return f
}

func TestRenderForest(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, render.New().RenderForest(&buf, sampleForest(t), ports.TreeOptions{}))
	out := buf.String()

	assert.Contains(t, out, "CRE: 111-111: Access control")
	assert.Contains(t, out, "CRE: 222-222: Authentication")
	assert.Contains(t, out, "CRE: 333-333: Passwords")
	assert.Contains(t, out, "Linked To → Standard: ISO 27001: A.9")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "CRE: 111-111"), "root comes first")
}

func TestRenderForest_MaxDepth(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, render.New().RenderForest(&buf, sampleForest(t), ports.TreeOptions{MaxDepth: 1}))
	out := buf.String()

	assert.Contains(t, out, "CRE: 222-222: Authentication (+2)")
	assert.NotContains(t, out, "Passwords")
}

func TestRenderForest_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, render.New().RenderForest(&buf, nil, ports.TreeOptions{}))
	assert.Equal(t, "no documents\n", buf.String())
}

func TestRenderDocument(t *testing.T) {
	t.Parallel()

	asvs := domain.Document{Name: "ASVS", Doctype: domain.DoctypeStandard, Section: "V2", Hyperlink: "https://owasp.org/asvs"}
	parent := domain.Document{ID: "000-001", Name: "Security", Doctype: domain.DoctypeCRE}
	doc := domain.Document{
		ID: "111-111", Name: "Auth", Doctype: domain.DoctypeCRE, Description: "Verify identity.",
		Links: []domain.Link{
			{Ltype: domain.LinkLinkedTo, Document: &asvs},
			{Ltype: domain.LinkIsPartOf, Document: &parent},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, render.New().RenderDocument(&buf, doc))
	out := buf.String()

	assert.Contains(t, out, "CRE: 111-111: Auth\nVerify identity.\n")
	assert.Contains(t, out, "Path: /cre/111-111")
	assert.Contains(t, out, "  Standard: ASVS: V2 https://owasp.org/asvs")
	assert.Less(t, strings.Index(out, "Is Part Of"), strings.Index(out, "Linked To"), "groups follow the link order")
}

func TestRenderResources(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, render.New().RenderResources(&buf, []string{"CRE", "Standard", "Tool"}, domain.ResourceSet{"Tool"}))
	assert.Equal(t, "○ CRE\n○ Standard\n● Tool\n", buf.String())

	buf.Reset()
	require.NoError(t, render.New().RenderResources(&buf, []string{"CRE"}, nil))
	assert.Equal(t, "● CRE\nno filter active\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestRender_WriteFailure(t *testing.T) {
	t.Parallel()

	err := render.New().RenderResources(failingWriter{}, []string{"CRE"}, nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrRenderFailed.Error())
}

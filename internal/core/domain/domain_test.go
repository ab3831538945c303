package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Pa04rth/OpenCRE/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "CRE: 616-305: Development processes",
		domain.DisplayName(domain.Document{ID: "616-305", Name: "Development processes", Doctype: domain.DoctypeCRE}))
	assert.Equal(t, "Standard: ASVS: V1.1: Secure SDLC",
		domain.DisplayName(domain.Document{Name: "ASVS", Doctype: domain.DoctypeStandard, SectionID: "V1.1", Section: "Secure SDLC"}))
	assert.Equal(t, "Tool: ZAP",
		domain.DisplayName(domain.Document{Name: "ZAP", Doctype: "Tool"}))
}

func TestInternalURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/cre/616-305", domain.InternalURL(domain.Document{ID: "616-305", Doctype: domain.DoctypeCRE}))
	assert.Equal(t, "/node/standard/ASVS/sectionid/V1.1",
		domain.InternalURL(domain.Document{Name: "ASVS", Doctype: domain.DoctypeStandard, SectionID: "V1.1", Section: "x"}))
	assert.Equal(t, "/node/standard/NIST%20800-53/section/AC-1",
		domain.InternalURL(domain.Document{Name: "NIST 800-53", Doctype: domain.DoctypeStandard, Section: "AC-1"}))
	assert.Equal(t, "/node/tool/ZAP", domain.InternalURL(domain.Document{Name: "ZAP", Doctype: "Tool"}))
}

func TestDocument_Clone(t *testing.T) {
	t.Parallel()

	target := &domain.Document{Name: "ASVS", Doctype: domain.DoctypeStandard}
	doc := domain.Document{
		ID:      "1",
		Doctype: domain.DoctypeCRE,
		Links:   []domain.Link{{Ltype: domain.LinkLinkedTo, Document: target}, {Ltype: domain.LinkRelated}},
	}

	clone := doc.Clone()
	require.Len(t, clone.Links, 2)
	clone.Links[0].Document.Name = "changed"
	clone.Links[0].Ltype = "changed"

	assert.Equal(t, "ASVS", target.Name)
	assert.Equal(t, domain.LinkLinkedTo, doc.Links[0].Ltype)
	assert.Nil(t, clone.Links[1].Document)
}

func TestNewStore_UniqueKeys(t *testing.T) {
	t.Parallel()

	store := domain.NewStore([]domain.Document{
		{ID: "1", Name: "A", Doctype: domain.DoctypeCRE},
		{ID: "1", Name: "A again", Doctype: domain.DoctypeCRE},
		{Name: "ASVS", Doctype: domain.DoctypeStandard},
	})

	require.Len(t, store, 2)
	assert.Equal(t, "A again", store["1"].Name)
	assert.Equal(t, "CRE: 1: A again", store["1"].DisplayName)
	assert.Equal(t, "/cre/1", store["1"].URL)
	assert.Equal(t, []string{"1", "ASVS"}, store.Keys())
	assert.Equal(t, []string{domain.DoctypeCRE, domain.DoctypeStandard}, store.Doctypes())
}

func TestStore_Digest(t *testing.T) {
	t.Parallel()

	docs := []domain.Document{
		{ID: "1", Name: "A", Doctype: domain.DoctypeCRE},
		{Name: "ASVS", Doctype: domain.DoctypeStandard},
	}
	a := domain.NewStore(docs)
	b := domain.NewStore([]domain.Document{docs[1], docs[0]})

	assert.Empty(t, domain.Store{}.Digest())
	assert.NotEmpty(t, a.Digest())
	assert.Equal(t, a.Digest(), b.Digest())

	c := domain.NewStore(docs[:1])
	assert.NotEqual(t, a.Digest(), c.Digest())
}

func TestApplyResourceFilter(t *testing.T) {
	t.Parallel()

	store := domain.NewStore([]domain.Document{
		{ID: "1", Name: "A", Doctype: domain.DoctypeCRE},
		{Name: "ASVS", Doctype: domain.DoctypeStandard},
		{Name: "ZAP", Doctype: "Tool", SectionID: "1"},
	})

	t.Run("empty selection is a no-op", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, store, domain.ApplyResourceFilter(store, nil))
	})

	t.Run("keeps selected doctypes only", func(t *testing.T) {
		t.Parallel()
		got := domain.ApplyResourceFilter(store, domain.NewResourceSet(domain.DoctypeCRE, "Tool"))
		assert.Equal(t, []string{"1", "ZAP-1-undefined"}, got.Keys())
		assert.Len(t, store, 3, "input store must not be modified")
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()
		sel := domain.NewResourceSet(domain.DoctypeStandard)
		once := domain.ApplyResourceFilter(store, sel)
		twice := domain.ApplyResourceFilter(once, sel)
		assert.Equal(t, once, twice)
	})
}

func TestResourceSet(t *testing.T) {
	t.Parallel()

	set := domain.NewResourceSet("CRE", "", "Standard", "CRE")
	assert.Equal(t, domain.ResourceSet{"CRE", "Standard"}, set)
	assert.True(t, set.Contains("CRE"))
	assert.False(t, set.Contains("Tool"))
	assert.False(t, set.Empty())
	assert.True(t, domain.NewResourceSet().Empty())
	assert.True(t, set.Equal(domain.ResourceSet{"Standard", "CRE"}))
	assert.False(t, set.Equal(domain.ResourceSet{"CRE"}))
}

func TestFilterLinks(t *testing.T) {
	t.Parallel()

	doc := domain.Document{
		ID:      "1",
		Doctype: domain.DoctypeCRE,
		Links: []domain.Link{
			{Ltype: domain.LinkLinkedTo, Document: &domain.Document{Name: "ASVS", Doctype: domain.DoctypeStandard}},
			{Ltype: domain.LinkContains, Document: &domain.Document{ID: "2", Doctype: domain.DoctypeCRE}},
			{Ltype: domain.LinkRelated},
		},
	}

	assert.Equal(t, doc, domain.FilterLinks(doc, nil))

	got := domain.FilterLinks(doc, domain.NewResourceSet(domain.DoctypeStandard))
	require.Len(t, got.Links, 1)
	assert.Equal(t, "ASVS", got.Links[0].Document.Name)
	assert.Len(t, doc.Links, 3)
}

func TestGroupLinks(t *testing.T) {
	t.Parallel()

	doc := domain.Document{
		ID:      "1",
		Doctype: domain.DoctypeCRE,
		Links: []domain.Link{
			{Ltype: "Zeta", Document: &domain.Document{Name: "Z", Doctype: "Tool"}},
			{Ltype: domain.LinkLinkedTo, Document: &domain.Document{Name: "NIST", Doctype: domain.DoctypeStandard}},
			{Ltype: domain.LinkLinkedTo, Document: &domain.Document{Name: "ASVS", Doctype: domain.DoctypeStandard}},
			{Ltype: domain.LinkContains, Document: &domain.Document{ID: "2", Name: "Child", Doctype: domain.DoctypeCRE}},
			{Ltype: "Alpha", Document: &domain.Document{Name: "A", Doctype: "Tool"}},
			{Ltype: domain.LinkRelated},
		},
	}

	groups := domain.GroupLinks(doc)
	types := make([]string, 0, len(groups))
	for _, g := range groups {
		types = append(types, g.Ltype)
	}
	assert.Equal(t, []string{domain.LinkContains, domain.LinkLinkedTo, "Alpha", "Zeta"}, types)
	assert.Equal(t, "ASVS", groups[1].Links[0].Document.Name)
	assert.Equal(t, "NIST", groups[1].Links[1].Document.Name)
}

func TestCacheEntry_Expired(t *testing.T) {
	t.Parallel()

	written := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	entry := domain.NewCacheEntry("v", written, domain.StoreTTL)

	assert.False(t, entry.Expired(written))
	assert.False(t, entry.Expired(written.Add(domain.StoreTTL)))
	assert.True(t, entry.Expired(written.Add(domain.StoreTTL+time.Millisecond)))
}

func TestUpstreamError(t *testing.T) {
	t.Parallel()

	var err error = &domain.UpstreamError{StatusCode: 500, Status: "500 Internal Server Error", URL: "http://x/id/1"}
	assert.True(t, errors.Is(err, domain.ErrUpstream))
	assert.False(t, errors.Is(err, domain.ErrDocumentNotFound))
	assert.Contains(t, err.Error(), "500 Internal Server Error")

	var upstream *domain.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, 500, upstream.StatusCode)
}

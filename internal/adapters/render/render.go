// Package render prints forests, documents and resource lists for a terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/Pa04rth/OpenCRE/internal/core/domain"
	"github.com/Pa04rth/OpenCRE/internal/core/ports"
	"github.com/Pa04rth/OpenCRE/internal/ui/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"go.trai.ch/zerr"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer with lipgloss.
type Renderer struct{}

// New creates a Renderer.
func New() *Renderer {
	return &Renderer{}
}

// palette holds styles bound to one writer, so color support follows that writer.
type palette struct {
	r *lipgloss.Renderer
}

func newPalette(w io.Writer) palette {
	return palette{r: lipgloss.NewRenderer(w)}
}

func (p palette) doctype(doctype string) lipgloss.Style {
	return p.r.NewStyle().Foreground(style.DoctypeColor(doctype))
}

func (p palette) muted() lipgloss.Style {
	return p.r.NewStyle().Foreground(style.Slate)
}

func (p palette) title() lipgloss.Style {
	return p.r.NewStyle().Bold(true).Foreground(style.Iris)
}

// RenderForest prints one tree per root, separated by blank lines.
func (r *Renderer) RenderForest(w io.Writer, forest domain.Forest, opts ports.TreeOptions) error {
	p := newPalette(w)
	if len(forest) == 0 {
		return write(w, p.muted().Render("no documents")+"\n")
	}

	blocks := make([]string, 0, len(forest))
	for _, root := range forest {
		t := tree.Root(p.label(root)).
			Enumerator(tree.RoundedEnumerator).
			EnumeratorStyle(p.muted())
		p.addChildren(t, root, 1, opts.MaxDepth)
		blocks = append(blocks, t.String())
	}
	return write(w, strings.Join(blocks, "\n\n")+"\n")
}

func (p palette) addChildren(t *tree.Tree, node domain.TreeNode, depth, maxDepth int) {
	for _, l := range node.Links {
		child := l.Document
		label := p.label(child)
		if l.Ltype != domain.LinkContains {
			label = p.muted().Render(l.Ltype+" "+style.Arrow) + " " + label
		}

		if len(child.Links) == 0 {
			t.Child(label)
			continue
		}
		if maxDepth > 0 && depth >= maxDepth {
			t.Child(label + p.muted().Render(fmt.Sprintf(" (+%d)", len(child.Links))))
			continue
		}
		sub := tree.Root(label).Enumerator(tree.RoundedEnumerator).EnumeratorStyle(p.muted())
		p.addChildren(sub, child, depth+1, maxDepth)
		t.Child(sub)
	}
}

func (p palette) label(n domain.TreeNode) string {
	name := n.DisplayName
	if name == "" {
		name = n.Key()
	}
	return p.doctype(n.Doctype).Render(name)
}

// RenderDocument prints a document header followed by its links grouped by type.
func (r *Renderer) RenderDocument(w io.Writer, doc domain.Document) error {
	p := newPalette(w)
	var b strings.Builder

	b.WriteString(p.title().Render(domain.DisplayName(doc)) + "\n")
	if doc.Description != "" {
		b.WriteString(doc.Description + "\n")
	}
	if doc.Hyperlink != "" {
		b.WriteString(p.muted().Render("Reference: ") + doc.Hyperlink + "\n")
	}
	b.WriteString(p.muted().Render("Path: ") + domain.InternalURL(doc) + "\n")

	for _, group := range domain.GroupLinks(doc) {
		b.WriteString("\n" + p.r.NewStyle().Bold(true).Render(group.Ltype) + "\n")
		for _, l := range group.Links {
			target := *l.Document
			line := "  " + p.doctype(target.Doctype).Render(domain.DisplayName(target))
			if target.Hyperlink != "" {
				line += " " + p.muted().Render(target.Hyperlink)
			}
			b.WriteString(line + "\n")
		}
	}

	return write(w, b.String())
}

// RenderResources prints every available doctype with a marker for the selected ones.
// An empty selection means every doctype is shown.
func (r *Renderer) RenderResources(w io.Writer, available []string, selected domain.ResourceSet) error {
	p := newPalette(w)
	var b strings.Builder

	for _, doctype := range available {
		marker := p.muted().Render(style.Circle)
		if selected.Empty() || selected.Contains(doctype) {
			marker = p.r.NewStyle().Foreground(style.Green).Render(style.Dot)
		}
		b.WriteString(marker + " " + doctype + "\n")
	}
	if selected.Empty() {
		b.WriteString(p.muted().Render("no filter active") + "\n")
	}

	return write(w, b.String())
}

func write(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return zerr.Wrap(err, domain.ErrRenderFailed.Error())
	}
	return nil
}

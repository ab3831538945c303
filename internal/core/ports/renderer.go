package ports

import (
	"io"

	"github.com/Pa04rth/OpenCRE/internal/core/domain"
)

// TreeOptions controls how a forest is printed.
type TreeOptions struct {
	// MaxDepth limits the printed depth. Zero prints everything.
	MaxDepth int
}

// Renderer prints engine results for a terminal.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// RenderForest prints every tree of the forest.
	RenderForest(w io.Writer, forest domain.Forest, opts TreeOptions) error

	// RenderDocument prints a single document with its links grouped by type.
	RenderDocument(w io.Writer, doc domain.Document) error

	// RenderResources prints a list of doctypes, marking the selected ones.
	RenderResources(w io.Writer, available []string, selected domain.ResourceSet) error
}

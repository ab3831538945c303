package render

import (
	"context"

	"github.com/Pa04rth/OpenCRE/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the renderer Graft node.
const NodeID graft.ID = "adapter.renderer"

func init() {
	graft.Register(graft.Node[ports.Renderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Renderer, error) {
			return New(), nil
		},
	})
}

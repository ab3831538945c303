package backend

import (
	"context"

	"github.com/Pa04rth/OpenCRE/internal/adapters/config"
	"github.com/Pa04rth/OpenCRE/internal/core/domain"
	"github.com/Pa04rth/OpenCRE/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the backend Graft node.
const NodeID graft.ID = "adapter.backend"

func init() {
	graft.Register(graft.Node[ports.Backend]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.Backend, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(cfg.APIURL, Options{
				Timeout: cfg.Backend.Timeout,
				Retries: cfg.Backend.Retries,
			}), nil
		},
	})
}

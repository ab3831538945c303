package config

import (
	"context"
	"os"

	"github.com/Pa04rth/OpenCRE/internal/adapters/logger"
	"github.com/Pa04rth/OpenCRE/internal/core/domain"
	"github.com/Pa04rth/OpenCRE/internal/core/ports"
	"github.com/grindlemire/graft"
	"go.trai.ch/zerr"
)

// NodeID is the unique identifier for the configuration Graft node.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[*domain.Config]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*domain.Config, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			cwd, err := os.Getwd()
			if err != nil {
				return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
			}
			return NewLoader(log).Load(cwd)
		},
	})
}

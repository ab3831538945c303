package store

import (
	"context"

	"github.com/Pa04rth/OpenCRE/internal/adapters/config"
	"github.com/Pa04rth/OpenCRE/internal/adapters/logger"
	"github.com/Pa04rth/OpenCRE/internal/core/domain"
	"github.com/Pa04rth/OpenCRE/internal/core/ports"
	"github.com/grindlemire/graft"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/zerr"
)

// NodeID is the unique identifier for the cache Graft node.
const NodeID graft.ID = "adapter.cache"

func init() {
	graft.Register(graft.Node[ports.Cache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Cache, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg.Cache, clockwork.NewRealClock(), log)
		},
	})
}

// New opens the cache driver selected by cfg.
func New(cfg domain.CacheConfig, clock clockwork.Clock, log ports.Logger) (ports.Cache, error) {
	switch cfg.Driver {
	case domain.CacheDriverFile, "":
		return NewFileCache(cfg.Dir, clock, log), nil
	case domain.CacheDriverBadger:
		return OpenBadgerCache(cfg.Dir, clock, log)
	default:
		return nil, zerr.With(domain.ErrConfigInvalid, "cache.driver", string(cfg.Driver))
	}
}

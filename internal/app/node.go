package app

import (
	"context"
	"errors"
	"io"

	"github.com/Pa04rth/OpenCRE/internal/adapters/backend"
	"github.com/Pa04rth/OpenCRE/internal/adapters/config"
	"github.com/Pa04rth/OpenCRE/internal/adapters/logger"
	"github.com/Pa04rth/OpenCRE/internal/adapters/prefs"
	"github.com/Pa04rth/OpenCRE/internal/adapters/render"
	"github.com/Pa04rth/OpenCRE/internal/adapters/store"
	"github.com/Pa04rth/OpenCRE/internal/adapters/telemetry"
	"github.com/Pa04rth/OpenCRE/internal/adapters/watcher"
	"github.com/Pa04rth/OpenCRE/internal/core/domain"
	"github.com/Pa04rth/OpenCRE/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the components Graft node.
const NodeID graft.ID = "app.components"

// Components holds the resolved application graph.
type Components struct {
	App    *App
	Logger ports.Logger

	closers []func(context.Context) error
}

// Close releases the cache and flushes telemetry.
func (c *Components) Close(ctx context.Context) error {
	var errs []error
	for _, closeFn := range c.closers {
		errs = append(errs, closeFn(ctx))
	}
	return errors.Join(errs...)
}

type logConfigurer interface {
	Configure(cfg domain.LogConfig)
}

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			backend.NodeID,
			store.NodeID,
			prefs.NodeID,
			render.NodeID,
			watcher.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			if l, ok := log.(logConfigurer); ok {
				l.Configure(cfg.Log)
			}
			client, err := graft.Dep[ports.Backend](ctx)
			if err != nil {
				return nil, err
			}
			cache, err := graft.Dep[ports.Cache](ctx)
			if err != nil {
				return nil, err
			}
			preferences, err := graft.Dep[ports.PreferenceStore](ctx)
			if err != nil {
				return nil, err
			}
			renderer, err := graft.Dep[ports.Renderer](ctx)
			if err != nil {
				return nil, err
			}
			w, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}
			provider, err := graft.Dep[*telemetry.Provider](ctx)
			if err != nil {
				return nil, err
			}

			c := &Components{
				App:    New(cfg, client, cache, preferences, renderer, w, log),
				Logger: log,
			}
			if closer, ok := cache.(io.Closer); ok {
				c.closers = append(c.closers, func(context.Context) error { return closer.Close() })
			}
			c.closers = append(c.closers, provider.Shutdown)
			return c, nil
		},
	})
}

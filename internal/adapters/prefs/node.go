package prefs

import (
	"context"

	"github.com/Pa04rth/OpenCRE/internal/adapters/config"
	"github.com/Pa04rth/OpenCRE/internal/core/domain"
	"github.com/Pa04rth/OpenCRE/internal/core/ports"
	"github.com/grindlemire/graft"
	"github.com/jonboulle/clockwork"
)

// NodeID is the unique identifier for the preference store Graft node.
const NodeID graft.ID = "adapter.preferences"

func init() {
	graft.Register(graft.Node[ports.PreferenceStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.PreferenceStore, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg.Preferences.Dir, cfg.Preferences.TTL, clockwork.NewRealClock()), nil
		},
	})
}

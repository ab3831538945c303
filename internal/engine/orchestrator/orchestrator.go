// Package orchestrator keeps the document store and root forest in sync
// with the backend, the cache and the resource selection.
package orchestrator

import (
	"context"
	"sync"

	"github.com/Pa04rth/OpenCRE/internal/core/domain"
	"github.com/Pa04rth/OpenCRE/internal/core/ports"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/singleflight"
)

var tracer = otel.Tracer("github.com/Pa04rth/OpenCRE/internal/engine/orchestrator")

const (
	// historyLimit caps the update log.
	historyLimit = 256
	// maxForestPasses bounds how often a forest discarded as stale is recomputed in one Sync.
	maxForestPasses = 3
)

// Source loads and caches snapshots. It is implemented by *loader.Loader.
type Source interface {
	LoadAllDocuments(ctx context.Context) (domain.Store, bool)
	LoadRootDocuments(ctx context.Context, store domain.Store) (domain.Forest, []domain.Document, bool)
	Materialize(store domain.Store, roots []domain.Document) domain.Forest
	CachedStore() (domain.Store, bool)
	CachedForest(store domain.Store) (domain.Forest, []domain.Document, bool)
	Invalidate() error
}

// Orchestrator is the single owner of State.
type Orchestrator struct {
	source Source
	logger ports.Logger
	group  singleflight.Group

	mu      sync.Mutex
	state   State
	base    domain.Store
	roots   []domain.Document
	subs    map[int]chan State
	nextSub int
	history []Transition
}

// New creates an Orchestrator with an empty state.
func New(source Source, logger ports.Logger) *Orchestrator {
	return &Orchestrator{
		source: source,
		logger: logger,
		subs:   make(map[int]chan State),
	}
}

// Snapshot returns the current state.
func (o *Orchestrator) Snapshot() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// History returns the update log, oldest first.
func (o *Orchestrator) History() []Transition {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]Transition(nil), o.history...)
}

// Subscribe returns a channel that receives the state after every transition.
// A slow subscriber only sees the most recent state. cancel closes the channel.
func (o *Orchestrator) Subscribe() (<-chan State, func()) {
	o.mu.Lock()
	defer o.mu.Unlock()

	id := o.nextSub
	o.nextSub++
	ch := make(chan State, 1)
	o.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			o.mu.Lock()
			defer o.mu.Unlock()
			delete(o.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

// Start seeds the selection read at startup. The pipeline only loads
// documents once the selection is known.
func (o *Orchestrator) Start(selected domain.ResourceSet) {
	o.Dispatch(SetSelectedResources{Resources: selected})
}

// Dispatch applies an action. It does not load anything; call Sync to
// bring the state up to date afterwards.
func (o *Orchestrator) Dispatch(action Action) {
	switch a := action.(type) {
	case SetSelectedResources:
		o.mu.Lock()
		o.state.Selected = domain.NewResourceSet(a.Resources...)
		o.state.SelectedKnown = true
		if len(o.base) > 0 {
			o.replaceStore(domain.ApplyResourceFilter(o.base, o.state.Selected))
		}
		o.commit(a.reason())
		o.mu.Unlock()
	case Invalidate:
		if err := o.source.Invalidate(); err != nil {
			o.logger.Error(err)
		}
		o.mu.Lock()
		o.base = nil
		o.roots = nil
		o.replaceStore(nil)
		o.commit(a.reason())
		o.mu.Unlock()
	}
}

// Sync runs the load pipeline until the state is settled and returns it.
// Concurrent calls share one pipeline run. The run is detached from the
// cancellation of whichever caller started it; a caller whose ctx ends
// early gets the current, possibly still loading, state.
func (o *Orchestrator) Sync(ctx context.Context) State {
	ch := o.group.DoChan("sync", func() (any, error) {
		o.run(context.WithoutCancel(ctx))
		return o.Snapshot(), nil
	})
	select {
	case res := <-ch:
		return res.Val.(State)
	case <-ctx.Done():
		return o.Snapshot()
	}
}

func (o *Orchestrator) run(ctx context.Context) {
	ctx, span := tracer.Start(ctx, "orchestrator.Sync")
	defer span.End()

	o.ensureStore(ctx)
	for range maxForestPasses {
		if !o.ensureForest(ctx) {
			break
		}
	}

	s := o.Snapshot()
	span.SetAttributes(
		attribute.Int("store", len(s.Store)),
		attribute.Int("forest", len(s.Forest)),
		attribute.Int64("revision", int64(s.Revision)),
	)
}

// ensureStore populates the unfiltered store once the selection is known.
func (o *Orchestrator) ensureStore(ctx context.Context) {
	o.mu.Lock()
	if len(o.base) > 0 || !o.state.SelectedKnown {
		o.mu.Unlock()
		return
	}
	o.setLoading(true, "loading documents")
	o.mu.Unlock()

	ctx, span := tracer.Start(ctx, "orchestrator.loadAll")
	base, ok := o.source.CachedStore()
	span.SetAttributes(attribute.Bool("cached", ok))
	if !ok {
		base, ok = o.source.LoadAllDocuments(ctx)
	}
	span.End()

	o.mu.Lock()
	defer o.mu.Unlock()
	if ok {
		o.base = base
		o.replaceStore(domain.ApplyResourceFilter(base, o.state.Selected))
	}
	o.setLoading(false, "documents loaded")
}

// ensureForest materializes the forest of a non-empty store. It reports
// true when the result was discarded because the store changed meanwhile.
func (o *Orchestrator) ensureForest(ctx context.Context) bool {
	o.mu.Lock()
	if len(o.state.Store) == 0 || len(o.state.Forest) > 0 {
		o.mu.Unlock()
		return false
	}
	store, revision, roots := o.state.Store, o.state.Revision, o.roots
	o.setLoading(true, "loading roots")
	o.mu.Unlock()

	ctx, span := tracer.Start(ctx, "orchestrator.loadRoots")
	forest, cachedRoots, ok := o.source.CachedForest(store)
	if !ok && roots == nil {
		roots = cachedRoots
	}
	switch {
	case ok:
		roots = cachedRoots
		span.SetAttributes(attribute.String("source", "cache"))
	case roots != nil:
		forest, ok = o.source.Materialize(store, roots), true
		span.SetAttributes(attribute.String("source", "local"))
	default:
		forest, roots, ok = o.source.LoadRootDocuments(ctx, store)
		span.SetAttributes(attribute.String("source", "backend"))
	}
	span.End()

	o.mu.Lock()
	defer o.mu.Unlock()
	if ok {
		o.roots = roots
	}
	stale := ok && revision != o.state.Revision
	if ok && !stale {
		o.state.Forest = forest
	}
	if stale {
		o.logger.Debug("discarding forest built from a replaced store")
	}
	o.setLoading(false, "roots loaded")
	return stale
}

// replaceStore swaps the store and invalidates the forest derived from it.
// o.mu must be held.
func (o *Orchestrator) replaceStore(store domain.Store) {
	o.state.Store = store
	o.state.Forest = nil
	o.state.Revision++
}

// setLoading records a loading transition. o.mu must be held.
func (o *Orchestrator) setLoading(loading bool, reason string) {
	o.state.Loading = loading
	o.commit(reason)
}

// commit logs the current state and publishes it. o.mu must be held.
func (o *Orchestrator) commit(reason string) {
	o.history = append(o.history, Transition{Reason: reason, State: o.state})
	if len(o.history) > historyLimit {
		o.history = o.history[len(o.history)-historyLimit:]
	}
	for _, ch := range o.subs {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- o.state:
		default:
		}
	}
}

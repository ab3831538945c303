// Package app implements the application layer for cre.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/Pa04rth/OpenCRE/internal/adapters/prefs"
	"github.com/Pa04rth/OpenCRE/internal/adapters/watcher"
	"github.com/Pa04rth/OpenCRE/internal/core/domain"
	"github.com/Pa04rth/OpenCRE/internal/core/ports"
	"github.com/Pa04rth/OpenCRE/internal/engine/loader"
	"github.com/Pa04rth/OpenCRE/internal/engine/orchestrator"
	"go.trai.ch/zerr"
)

// DefaultDebounce is the quiet window applied to preference file events.
const DefaultDebounce = 200 * time.Millisecond

// App represents the main application logic.
type App struct {
	backend  ports.Backend
	cache    ports.Cache
	prefs    ports.PreferenceStore
	renderer ports.Renderer
	watcher  ports.Watcher
	logger   ports.Logger
	loader   *loader.Loader
	orch     *orchestrator.Orchestrator
	out      io.Writer
	debounce time.Duration

	renderMu sync.Mutex
}

// New creates a new App instance.
func New(
	cfg *domain.Config,
	backend ports.Backend,
	cache ports.Cache,
	store ports.PreferenceStore,
	renderer ports.Renderer,
	w ports.Watcher,
	log ports.Logger,
) *App {
	l := loader.New(backend, cache, log, cfg.Backend.PerPage, cfg.Cache.TTL)
	return &App{
		backend:  backend,
		cache:    cache,
		prefs:    store,
		renderer: renderer,
		watcher:  w,
		logger:   log,
		loader:   l,
		orch:     orchestrator.New(l, log),
		out:      os.Stdout,
		debounce: DefaultDebounce,
	}
}

// WithOutput redirects rendered output to w.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// WithDebounce changes the quiet window used by Watch.
func (a *App) WithDebounce(d time.Duration) *App {
	a.debounce = d
	return a
}

// Orchestrator exposes the state container driving the app.
func (a *App) Orchestrator() *orchestrator.Orchestrator {
	return a.orch
}

// BrowseOptions configuration for the Browse and Watch methods.
type BrowseOptions struct {
	// Root limits the output to the tree of one root key.
	Root string
	// Depth limits the printed depth. Zero prints everything.
	Depth int
}

// Browse loads the document graph and prints the root forest.
func (a *App) Browse(ctx context.Context, opts BrowseOptions) error {
	a.orch.Start(a.loadSelection())
	state := a.orch.Sync(ctx)
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(state.Store) == 0 {
		return domain.ErrNoDocuments
	}
	return a.renderForest(state, opts)
}

// ShowOptions configuration for the Show method.
type ShowOptions struct {
	// AllLinks disables the resource filter on the document's links.
	AllLinks bool
}

// Show fetches a single document and prints it with its grouped links.
func (a *App) Show(ctx context.Context, id string, opts ShowOptions) error {
	doc, err := a.backend.DocumentByID(ctx, id)
	if err != nil {
		return zerr.With(err, "id", id)
	}
	if !opts.AllLinks {
		doc = domain.FilterLinks(doc, a.loadSelection())
	}
	return a.renderer.RenderDocument(a.out, doc)
}

// SelectOptions configuration for the Select method.
type SelectOptions struct {
	// Clear removes the stored selection.
	Clear bool
}

// Select stores the doctypes to include in the tree and prints the result.
// Without doctypes and without Clear it only prints the current selection.
func (a *App) Select(ctx context.Context, doctypes []string, opts SelectOptions) error {
	switch {
	case opts.Clear:
		if err := a.prefs.Save(domain.NewResourceSet()); err != nil {
			return err
		}
		a.logger.Info("resource filter cleared")
	case len(doctypes) > 0:
		selected := domain.NewResourceSet(doctypes...)
		if err := a.prefs.Save(selected); err != nil {
			return err
		}
		a.logger.Info(fmt.Sprintf("selected %s", strings.Join(selected, ", ")))
	}
	return a.Resources(ctx)
}

// Resources prints the selectable doctypes and marks the selected ones.
// When the backend is unavailable the doctypes of the cached store are used.
func (a *App) Resources(ctx context.Context) error {
	available, err := a.backend.Resources(ctx)
	if err != nil {
		store, ok := a.loader.CachedStore()
		if !ok {
			return err
		}
		a.logger.Warn("backend unavailable, listing doctypes of the cached documents")
		available = store.Doctypes()
	}
	return a.renderer.RenderResources(a.out, available, a.loadSelection())
}

// Clean drops every cached snapshot. Preferences are kept.
func (a *App) Clean(_ context.Context) error {
	a.orch.Dispatch(orchestrator.Invalidate{})
	if err := a.cache.Clear(); err != nil {
		return err
	}
	a.logger.Info("cache cleared")
	return nil
}

// Watch prints the forest and prints it again every time the stored
// selection changes. It returns when ctx is canceled.
func (a *App) Watch(ctx context.Context, opts BrowseOptions) error {
	updates, cancel := a.orch.Subscribe()
	traced := make(chan struct{})
	go func() {
		defer close(traced)
		a.traceTransitions(updates)
	}()
	defer func() {
		cancel()
		<-traced
	}()

	a.orch.Start(a.loadSelection())
	if err := a.renderState(a.orch.Sync(ctx), opts); err != nil {
		return err
	}

	if err := a.watcher.Start(ctx, a.prefs.Path()); err != nil {
		return zerr.Wrap(err, domain.ErrWatcherFailed.Error())
	}
	defer func() {
		if err := a.watcher.Stop(); err != nil {
			a.logger.Error(err)
		}
	}()

	debouncer := watcher.NewDebouncer(a.debounce, func(_ []string) {
		a.reload(ctx, opts)
	})
	defer debouncer.Stop()

	for event := range a.watcher.Events() {
		if filepath.Base(event.Path) != prefs.FileName {
			continue
		}
		debouncer.Add(event.Path)
	}
	return nil
}

// reload applies a changed selection and prints the new forest.
func (a *App) reload(ctx context.Context, opts BrowseOptions) {
	if ctx.Err() != nil {
		return
	}
	selected := a.loadSelection()
	if selected.Equal(a.orch.Snapshot().Selected) {
		return
	}
	if selected.Empty() {
		a.logger.Info("resource filter cleared")
	} else {
		a.logger.Info(fmt.Sprintf("selection changed to %s", strings.Join(selected, ", ")))
	}
	a.orch.Dispatch(orchestrator.SetSelectedResources{Resources: selected})
	if err := a.renderState(a.orch.Sync(ctx), opts); err != nil {
		a.logger.Error(err)
	}
}

func (a *App) traceTransitions(updates <-chan orchestrator.State) {
	for state := range updates {
		if state.Loading {
			a.logger.Debug(fmt.Sprintf("loading (revision %d)", state.Revision))
		}
	}
}

// renderState prints the forest of state, or warns when nothing is loaded.
func (a *App) renderState(state orchestrator.State, opts BrowseOptions) error {
	if len(state.Store) == 0 {
		a.logger.Warn(domain.ErrNoDocuments.Error())
		return nil
	}
	return a.renderForest(state, opts)
}

func (a *App) renderForest(state orchestrator.State, opts BrowseOptions) error {
	forest := state.Forest
	if opts.Root != "" {
		root, ok := forest.Find(opts.Root)
		if !ok {
			return zerr.With(domain.ErrRootNotFound, "root", opts.Root)
		}
		forest = domain.Forest{root}
	}

	a.renderMu.Lock()
	defer a.renderMu.Unlock()
	return a.renderer.RenderForest(a.out, forest, ports.TreeOptions{MaxDepth: opts.Depth})
}

// loadSelection reads the stored selection. A failed read selects everything.
func (a *App) loadSelection() domain.ResourceSet {
	selected, err := a.prefs.Load()
	if err != nil {
		a.logger.Error(err)
		return domain.NewResourceSet()
	}
	return selected
}

// Package loader fetches the document graph and keeps its snapshots cached.
package loader

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Pa04rth/OpenCRE/internal/adapters/telemetry"
	"github.com/Pa04rth/OpenCRE/internal/core/domain"
	"github.com/Pa04rth/OpenCRE/internal/core/ports"
	"github.com/Pa04rth/OpenCRE/internal/engine/forest"
	"github.com/Pa04rth/OpenCRE/internal/engine/snapshot"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.trai.ch/zerr"
)

var tracer = otel.Tracer("github.com/Pa04rth/OpenCRE/internal/engine/loader")

// maxPages bounds pagination against a backend that keeps reporting more pages.
const maxPages = 10_000

// Loader populates the Store and the root forest from the backend.
// Transport failures are logged and reported as "no change"; they are never returned.
type Loader struct {
	backend ports.Backend
	cache   ports.Cache
	logger  ports.Logger
	perPage int
	ttl     time.Duration
}

// New creates a Loader. A non-positive perPage or ttl selects the default.
func New(backend ports.Backend, cache ports.Cache, logger ports.Logger, perPage int, ttl time.Duration) *Loader {
	if perPage <= 0 {
		perPage = domain.DefaultPerPage
	}
	if ttl <= 0 {
		ttl = domain.StoreTTL
	}
	return &Loader{backend: backend, cache: cache, logger: logger, perPage: perPage, ttl: ttl}
}

// LoadAllDocuments fetches the full document listing, builds a fresh Store
// and persists it. It returns false if the listing failed or was empty.
func (l *Loader) LoadAllDocuments(ctx context.Context) (domain.Store, bool) {
	ctx, span := tracer.Start(ctx, "loader.LoadAllDocuments")
	defer span.End()

	var docs []domain.Document
	for page := 1; page <= maxPages; page++ {
		p, err := l.backend.AllDocuments(ctx, page, l.perPage)
		if err != nil {
			telemetry.RecordFailure(span, err)
			l.logger.Error(zerr.With(zerr.Wrap(err, "failed to load documents"), "page", page))
			return nil, false
		}
		docs = append(docs, p.Documents...)
		if p.TotalPages <= page || len(p.Documents) == 0 {
			break
		}
	}

	if len(docs) == 0 {
		l.logger.Warn("backend returned no documents")
		return nil, false
	}

	for _, doc := range docs {
		if domain.KeyIsAmbiguous(doc) {
			l.logger.Warn(fmt.Sprintf("document %q has neither section nor section id; its key %q may collide",
				doc.Name, domain.Key(doc)))
		}
	}

	store := domain.NewStore(docs)
	span.SetAttributes(attribute.Int("documents", len(docs)), attribute.Int("records", len(store)))

	if err := snapshot.Write(l.cache, domain.DataStoreKey, store, l.ttl); err != nil {
		l.logger.Error(err)
	}
	l.logger.Debug("loaded " + strconv.Itoa(len(store)) + " documents")

	return store, true
}

// LoadRootDocuments fetches the root documents, materializes one tree per
// root against store and persists the forest. It returns false if the
// request failed.
func (l *Loader) LoadRootDocuments(ctx context.Context, store domain.Store) (domain.Forest, []domain.Document, bool) {
	ctx, span := tracer.Start(ctx, "loader.LoadRootDocuments")
	defer span.End()

	roots, err := l.backend.RootDocuments(ctx)
	if err != nil {
		telemetry.RecordFailure(span, err)
		l.logger.Error(zerr.Wrap(err, "failed to load root documents"))
		return nil, nil, false
	}
	span.SetAttributes(attribute.Int("roots", len(roots)))

	f := l.Materialize(store, roots)

	snap := domain.ForestSnapshot{StoreDigest: store.Digest(), Roots: roots, Forest: f}
	if err := snapshot.Write(l.cache, domain.RecordTreeKey, snap, l.ttl); err != nil {
		l.logger.Error(err)
	}

	return f, roots, true
}

// Materialize builds the forest for already fetched roots without any request.
// Roots missing from store are skipped.
func (l *Loader) Materialize(store domain.Store, roots []domain.Document) domain.Forest {
	f, errs := forest.New(store).BuildForest(roots)
	for _, err := range errs {
		l.logger.Debug("skipping root: " + err.Error())
	}
	return f
}

// CachedStore returns the persisted Store, if one is cached.
func (l *Loader) CachedStore() (domain.Store, bool) {
	store, ok := snapshot.Read[domain.Store](l.cache, domain.DataStoreKey)
	if !ok || len(store) == 0 {
		return nil, false
	}
	return store, true
}

// CachedForest returns the persisted forest if it was derived from store.
// The roots of the snapshot are returned even when the forest is rejected,
// so the caller can rebuild it without fetching them again.
func (l *Loader) CachedForest(store domain.Store) (domain.Forest, []domain.Document, bool) {
	snap, ok := snapshot.Read[domain.ForestSnapshot](l.cache, domain.RecordTreeKey)
	if !ok {
		return nil, nil, false
	}
	if len(snap.Forest) == 0 || snap.StoreDigest != store.Digest() {
		l.logger.Debug("ignoring cached forest built from a different store")
		return nil, snap.Roots, false
	}
	return snap.Forest, snap.Roots, true
}

// Invalidate drops both persisted snapshots.
func (l *Loader) Invalidate() error {
	if err := l.cache.Delete(domain.DataStoreKey); err != nil {
		return err
	}
	return l.cache.Delete(domain.RecordTreeKey)
}

// Package prefs persists the user's resource selection.
package prefs

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/Pa04rth/OpenCRE/internal/core/domain"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/zerr"
)

// FileName is the name of the selection file inside the preferences directory.
const FileName = domain.SelectedResourcesKey + ".json"

// Store implements ports.PreferenceStore with a single JSON file.
// It lives apart from the TTL cache, so clearing the cache keeps the selection.
type Store struct {
	dir   string
	ttl   time.Duration
	clock clockwork.Clock
}

// New creates a Store in dir. A non-positive ttl selects domain.PreferencesTTL.
func New(dir string, ttl time.Duration, clock clockwork.Clock) *Store {
	if ttl <= 0 {
		ttl = domain.PreferencesTTL
	}
	return &Store{dir: dir, ttl: ttl, clock: clock}
}

// Path returns the preferences directory.
func (s *Store) Path() string {
	return s.dir
}

// Load returns the stored selection. A missing or expired file is an empty selection.
func (s *Store) Load() (domain.ResourceSet, error) {
	filename := filepath.Join(s.dir, FileName)
	//nolint:gosec // Path is constructed from the configured directory
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.ResourceSet{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPreferencesReadFailed.Error()), "path", filename)
	}

	var entry domain.CacheEntry[[]string]
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPreferencesReadFailed.Error()), "path", filename)
	}
	if entry.Expired(s.clock.Now()) {
		return domain.ResourceSet{}, nil
	}
	return domain.NewResourceSet(entry.Value...), nil
}

// Save replaces the stored selection and restarts its lifetime.
func (s *Store) Save(selected domain.ResourceSet) error {
	values := []string(domain.NewResourceSet(selected...))
	data, err := json.MarshalIndent(domain.NewCacheEntry(values, s.clock.Now(), s.ttl), "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrPreferencesWriteFailed.Error())
	}

	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPreferencesWriteFailed.Error()), "dir", s.dir)
	}

	filename := filepath.Join(s.dir, FileName)
	tmp := filename + ".tmp"
	//nolint:gosec // Path is constructed from the configured directory
	if err := os.WriteFile(tmp, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPreferencesWriteFailed.Error()), "path", filename)
	}
	if err := os.Rename(tmp, filename); err != nil {
		_ = os.Remove(tmp)
		return zerr.With(zerr.Wrap(err, domain.ErrPreferencesWriteFailed.Error()), "path", filename)
	}
	return nil
}

package ports

import "github.com/Pa04rth/OpenCRE/internal/core/domain"

// PreferenceStore persists the user's selected resources independently of the cache.
//
//go:generate mockgen -source=preferences.go -destination=mocks/mock_preferences.go -package=mocks
type PreferenceStore interface {
	// Load returns the stored selection, or an empty set if none is stored.
	Load() (domain.ResourceSet, error)

	// Save replaces the stored selection.
	Save(selected domain.ResourceSet) error

	// Path returns the directory the preferences are stored in.
	Path() string
}

package domain

import (
	"path/filepath"
	"time"
)

const (
	// DataStoreKey is the cache key of the Store snapshot.
	DataStoreKey = "data-store"

	// RecordTreeKey is the cache key of the forest snapshot.
	RecordTreeKey = "record-tree"

	// SelectedResourcesKey is the preference key of the selected doctypes.
	SelectedResourcesKey = "selectedResources"

	// StoreTTL is the lifetime of the Store and forest snapshots.
	StoreTTL = 2 * 24 * time.Hour

	// PreferencesTTL is the lifetime of stored preferences.
	PreferencesTTL = 365 * 24 * time.Hour

	// DefaultPerPage is the page size of the full document listing.
	DefaultPerPage = 1000

	// DefaultAPIURL is the public OpenCRE REST API.
	DefaultAPIURL = "https://opencre.org/rest/v1"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "cre.yaml"

	// CreDirName is the name of the local state directory.
	CreDirName = ".cre"

	// CacheDirName is the name of the TTL cache directory.
	CacheDirName = "cache"

	// PreferencesDirName is the name of the preferences directory.
	PreferencesDirName = "preferences"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCachePath returns the default TTL cache directory.
// It joins .cre and cache.
func DefaultCachePath() string {
	return filepath.Join(CreDirName, CacheDirName)
}

// DefaultPreferencesPath returns the default preferences directory.
// It joins .cre and preferences.
func DefaultPreferencesPath() string {
	return filepath.Join(CreDirName, PreferencesDirName)
}

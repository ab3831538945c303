package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrDocumentNotFound is returned when the backend has no document with the requested ID.
	ErrDocumentNotFound = zerr.New("CRE does not exist in the DB, please check your search parameters")

	// ErrUpstream is returned when the backend answers with an unexpected status.
	ErrUpstream = zerr.New("unexpected backend response")

	// ErrBackendRequestFailed is returned when a backend request cannot be sent or read.
	ErrBackendRequestFailed = zerr.New("backend request failed")

	// ErrBackendDecodeFailed is returned when a backend response body cannot be decoded.
	ErrBackendDecodeFailed = zerr.New("failed to decode backend response")

	// ErrDocumentNotInStore is returned when a tree is built from a document
	// that is not a member of the store.
	ErrDocumentNotInStore = zerr.New("document is not in the store")

	// ErrNoDocuments is returned when no documents could be loaded from the cache or the backend.
	ErrNoDocuments = zerr.New("no documents available, check the API URL and your connection")

	// ErrRootNotFound is returned when a requested root is not part of the forest.
	ErrRootNotFound = zerr.New("root document not found in forest")

	// ErrCacheCreateFailed is returned when the cache directory cannot be created.
	ErrCacheCreateFailed = zerr.New("failed to create cache directory")

	// ErrCacheOpenFailed is returned when the cache database cannot be opened.
	ErrCacheOpenFailed = zerr.New("failed to open cache")

	// ErrCacheWriteFailed is returned when a cache entry cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write cache entry")

	// ErrCacheMarshalFailed is returned when a cache value cannot be encoded.
	ErrCacheMarshalFailed = zerr.New("failed to marshal cache entry")

	// ErrCacheDeleteFailed is returned when cache entries cannot be removed.
	ErrCacheDeleteFailed = zerr.New("failed to delete cache entry")

	// ErrPreferencesReadFailed is returned when stored preferences cannot be read.
	ErrPreferencesReadFailed = zerr.New("failed to read preferences")

	// ErrPreferencesWriteFailed is returned when preferences cannot be saved.
	ErrPreferencesWriteFailed = zerr.New("failed to write preferences")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when a config value is out of range.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrWatcherFailed is returned when the preference watcher cannot start.
	ErrWatcherFailed = zerr.New("failed to watch preferences")

	// ErrRenderFailed is returned when output cannot be written.
	ErrRenderFailed = zerr.New("failed to render output")
)

// UpstreamError carries a non-2xx backend response other than 404.
type UpstreamError struct {
	StatusCode int
	Status     string
	URL        string
	Body       string
}

// Error implements error.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %s returned %s", ErrUpstream.Error(), e.URL, e.Status)
}

// Is makes errors.Is(err, ErrUpstream) hold for every UpstreamError.
func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}

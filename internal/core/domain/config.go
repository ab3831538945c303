package domain

import "time"

// CacheDriver selects the implementation of the TTL cache.
type CacheDriver string

const (
	// CacheDriverFile stores one JSON file per cache key.
	CacheDriverFile CacheDriver = "file"
	// CacheDriverBadger stores entries in a badger database.
	CacheDriverBadger CacheDriver = "badger"
)

// LogFormat selects the log handler.
type LogFormat string

const (
	// LogFormatPretty prints colored human readable logs.
	LogFormatPretty LogFormat = "pretty"
	// LogFormatJSON prints one JSON object per log line.
	LogFormatJSON LogFormat = "json"
)

// Config is the resolved runtime configuration.
type Config struct {
	APIURL      string
	Cache       CacheConfig
	Preferences PreferencesConfig
	Backend     BackendConfig
	Log         LogConfig
}

// CacheConfig configures the TTL cache.
type CacheConfig struct {
	Driver CacheDriver
	Dir    string
	TTL    time.Duration
}

// PreferencesConfig configures the long-lived preference store.
type PreferencesConfig struct {
	Dir string
	TTL time.Duration
}

// BackendConfig configures the HTTP backend client.
type BackendConfig struct {
	PerPage int
	Timeout time.Duration
	Retries int
}

// LogConfig configures logging.
type LogConfig struct {
	Format LogFormat
	Level  string
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{
		APIURL: DefaultAPIURL,
		Cache: CacheConfig{
			Driver: CacheDriverFile,
			Dir:    DefaultCachePath(),
			TTL:    StoreTTL,
		},
		Preferences: PreferencesConfig{
			Dir: DefaultPreferencesPath(),
			TTL: PreferencesTTL,
		},
		Backend: BackendConfig{
			PerPage: DefaultPerPage,
			Timeout: 30 * time.Second,
		},
		Log: LogConfig{
			Format: LogFormatPretty,
			Level:  "info",
		},
	}
}

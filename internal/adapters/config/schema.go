package config

// File represents the structure of the cre.yaml configuration file.
// Durations are strings accepted by time.ParseDuration, plus a "d" suffix for days.
type File struct {
	APIURL      string         `yaml:"api_url"`
	Cache       CacheDTO       `yaml:"cache"`
	Preferences PreferencesDTO `yaml:"preferences"`
	Backend     BackendDTO     `yaml:"backend"`
	Log         LogDTO         `yaml:"log"`
}

// CacheDTO is the cache section of the configuration file.
type CacheDTO struct {
	Driver string `yaml:"driver"`
	Dir    string `yaml:"dir"`
	TTL    string `yaml:"ttl"`
}

// PreferencesDTO is the preferences section of the configuration file.
type PreferencesDTO struct {
	Dir string `yaml:"dir"`
	TTL string `yaml:"ttl"`
}

// BackendDTO is the backend section of the configuration file.
type BackendDTO struct {
	PerPage int    `yaml:"per_page"`
	Timeout string `yaml:"timeout"`
	Retries *int   `yaml:"retries"`
}

// LogDTO is the log section of the configuration file.
type LogDTO struct {
	Format string `yaml:"format"`
	Level  string `yaml:"level"`
}

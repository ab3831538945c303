// Package config provides the configuration loader for cre.
package config

import (
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/Pa04rth/OpenCRE/internal/core/domain"
	"github.com/Pa04rth/OpenCRE/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the configuration file.
const (
	EnvAPIURL      = "CRE_API_URL"
	EnvCacheDriver = "CRE_CACHE_DRIVER"
	EnvCacheDir    = "CRE_CACHE_DIR"
	EnvLogFormat   = "CRE_LOG_FORMAT"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Loader resolves the runtime configuration.
type Loader struct {
	Logger ports.Logger
	// Getenv looks up environment overrides. It defaults to os.Getenv.
	Getenv func(string) string
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, Getenv: os.Getenv}
}

// Load finds cre.yaml in cwd or one of its parents and merges it over the
// defaults. Without a file the defaults apply. Relative directories are
// resolved against the directory of the file, or cwd when there is none.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()
	base := cwd

	path, found := findConfiguration(cwd)
	if found {
		l.Logger.Debug("using configuration " + path)
		file, err := readFile(path)
		if err != nil {
			return nil, err
		}
		if err := apply(&cfg, file); err != nil {
			return nil, zerr.With(err, "path", path)
		}
		base = filepath.Dir(path)
	}

	l.applyEnv(&cfg)

	cfg.Cache.Dir = resolveDir(base, cfg.Cache.Dir)
	cfg.Preferences.Dir = resolveDir(base, cfg.Preferences.Dir)

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

func readFile(path string) (*File, error) {
	// #nosec G304 -- path is discovered by walking up from the working directory
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}
	return &file, nil
}

func apply(cfg *domain.Config, file *File) error {
	if file.APIURL != "" {
		cfg.APIURL = file.APIURL
	}
	if file.Cache.Driver != "" {
		cfg.Cache.Driver = domain.CacheDriver(file.Cache.Driver)
	}
	if file.Cache.Dir != "" {
		cfg.Cache.Dir = file.Cache.Dir
	}
	if err := applyDuration(&cfg.Cache.TTL, file.Cache.TTL, "cache.ttl"); err != nil {
		return err
	}
	if file.Preferences.Dir != "" {
		cfg.Preferences.Dir = file.Preferences.Dir
	}
	if err := applyDuration(&cfg.Preferences.TTL, file.Preferences.TTL, "preferences.ttl"); err != nil {
		return err
	}
	if file.Backend.PerPage != 0 {
		cfg.Backend.PerPage = file.Backend.PerPage
	}
	if err := applyDuration(&cfg.Backend.Timeout, file.Backend.Timeout, "backend.timeout"); err != nil {
		return err
	}
	if file.Backend.Retries != nil {
		cfg.Backend.Retries = *file.Backend.Retries
	}
	if file.Log.Format != "" {
		cfg.Log.Format = domain.LogFormat(file.Log.Format)
	}
	if file.Log.Level != "" {
		cfg.Log.Level = strings.ToLower(file.Log.Level)
	}
	return nil
}

func applyDuration(dst *time.Duration, value, field string) error {
	if value == "" {
		return nil
	}
	d, err := ParseDuration(value)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigInvalid.Error()), "field", field)
	}
	*dst = d
	return nil
}

// ParseDuration parses a time.ParseDuration string or a whole number of days such as "365d".
func ParseDuration(value string) (time.Duration, error) {
	if days, ok := strings.CutSuffix(value, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil {
			return 0, err
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}
	return time.ParseDuration(value)
}

func (l *Loader) applyEnv(cfg *domain.Config) {
	getenv := l.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	if v := getenv(EnvAPIURL); v != "" {
		cfg.APIURL = v
	}
	if v := getenv(EnvCacheDriver); v != "" {
		cfg.Cache.Driver = domain.CacheDriver(v)
	}
	if v := getenv(EnvCacheDir); v != "" {
		cfg.Cache.Dir = v
	}
	if v := getenv(EnvLogFormat); v != "" {
		cfg.Log.Format = domain.LogFormat(v)
	}
}

func resolveDir(base, dir string) string {
	if dir == "" || filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(base, dir)
}

func validate(cfg *domain.Config) error {
	u, err := url.Parse(cfg.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return zerr.With(domain.ErrConfigInvalid, "api_url", cfg.APIURL)
	}
	switch cfg.Cache.Driver {
	case domain.CacheDriverFile, domain.CacheDriverBadger:
	default:
		return zerr.With(domain.ErrConfigInvalid, "cache.driver", string(cfg.Cache.Driver))
	}
	if cfg.Cache.TTL <= 0 {
		return zerr.With(domain.ErrConfigInvalid, "cache.ttl", cfg.Cache.TTL.String())
	}
	if cfg.Preferences.TTL <= 0 {
		return zerr.With(domain.ErrConfigInvalid, "preferences.ttl", cfg.Preferences.TTL.String())
	}
	if cfg.Cache.Dir == cfg.Preferences.Dir {
		return zerr.With(domain.ErrConfigInvalid, "preferences.dir", cfg.Preferences.Dir)
	}
	if cfg.Backend.PerPage <= 0 {
		return zerr.With(domain.ErrConfigInvalid, "backend.per_page", cfg.Backend.PerPage)
	}
	if cfg.Backend.Timeout < 0 {
		return zerr.With(domain.ErrConfigInvalid, "backend.timeout", cfg.Backend.Timeout.String())
	}
	if cfg.Backend.Retries < 0 {
		return zerr.With(domain.ErrConfigInvalid, "backend.retries", cfg.Backend.Retries)
	}
	switch cfg.Log.Format {
	case domain.LogFormatPretty, domain.LogFormatJSON:
	default:
		return zerr.With(domain.ErrConfigInvalid, "log.format", string(cfg.Log.Format))
	}
	if !slices.Contains(logLevels, cfg.Log.Level) {
		return zerr.With(domain.ErrConfigInvalid, "log.level", cfg.Log.Level)
	}
	return nil
}

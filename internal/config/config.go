package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	// Host is the container runtime endpoint. Empty means the
	// DOCKER_HOST environment (or the platform default socket).
	Host string `yaml:"host"`

	// LogTail is how many log lines a single fetch requests.
	LogTail int `yaml:"log_tail"`

	// RefreshSeconds is the cadence of the full data refresh.
	RefreshSeconds int `yaml:"refresh_seconds"`
}

const (
	DefaultLogTail        = 200
	DefaultRefreshSeconds = 2
)

// Load reads the configuration file at path, or the default location
// when path is empty. A missing file yields defaults, not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Host:           hostFromEnv(),
		LogTail:        DefaultLogTail,
		RefreshSeconds: DefaultRefreshSeconds,
	}

	if path == "" {
		path = defaultPath()
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.LogTail <= 0 {
		cfg.LogTail = DefaultLogTail
	}
	if cfg.RefreshSeconds <= 0 {
		cfg.RefreshSeconds = DefaultRefreshSeconds
	}
	return cfg, nil
}

// RefreshInterval returns the full-refresh cadence as a duration.
func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshSeconds) * time.Second
}

func hostFromEnv() string {
	if host, ok := os.LookupEnv("DOCKER_HOST"); ok {
		return host
	}
	return ""
}

func defaultPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "lazydock", "config.yaml")
	}
	return ""
}

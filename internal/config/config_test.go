package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load returned error for missing file: %v", err)
	}
	if cfg.LogTail != DefaultLogTail {
		t.Errorf("Expected default log tail %d, got %d", DefaultLogTail, cfg.LogTail)
	}
	if cfg.RefreshSeconds != DefaultRefreshSeconds {
		t.Errorf("Expected default refresh %d, got %d", DefaultRefreshSeconds, cfg.RefreshSeconds)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "host: tcp://remote:2375\nlog_tail: 50\nrefresh_seconds: 5\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Host != "tcp://remote:2375" {
		t.Errorf("Expected host 'tcp://remote:2375', got '%s'", cfg.Host)
	}
	if cfg.LogTail != 50 {
		t.Errorf("Expected log tail 50, got %d", cfg.LogTail)
	}
	if cfg.RefreshInterval() != 5*time.Second {
		t.Errorf("Expected 5s refresh interval, got %v", cfg.RefreshInterval())
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("{not yaml::"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected error for malformed config")
	}
}

func TestLoadClampsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("log_tail: -1\nrefresh_seconds: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.LogTail != DefaultLogTail || cfg.RefreshSeconds != DefaultRefreshSeconds {
		t.Errorf("Expected defaults for invalid values, got tail=%d refresh=%d", cfg.LogTail, cfg.RefreshSeconds)
	}
}

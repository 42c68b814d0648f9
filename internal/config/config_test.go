package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/loom-ui/loom/internal/errors"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != DefaultPort || cfg.Server.Host != DefaultHost {
		t.Errorf("defaults not applied: %+v", cfg.Server)
	}
	if cfg.FrameInterval() != DefaultFrameInterval {
		t.Errorf("FrameInterval() = %v, want %v", cfg.FrameInterval(), DefaultFrameInterval)
	}
}

func TestLoadFileOverridesAndDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	data := `{
  "name": "demo",
  "server": {"port": 8080},
  "frame": {"intervalMillis": 8},
  "dev": {"debugHooks": true},
  "metrics": {"enabled": true}
}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Name != "demo" {
		t.Errorf("Name = %q, want demo", cfg.Name)
	}
	if cfg.Addr() != "localhost:8080" {
		t.Errorf("Addr() = %q, want localhost:8080", cfg.Addr())
	}
	if cfg.FrameInterval() != 8*time.Millisecond {
		t.Errorf("FrameInterval() = %v, want 8ms", cfg.FrameInterval())
	}
	if !cfg.Dev.DebugHooks {
		t.Error("Dev.DebugHooks not read")
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Path != "/metrics" {
		t.Errorf("metrics defaults not filled: %+v", cfg.Metrics)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q, want %q", cfg.Path(), path)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(dir)
	if err == nil {
		t.Fatal("Load() succeeded on invalid JSON")
	}
	e, ok := err.(*errors.Error)
	if !ok || e.Code != "E006" {
		t.Errorf("error = %v, want *errors.Error with code E006", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(c *Config) {}, false},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }, true},
		{"negative interval", func(c *Config) { c.Frame.IntervalMillis = -1 }, true},
		{"bad timeout", func(c *Config) { c.Server.ReadTimeout = "soon" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)

	cfg := New()
	cfg.Name = "saved"
	cfg.Server.Port = 4000
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if loaded.Name != "saved" || loaded.Server.Port != 4000 {
		t.Errorf("round trip lost data: %+v", loaded)
	}
}

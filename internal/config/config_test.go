package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg == nil {
		t.Fatal("Default() returned nil")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
	if cfg.Colors.NColors != 5 {
		t.Errorf("Expected 5 default colors, got %d", cfg.Colors.NColors)
	}
	if cfg.Loader.ResizeSize != 250 {
		t.Errorf("Expected resize size 250, got %d", cfg.Loader.ResizeSize)
	}
	if cfg.Runtime.Workers != 4 {
		t.Errorf("Expected 4 default workers, got %d", cfg.Runtime.Workers)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero colors", func(c *Config) { c.Colors.NColors = 0 }},
		{"too many colors", func(c *Config) { c.Colors.NColors = 100 }},
		{"negative min area", func(c *Config) { c.Colors.MinAreaPercentage = -1 }},
		{"min area above 100", func(c *Config) { c.Colors.MinAreaPercentage = 101 }},
		{"zero iterations", func(c *Config) { c.Colors.MaxIterations = 0 }},
		{"negative resize", func(c *Config) { c.Loader.ResizeSize = -1 }},
		{"zero workers", func(c *Config) { c.Runtime.Workers = 0 }},
		{"zero batch size", func(c *Config) { c.Runtime.BatchSize = 0 }},
		{"zero timeout", func(c *Config) { c.Runtime.ImageTimeoutSeconds = 0 }},
		{"bad backend", func(c *Config) { c.Labeling.Backend = "gpt" }},
		{"bad send quality", func(c *Config) { c.Labeling.SendQuality = 0 }},
	}

	for _, tc := range cases {
		cfg := Default()
		tc.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("Case %q should fail validation", tc.name)
		}
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := Default()
	cfg.Colors.NColors = 8
	cfg.Runtime.Workers = 2
	cfg.Labeling.Backend = "llamacpp"

	if err := cfg.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile failed: %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if loaded.Colors.NColors != 8 {
		t.Errorf("Expected 8 colors, got %d", loaded.Colors.NColors)
	}
	if loaded.Runtime.Workers != 2 {
		t.Errorf("Expected 2 workers, got %d", loaded.Runtime.Workers)
	}
	if loaded.Labeling.Backend != "llamacpp" {
		t.Errorf("Expected llamacpp backend, got %s", loaded.Labeling.Backend)
	}
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.json")
	if err := os.WriteFile(path, []byte(`{"colors":{"n_colors":3}}`), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if loaded.Colors.NColors != 3 {
		t.Errorf("Expected overridden n_colors 3, got %d", loaded.Colors.NColors)
	}
	if loaded.Runtime.Workers != 4 {
		t.Errorf("Expected default workers 4, got %d", loaded.Runtime.Workers)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected an error for a missing config file")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	if _, err := LoadFromFile(path); err == nil {
		t.Error("Expected an error for invalid JSON")
	}
}

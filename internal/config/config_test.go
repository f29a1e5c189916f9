package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if err := cfg.ValidateField(24); err != nil {
		t.Fatalf("default config does not fit 24 rows: %v", err)
	}
}

func TestValidateRejectsBrokenConfigs(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero gravity", func(c *Config) { c.Physics.Gravity = 0 }},
		{"upward gravity", func(c *Config) { c.Physics.Gravity = -0.5 }},
		{"downward impulse", func(c *Config) { c.Physics.FlapImpulse = 1.0 }},
		{"zero max fall speed", func(c *Config) { c.Physics.MaxFallSpeed = 0 }},
		{"zero scroll speed", func(c *Config) { c.Physics.ScrollSpeed = 0 }},
		{"zero obstacle width", func(c *Config) { c.Obstacles.Width = 0 }},
		{"zero spacing", func(c *Config) { c.Obstacles.Spacing = 0 }},
		{"zero gap", func(c *Config) { c.Obstacles.GapHeight = 0 }},
		{"negative margin", func(c *Config) { c.Obstacles.TopMargin = -1 }},
		{"zero radius", func(c *Config) { c.Body.Radius = 0 }},
		{"body outside field", func(c *Config) { c.Body.X = 0.5 }},
		{"body larger than gap", func(c *Config) { c.Body.Radius = 6 }},
	}

	for _, tc := range cases {
		cfg := Default()
		tc.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: Validate() accepted a broken config", tc.name)
		}
	}
}

func TestValidateFieldRejectsUnwinnableGeometry(t *testing.T) {
	cfg := Default()
	cfg.Obstacles.GapHeight = 30

	if err := cfg.ValidateField(24); err == nil {
		t.Error("gap taller than the playfield should be rejected")
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	// Run from a temp dir so no local configs/ shadows the embedded file.
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded default invalid: %v", err)
	}
	if cfg.Physics.Gravity != Default().Physics.Gravity {
		t.Errorf("gravity = %v, want %v", cfg.Physics.Gravity, Default().Physics.Gravity)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("physics:\n  gravity: 0.5\n  flap_impulse: -2.0\n  max_fall_speed: 4.0\n  scroll_speed: 1.0\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.5 {
		t.Errorf("gravity = %v, want 0.5", cfg.Physics.Gravity)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing custom config should be an error, not a silent fallback")
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := Default()

	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset: enabled=%v level=%v", cfg.Difficulty.Enabled, cfg.Difficulty.InitialLevel)
	}

	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

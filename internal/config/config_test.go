package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/ballsim/internal/balls"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Balls != DefaultBalls {
		t.Errorf("expected %d balls, got %d", DefaultBalls, cfg.Balls)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
	if p, _ := cfg.Policy(); p != balls.BoundaryIndependent {
		t.Errorf("expected independent policy, got %v", p)
	}
}

func TestPresetsValid(t *testing.T) {
	for _, name := range ListPresets() {
		cfg := GetPreset(name)
		if cfg == nil {
			t.Fatalf("preset %s missing", name)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
		if cfg.Name != name {
			t.Errorf("preset %s has name %q", name, cfg.Name)
		}
	}
}

func TestGetPreset_Copy(t *testing.T) {
	cfg := GetPreset("sparse")
	cfg.Balls = 1

	if Presets["sparse"].Balls == 1 {
		t.Error("GetPreset returned shared preset")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"negative balls", func(c *Config) { c.Balls = -1 }},
		{"zero diameter", func(c *Config) { c.Diameter = 0 }},
		{"negative steps", func(c *Config) { c.Steps = -5 }},
		{"zero sample", func(c *Config) { c.SampleEvery = 0 }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"unknown boundary", func(c *Config) { c.Boundary = "sticky" }},
		{"field too small", func(c *Config) { c.Field = FieldConfig{Right: 30, Bottom: 30}; c.Balls = 10 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestLoadRejectsZeroFPS(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, []byte("fps: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid for fps 0, got %v", err)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	data := []byte("balls: 12\nboundary: ordered\nfield:\n  right: 200\n  bottom: 100\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Balls != 12 || cfg.Field.Right != 200 || cfg.Field.Bottom != 100 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Diameter != DefaultDiameter {
		t.Errorf("expected default diameter, got %d", cfg.Diameter)
	}
	if p, _ := cfg.Policy(); p != balls.BoundaryOrdered {
		t.Errorf("expected ordered policy, got %v", p)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	cfg := GetPreset("crowd")
	cfg.Seed = 1234

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *got != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, cfg)
	}
}

func TestNewSimulation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 8
	cfg.Boundary = "ordered"

	s, err := cfg.NewSimulation()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != cfg.Balls {
		t.Errorf("expected %d balls, got %d", cfg.Balls, s.Len())
	}
	if s.Policy() != balls.BoundaryOrdered {
		t.Errorf("expected ordered policy, got %v", s.Policy())
	}

	again, _ := cfg.NewSimulation()
	if s.Ball(0) != again.Ball(0) {
		t.Error("same seed produced different placement")
	}
}

package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseFlappy(defaultFlappyYAML)
	if err != nil {
		t.Fatalf("ParseFlappy(embedded) failed: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Errorf("embedded defaults differ from DefaultFlappyConfig():\n%+v\n%+v", cfg, DefaultFlappyConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultFlappyConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestParseFlappyPartialOverride(t *testing.T) {
	cfg, err := ParseFlappy([]byte(`
physics:
  gravity: 0.5
  tick_interval: 20ms
obstacles:
  count: 4
`))
	if err != nil {
		t.Fatalf("ParseFlappy() failed: %v", err)
	}

	if cfg.Physics.Gravity != 0.5 {
		t.Errorf("Gravity = %v, expected 0.5", cfg.Physics.Gravity)
	}
	if cfg.Physics.TickInterval != 20*time.Millisecond {
		t.Errorf("TickInterval = %s, expected 20ms", cfg.Physics.TickInterval)
	}
	if cfg.Obstacles.Count != 4 {
		t.Errorf("Count = %d, expected 4", cfg.Obstacles.Count)
	}
	// Untouched keys keep defaults
	if cfg.Physics.JumpImpulse != -8 {
		t.Errorf("JumpImpulse = %v, expected default -8", cfg.Physics.JumpImpulse)
	}
	if cfg.Obstacles.GapHeight != 200 {
		t.Errorf("GapHeight = %v, expected default 200", cfg.Obstacles.GapHeight)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlappyConfig)
	}{
		{"zero gap height", func(c *FlappyConfig) { c.Obstacles.GapHeight = 0 }},
		{"negative gap height", func(c *FlappyConfig) { c.Obstacles.GapHeight = -10 }},
		{"zero obstacle count", func(c *FlappyConfig) { c.Obstacles.Count = 0 }},
		{"zero pipe width", func(c *FlappyConfig) { c.Obstacles.Width = 0 }},
		{"zero spacing", func(c *FlappyConfig) { c.Obstacles.Spacing = 0 }},
		{"zero speed", func(c *FlappyConfig) { c.Obstacles.Speed = 0 }},
		{"empty gap range", func(c *FlappyConfig) { c.Obstacles.MaxGapOffset = c.Obstacles.MinGapOffset }},
		{"negative gap offset", func(c *FlappyConfig) { c.Obstacles.MinGapOffset = -1 }},
		{"zero tick interval", func(c *FlappyConfig) { c.Physics.TickInterval = 0 }},
		{"zero world", func(c *FlappyConfig) { c.World.Height = 0 }},
		{"zero avatar width", func(c *FlappyConfig) { c.Player.HalfWidth = 0 }},
		{"start outside world", func(c *FlappyConfig) { c.Player.StartY = 900 }},
		{"negative tilt clamp", func(c *FlappyConfig) { c.Player.MaxTiltVelocity = -1 }},
		{"nan jump impulse", func(c *FlappyConfig) { c.Physics.JumpImpulse = math.NaN() }},
		{"infinite player x", func(c *FlappyConfig) { c.Player.X = math.Inf(1) }},
		{"nan tilt degrees", func(c *FlappyConfig) { c.Player.TiltDegrees = math.NaN() }},
		{"infinite start x", func(c *FlappyConfig) { c.Obstacles.StartX = math.Inf(-1) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error should wrap ErrInvalid, got %v", err)
			}
		})
	}
}

func TestParseFlappyRejectsNonFinite(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"nan gravity", "physics:\n  gravity: .nan\n"},
		{"infinite gravity", "physics:\n  gravity: .inf\n"},
		{"negative infinite gravity", "physics:\n  gravity: -.inf\n"},
		{"nan speed", "obstacles:\n  speed: .nan\n"},
		{"infinite speed", "obstacles:\n  speed: .inf\n"},
		{"nan gap height", "obstacles:\n  gap_height: .nan\n"},
		{"infinite gap height", "obstacles:\n  gap_height: .inf\n"},
		{"infinite world", "world:\n  width: .inf\n"},
		{"nan tilt clamp", "player:\n  max_tilt_velocity: .nan\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseFlappy([]byte(tc.yaml))
			if err == nil {
				t.Fatal("ParseFlappy() should fail")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error should wrap ErrInvalid, got %v", err)
			}
		})
	}
}

func TestLoadFlappyCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	if err := os.WriteFile(path, []byte("obstacles:\n  speed: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}
	if cfg.Obstacles.Speed != 7 {
		t.Errorf("Speed = %v, expected 7", cfg.Obstacles.Speed)
	}
}

func TestLoadFlappyCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFlappy(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadFlappy() should fail for a missing custom file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("obstacles:\n  gap_height: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFlappy(bad)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("LoadFlappy() should reject invalid config with ErrInvalid, got %v", err)
	}
}

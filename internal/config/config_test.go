package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(DefaultYAML()) failed: %v", err)
	}

	want := DefaultFlappyConfig()
	want.Source = ""
	if cfg != want {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *FlappyConfig)
		valid  bool
	}{
		{"defaults", func(c *FlappyConfig) {}, true},
		{"exact fit", func(c *FlappyConfig) { c.Field.Height = 250 }, true},
		{"gap plus margins too tall", func(c *FlappyConfig) { c.Field.Height = 249 }, false},
		{"zero margin", func(c *FlappyConfig) { c.Obstacles.MinMargin = 0 }, true},
		{"negative margin", func(c *FlappyConfig) { c.Obstacles.MinMargin = -1 }, false},
		{"zero width", func(c *FlappyConfig) { c.Field.Width = 0 }, false},
		{"zero tick rate", func(c *FlappyConfig) { c.Field.TickRate = 0 }, false},
		{"zero spawn interval", func(c *FlappyConfig) { c.Obstacles.SpawnInterval = 0 }, false},
		{"zero player size", func(c *FlappyConfig) { c.Player.Size = 0 }, false},
		{"zero gap", func(c *FlappyConfig) { c.Obstacles.GapHeight = 0 }, false},
		{"stopped obstacles", func(c *FlappyConfig) { c.Obstacles.Speed = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	doc := `
field: {width: 300, height: 400, tick_rate: 30}
physics: {gravity: 1, impulse_velocity: -12}
player: {x: 40, size: 20}
obstacles: {width: 50, gap_height: 120, speed: 4, spawn_interval: 45, min_margin: 40}
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Field.Height != 400 || cfg.Obstacles.SpawnInterval != 45 || cfg.Physics.Gravity != 1 {
		t.Errorf("Load() did not read the custom file: %+v", cfg)
	}
	if cfg.Source != path {
		t.Errorf("Source = %q, expected %q", cfg.Source, path)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	doc := "field: {width: 400, height: 100, tick_rate: 60}\nplayer: {size: 30}\nobstacles: {width: 60, gap_height: 150, speed: 3, spawn_interval: 90, min_margin: 50}\n"
	if err := os.WriteFile(bad, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() = %v, expected ErrInvalidConfig", err)
	}
}

func TestLoadSearchPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Source != "embedded" {
		t.Errorf("Source = %q, expected embedded", cfg.Source)
	}

	userDir := filepath.Join(home, HomeDir, "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	custom := DefaultFlappyConfig()
	custom.Obstacles.Speed = 5
	data, err := Marshal(custom)
	if err != nil {
		t.Fatal(err)
	}
	userFile := filepath.Join(userDir, "flappy.yaml")
	if err := os.WriteFile(userFile, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Source != userFile || cfg.Obstacles.Speed != 5 {
		t.Errorf("Load() = %+v from %q, expected user file", cfg.Obstacles, cfg.Source)
	}
}

func TestForTickRate(t *testing.T) {
	base := DefaultFlappyConfig()

	if same := base.ForTickRate(60); same != base {
		t.Error("ForTickRate at the design rate should be a no-op")
	}

	half := base.ForTickRate(30)
	if half.Field.TickRate != 30 {
		t.Errorf("TickRate = %d, expected 30", half.Field.TickRate)
	}
	if half.Obstacles.SpawnInterval != 45 {
		t.Errorf("SpawnInterval = %d, expected 45", half.Obstacles.SpawnInterval)
	}
	if half.Obstacles.Speed != 6 {
		t.Errorf("Speed = %g, expected 6", half.Obstacles.Speed)
	}
	if half.Physics.Gravity != 2 {
		t.Errorf("Gravity = %g, expected 2", half.Physics.Gravity)
	}
	if half.Physics.ImpulseVelocity != -20 {
		t.Errorf("ImpulseVelocity = %g, expected -20", half.Physics.ImpulseVelocity)
	}
	if err := half.Validate(); err != nil {
		t.Errorf("retuned config should stay valid: %v", err)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandHome("~/.flappy/replays.db")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, ".flappy", "replays.db"); got != want {
		t.Errorf("ExpandHome() = %q, expected %q", got, want)
	}

	if got, _ := ExpandHome("rel/path.db"); got != "rel/path.db" {
		t.Errorf("relative paths should be unchanged, got %q", got)
	}
}

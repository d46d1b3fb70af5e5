package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	for _, id := range []string{CookieRunID, DonutChaseID} {
		t.Run(id, func(t *testing.T) {
			loaded, err := Load(id, "")
			if err != nil {
				t.Fatalf("Load(%q) failed: %v", id, err)
			}
			want, _ := DefaultFor(id)
			if !reflect.DeepEqual(loaded, want) {
				t.Errorf("embedded YAML diverges from hardcoded default:\n got  %+v\n want %+v", loaded, want)
			}
			if err := loaded.Validate(); err != nil {
				t.Errorf("default config should validate: %v", err)
			}
		})
	}
}

func TestLoadUnknownGame(t *testing.T) {
	if _, err := Load("pong", ""); err == nil {
		t.Error("Load should fail for an unknown game")
	}
}

func TestLoadCustomPathOverridesPartially(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("spawn:\n  obstacle_period: 10\n  obstacle_kinds: [gap]\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(CookieRunID, path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Spawn.ObstaclePeriod != 10 {
		t.Errorf("obstacle_period = %d, expected 10", cfg.Spawn.ObstaclePeriod)
	}
	if !reflect.DeepEqual(cfg.Spawn.ObstacleKinds, []string{KindGap}) {
		t.Errorf("obstacle_kinds = %v, expected [gap]", cfg.Spawn.ObstacleKinds)
	}
	if cfg.Spawn.CollectiblePeriod != 30 {
		t.Errorf("unset fields should keep defaults, collectible_period = %d", cfg.Spawn.CollectiblePeriod)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := Load(CookieRunID, filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Load should fail for a missing explicit path")
	}
	if !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".cookierun", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := []byte("pursuit:\n  initial_gap: 200\n")
	if err := os.WriteFile(filepath.Join(dir, "donutchase.yaml"), data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(DonutChaseID, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Pursuit.InitialGap != 200 {
		t.Errorf("initial_gap = %v, expected 200 from user config", cfg.Pursuit.InitialGap)
	}
	if !cfg.Pursuit.Enabled {
		t.Error("pursuit should stay enabled from defaults")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunnerConfig)
		valid  bool
	}{
		{"defaults", func(*RunnerConfig) {}, true},
		{"zero gravity", func(c *RunnerConfig) { c.Physics.Gravity = 0 }, false},
		{"zero period", func(c *RunnerConfig) { c.Spawn.ObstaclePeriod = 0 }, false},
		{"unknown kind", func(c *RunnerConfig) { c.Spawn.ObstacleKinds = []string{"lava"} }, false},
		{"no heights", func(c *RunnerConfig) { c.Spawn.CollectibleHeights = nil }, false},
		{"inverted band", func(c *RunnerConfig) { c.Collision.BandMin, c.Collision.BandMax = 80, 20 }, false},
		{"lives without count", func(c *RunnerConfig) { c.Lives = RunnerLives{Enabled: true} }, false},
		{"inverted pursuit", func(c *RunnerConfig) {
			c.Pursuit = RunnerPursuit{Enabled: true, CatchGap: 600, EscapeGap: 50}
		}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultCookieRunConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tc.valid && err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestCheckCustomPath(t *testing.T) {
	dir := t.TempDir()
	valid := filepath.Join(dir, "valid.yaml")
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(valid, []byte("physics:\n  speed: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(invalid, []byte("spawn:\n  obstacle_period: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		ids     []string
		wantErr bool
	}{
		{"no path", "", nil, false},
		{"valid for all", valid, nil, false},
		{"valid for one", valid, []string{DonutChaseID}, false},
		{"missing file", filepath.Join(dir, "missing.yaml"), nil, true},
		{"invalid values", invalid, []string{CookieRunID}, true},
		{"unknown game", valid, []string{"pong"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Check(tc.path, tc.ids...)
			if (err != nil) != tc.wantErr {
				t.Errorf("Check(%q, %v) error = %v, wantErr %v", tc.path, tc.ids, err, tc.wantErr)
			}
		})
	}
}

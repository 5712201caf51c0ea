package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default differs from Default():\n%+v\n%+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "maze:\n  width: 7\n  algorithm: sidewinder\nserver:\n  idle_timeout: 5m\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Maze.Width != 7 || cfg.Maze.Algorithm != "sidewinder" {
		t.Errorf("custom values not applied: %+v", cfg.Maze)
	}
	if cfg.Maze.Height != Default().Maze.Height {
		t.Errorf("missing keys should keep defaults, height = %d", cfg.Maze.Height)
	}
	if cfg.Server.IdleTimeout != 5*time.Minute {
		t.Errorf("IdleTimeout = %v, expected 5m", cfg.Server.IdleTimeout)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("maze: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() should fail for malformed YAML")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("maze:\n  width: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil {
		t.Error("Load() should reject a zero width")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"default", func(*Config) {}, ""},
		{"negative height", func(c *Config) { c.Maze.Height = -1 }, "maze size"},
		{"empty algorithm", func(c *Config) { c.Maze.Algorithm = "" }, "algorithm"},
		{"long wall", func(c *Config) { c.Render.Wall = "##" }, "render.wall"},
		{"empty player", func(c *Config) { c.Render.Player = "" }, "render.player"},
		{"unicode wall", func(c *Config) { c.Render.Wall = "█" }, ""},
		{"no api cells", func(c *Config) { c.HTTP.MaxCells = 0 }, "http.max_cells"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestRune(t *testing.T) {
	if r := Rune("█", '#'); r != '█' {
		t.Errorf("Rune() = %q", r)
	}
	if r := Rune("", '#'); r != '#' {
		t.Errorf("Rune(\"\") = %q, expected fallback", r)
	}
}

func TestSizePresets(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		fixed         bool
	}{
		{"small", 10, 6, true},
		{"medium", 20, 10, true},
		{"large", 40, 20, true},
		{"fit", 0, 0, false},
	}

	for _, tc := range tests {
		p, err := ParseSizePreset(tc.name)
		if err != nil {
			t.Fatalf("ParseSizePreset(%q) failed: %v", tc.name, err)
		}
		w, h, ok := p.Dimensions()
		if w != tc.width || h != tc.height || ok != tc.fixed {
			t.Errorf("%s.Dimensions() = (%d, %d, %v)", tc.name, w, h, ok)
		}

		cfg := Default()
		ApplySizePreset(&cfg, p)
		if tc.fixed && (cfg.Maze.Width != tc.width || cfg.Maze.Height != tc.height) {
			t.Errorf("ApplySizePreset(%s) = %dx%d", tc.name, cfg.Maze.Width, cfg.Maze.Height)
		}
		if !tc.fixed && cfg.Maze != Default().Maze {
			t.Errorf("ApplySizePreset(%s) should not change the maze config", tc.name)
		}
	}

	if _, err := ParseSizePreset("huge"); err == nil {
		t.Error("ParseSizePreset(huge) should fail")
	}
}

func TestFitDimensions(t *testing.T) {
	w, h := FitDimensions(80, 24, 2)
	if w != 39 || h != 10 {
		t.Errorf("FitDimensions(80, 24, 2) = (%d, %d), expected (39, 10)", w, h)
	}
	w, h = FitDimensions(1, 1, 5)
	if w != 1 || h != 1 {
		t.Errorf("tiny terminal should still give a 1x1 maze, got (%d, %d)", w, h)
	}
}

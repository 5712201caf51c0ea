// Package config provides YAML-based configuration loading for gridkit:
// default maze dimensions and generator, rendering runes and colors,
// storage location, SSH server and HTTP API settings.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

// Config is the root of the configuration file.
type Config struct {
	Maze    MazeConfig    `yaml:"maze"`
	Render  RenderConfig  `yaml:"render"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	HTTP    HTTPConfig    `yaml:"http"`
}

// MazeConfig defines how new mazes are generated.
type MazeConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Algorithm string `yaml:"algorithm"`
	Seed      int64  `yaml:"seed"` // 0 means use current time
}

// RenderConfig defines the characters and colors used for drawing.
// Each rune field must hold exactly one character.
type RenderConfig struct {
	Wall        string `yaml:"wall"`
	Floor       string `yaml:"floor"`
	Path        string `yaml:"path"`
	Player      string `yaml:"player"`
	Goal        string `yaml:"goal"`
	WallColor   string `yaml:"wall_color"`
	PathColor   string `yaml:"path_color"`
	PlayerColor string `yaml:"player_color"`
	GoalColor   string `yaml:"goal_color"`
}

// StorageConfig defines where saved mazes live.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// HTTPConfig defines the JSON and WebSocket API server.
type HTTPConfig struct {
	Address  string `yaml:"address"`
	MaxCells int    `yaml:"max_cells"` // largest maze the API will generate
}

// Validate checks the configuration for values no command can work with.
func (c Config) Validate() error {
	var errs []error
	if c.Maze.Width < 1 || c.Maze.Height < 1 {
		errs = append(errs, fmt.Errorf("maze size must be positive, got %dx%d", c.Maze.Width, c.Maze.Height))
	}
	if c.Maze.Algorithm == "" {
		errs = append(errs, errors.New("maze algorithm is empty"))
	}
	if c.HTTP.MaxCells < 1 {
		errs = append(errs, fmt.Errorf("http.max_cells must be positive, got %d", c.HTTP.MaxCells))
	}
	runes := map[string]string{
		"wall":   c.Render.Wall,
		"floor":  c.Render.Floor,
		"path":   c.Render.Path,
		"player": c.Render.Player,
		"goal":   c.Render.Goal,
	}
	for name, s := range runes {
		if utf8.RuneCountInString(s) != 1 {
			errs = append(errs, fmt.Errorf("render.%s must be a single character, got %q", name, s))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// Rune returns the first rune of s, or fallback if s is empty.
func Rune(s string, fallback rune) rune {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return fallback
	}
	return r
}

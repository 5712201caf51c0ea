package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/gridkit.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Maze: MazeConfig{
			Width:     20,
			Height:    10,
			Algorithm: "backtracker",
		},
		Render: RenderConfig{
			Wall:        "#",
			Floor:       " ",
			Path:        ".",
			Player:      "@",
			Goal:        "X",
			WallColor:   "gray",
			PathColor:   "yellow",
			PlayerColor: "cyan",
			GoalColor:   "green",
		},
		Storage: StorageConfig{
			DBPath: "~/.gridkit/mazes.db",
		},
		Server: ServerConfig{
			Address:     ":23235",
			IdleTimeout: 30 * time.Minute,
		},
		HTTP: HTTPConfig{
			Address:  ":8427",
			MaxCells: 10000,
		},
	}
}

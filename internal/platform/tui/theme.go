package tui

import (
	"github.com/vovakirdan/gridkit/internal/config"
	"github.com/vovakirdan/gridkit/internal/maze"
	"github.com/vovakirdan/gridkit/internal/render"
)

// Theme holds the runes and colors for the walker view.
type Theme struct {
	Maze        maze.Style
	Player      rune
	Goal        rune
	PlayerColor render.Color
	GoalColor   render.Color
}

// DefaultTheme returns the theme of the built-in configuration.
func DefaultTheme() Theme {
	return ThemeFromConfig(config.Default().Render)
}

// ThemeFromConfig builds a theme from the render section of the config.
func ThemeFromConfig(rc config.RenderConfig) Theme {
	def := maze.DefaultStyle()
	return Theme{
		Maze: maze.Style{
			Wall:      config.Rune(rc.Wall, def.Wall),
			Floor:     config.Rune(rc.Floor, def.Floor),
			Path:      config.Rune(rc.Path, def.Path),
			WallColor: render.ParseColor(rc.WallColor),
			PathColor: render.ParseColor(rc.PathColor),
		},
		Player:      config.Rune(rc.Player, '@'),
		Goal:        config.Rune(rc.Goal, 'X'),
		PlayerColor: render.ParseColor(rc.PlayerColor),
		GoalColor:   render.ParseColor(rc.GoalColor),
	}
}

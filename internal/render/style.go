package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridkit/pkg/grid"
)

// Color represents a foreground color for a canvas cell.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
)

// colorStyles maps Color to lipgloss styles using ANSI codes.
var colorStyles = map[Color]lipgloss.Style{
	ColorDefault: lipgloss.NewStyle(),
	ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// ParseColor maps a color name from config to a Color.
// Unknown names map to ColorDefault.
func ParseColor(name string) Color {
	switch strings.ToLower(name) {
	case "red":
		return ColorRed
	case "green":
		return ColorGreen
	case "yellow":
		return ColorYellow
	case "blue":
		return ColorBlue
	case "magenta":
		return ColorMagenta
	case "cyan":
		return ColorCyan
	case "white":
		return ColorWhite
	case "gray", "grey":
		return ColorGray
	default:
		return ColorDefault
	}
}

// Styled converts the canvas to a string with ANSI colors.
// Adjacent cells with the same color are grouped to keep escape sequences short.
func Styled(cv *Canvas) string {
	var sb strings.Builder
	sb.Grow(cv.m.Size()*2 + cv.m.Height)

	for row := 0; row < cv.m.Height; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}

		col := 0
		for col < cv.m.Width {
			startColor := cv.Get(grid.C(row, col)).Color

			var run strings.Builder
			for col < cv.m.Width {
				cell := cv.Get(grid.C(row, col))
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				col++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

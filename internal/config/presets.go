package config

import "fmt"

// SizePreset represents a named maze size.
type SizePreset string

const (
	SizeSmall  SizePreset = "small"
	SizeMedium SizePreset = "medium"
	SizeLarge  SizePreset = "large"
	SizeFit    SizePreset = "fit" // fill the terminal
)

// Dimensions returns the width and height for a fixed preset.
// SizeFit has no fixed dimensions and returns ok=false.
func (p SizePreset) Dimensions() (width, height int, ok bool) {
	switch p {
	case SizeSmall:
		return 10, 6, true
	case SizeMedium:
		return 20, 10, true
	case SizeLarge:
		return 40, 20, true
	default:
		return 0, 0, false
	}
}

// ParseSizePreset validates a preset name.
func ParseSizePreset(s string) (SizePreset, error) {
	switch p := SizePreset(s); p {
	case SizeSmall, SizeMedium, SizeLarge, SizeFit:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown size preset %q (want small, medium, large or fit)", s)
}

// FitDimensions returns the largest maze whose layout fits in a terminal of
// the given size, keeping spare lines for a status bar.
func FitDimensions(termW, termH, spareLines int) (width, height int) {
	width = (termW - 1) / 2
	height = (termH - spareLines - 1) / 2
	return max(width, 1), max(height, 1)
}

// ApplySizePreset sets the maze dimensions from a fixed preset.
// It leaves cfg unchanged for SizeFit, which the caller resolves.
func ApplySizePreset(cfg *Config, preset SizePreset) {
	if w, h, ok := preset.Dimensions(); ok {
		cfg.Maze.Width = w
		cfg.Maze.Height = h
	}
}

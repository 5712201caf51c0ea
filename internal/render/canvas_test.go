package render

import (
	"strings"
	"testing"

	"github.com/vovakirdan/gridkit/pkg/grid"
)

func TestNewCanvas(t *testing.T) {
	cv := NewCanvas(8, 3)

	if cv.Width() != 8 {
		t.Errorf("Width() = %d, expected 8", cv.Width())
	}
	if cv.Height() != 3 {
		t.Errorf("Height() = %d, expected 3", cv.Height())
	}

	for row := 0; row < cv.Height(); row++ {
		for col := 0; col < cv.Width(); col++ {
			if r := cv.Get(grid.C(row, col)).Rune; r != ' ' {
				t.Errorf("new canvas should be filled with spaces, got %q at (%d, %d)", r, row, col)
			}
		}
	}
}

func TestCanvasSetGet(t *testing.T) {
	cv := NewCanvas(10, 10)

	cv.Set(grid.C(5, 3), 'X', ColorRed)
	got := cv.Get(grid.C(5, 3))
	if got.Rune != 'X' || got.Color != ColorRed {
		t.Errorf("Get(5, 3) = %+v, expected red 'X'", got)
	}

	// Out of bounds should be silent
	cv.Set(grid.C(-1, 0), 'A', ColorDefault)
	cv.Set(grid.C(100, 0), 'A', ColorDefault)
	cv.Set(grid.C(0, -1), 'A', ColorDefault)
	cv.Set(grid.C(0, 100), 'A', ColorDefault)

	if cv.Get(grid.C(-1, 0)).Rune != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestCanvasFillAndClear(t *testing.T) {
	cv := NewCanvas(4, 4)
	cv.Fill('#', ColorGray)

	if s := cv.String(); s != "####\n####\n####\n####" {
		t.Errorf("after Fill, String() = %q", s)
	}

	cv.Clear()
	if strings.Trim(cv.String(), " \n") != "" {
		t.Errorf("after Clear, String() = %q", cv.String())
	}
}

func TestCanvasDrawText(t *testing.T) {
	cv := NewCanvas(6, 2)
	cv.DrawText(grid.C(1, 2), "Hello", ColorDefault)

	// Only "Hell" fits
	if row := cv.Row(1); row != "  Hell" {
		t.Errorf("Row(1) = %q, expected %q", row, "  Hell")
	}
	if row := cv.Row(5); row != "      " {
		t.Errorf("out of range Row() = %q", row)
	}
}

func TestStyledKeepsText(t *testing.T) {
	cv := NewCanvas(3, 2)
	cv.Set(grid.C(0, 0), '#', ColorGray)
	cv.Set(grid.C(1, 2), '@', ColorYellow)

	out := Styled(cv)
	if !strings.Contains(out, "#") || !strings.Contains(out, "@") {
		t.Errorf("Styled() lost characters: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("Styled() should have 2 lines, got %q", out)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name     string
		expected Color
	}{
		{"red", ColorRed},
		{"Yellow", ColorYellow},
		{"grey", ColorGray},
		{"", ColorDefault},
		{"chartreuse", ColorDefault},
	}

	for _, tc := range tests {
		if got := ParseColor(tc.name); got != tc.expected {
			t.Errorf("ParseColor(%q) = %d, expected %d", tc.name, got, tc.expected)
		}
	}
}

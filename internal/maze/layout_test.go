package maze

import (
	"strings"
	"testing"

	"github.com/vovakirdan/gridkit/pkg/grid"
)

func TestLayout(t *testing.T) {
	mz := snake(t)

	if got := mz.String(); got != snakeLayout {
		t.Errorf("String() =\n%s\nexpected\n%s", got, snakeLayout)
	}
}

func TestLayoutMatrix(t *testing.T) {
	lm := LayoutMatrix(grid.New(3, 2))
	if lm.Width != 7 || lm.Height != 5 {
		t.Errorf("LayoutMatrix() = %dx%d, expected 7x5", lm.Width, lm.Height)
	}
	if got := RoomAt(grid.C(1, 2)); got != grid.C(3, 5) {
		t.Errorf("RoomAt((1,2)) = %v, expected (3,5)", got)
	}
	if got := grid.MapToMaze(RoomAt(grid.C(1, 2))); got != grid.C(1, 2) {
		t.Errorf("MapToMaze(RoomAt((1,2))) = %v", got)
	}
}

func TestLayoutWithPath(t *testing.T) {
	mz := snake(t)
	path, _ := mz.Solve(mz.Start(), grid.C(0, 2))

	cv := mz.Canvas(DefaultStyle(), path)
	if row := cv.Row(1); row != "#.....#" {
		t.Errorf("Row(1) = %q, expected %q", row, "#.....#")
	}
	if row := cv.Row(3); row != "#     #" {
		t.Errorf("Row(3) = %q, expected %q", row, "#     #")
	}
}

func TestDrawAtOffset(t *testing.T) {
	mz := New(grid.New(1, 1))
	cv := mz.Canvas(DefaultStyle(), nil)
	if cv.String() != "###\n# #\n###" {
		t.Errorf("1x1 maze = %q", cv.String())
	}
}

func TestParseRoundTrip(t *testing.T) {
	mz, err := Parse(snakeLayout, '#')
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if mz.Matrix() != grid.New(3, 2) {
		t.Errorf("parsed matrix = %+v, expected 3x2", mz.Matrix())
	}
	if mz.String() != snakeLayout {
		t.Errorf("parsed maze renders as\n%s", mz)
	}

	original := snake(t)
	for i, b := range original.Bytes() {
		if mz.Bytes()[i] != b {
			t.Errorf("room %d flags = %08b, expected %08b", i, mz.Bytes()[i], b)
		}
	}
}

func TestParseWithPathRunes(t *testing.T) {
	mz := snake(t)
	path, _ := mz.Solve(mz.Start(), mz.Goal())
	text := mz.Canvas(DefaultStyle(), path).String()

	parsed, err := Parse(text+"\n", '#')
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if parsed.String() != snakeLayout {
		t.Errorf("path runes should parse as open floor, got\n%s", parsed)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"ragged", "###\n#\n###"},
		{"even width", "####\n#  #\n####"},
		{"too small", "#\n#\n#"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(tc.text, '#'); err == nil {
				t.Error("Parse() should fail")
			} else if !strings.HasPrefix(err.Error(), "maze:") {
				t.Errorf("error %q should be prefixed with the package name", err)
			}
		})
	}
}

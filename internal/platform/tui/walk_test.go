package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridkit/internal/maze"
	"github.com/vovakirdan/gridkit/internal/storage"
	"github.com/vovakirdan/gridkit/pkg/grid"
)

// corridorMaze is a 3x1 maze with both passages open.
func corridorMaze() *maze.Maze {
	mz := maze.New(grid.New(3, 1))
	mz.Carve(grid.C(0, 0), grid.Right)
	mz.Carve(grid.C(0, 1), grid.Right)
	return mz
}

func storageForTest(t *testing.T) (*storage.Store, error) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "tui.db"))
	if err == nil {
		t.Cleanup(func() { store.Close() })
	}
	return store, err
}

func press(m WalkModel, msgs ...tea.KeyMsg) WalkModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(WalkModel)
	}
	return m
}

var (
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestWalkMovesThroughPassages(t *testing.T) {
	m := NewWalkModel(corridorMaze(), WalkOptions{Theme: DefaultTheme()})

	m = press(m, keyUp, keyLeft)
	if m.Position() != grid.C(0, 0) || m.Steps() != 0 {
		t.Errorf("walls should block movement, at %v after %d steps", m.Position(), m.Steps())
	}

	m = press(m, keyRight)
	if m.Position() != grid.C(0, 1) || m.Steps() != 1 {
		t.Errorf("expected (0,1) after 1 step, got %v after %d", m.Position(), m.Steps())
	}

	m = press(m, runeKey('l'))
	if !m.Finished() {
		t.Error("reaching the bottom-right room should finish the walk")
	}

	m = press(m, keyLeft)
	if m.Position() != grid.C(0, 2) {
		t.Error("a finished walk should not move")
	}

	m = press(m, runeKey('r'))
	if m.Position() != grid.C(0, 0) || m.Steps() != 0 || m.Finished() {
		t.Errorf("restart should reset the walk, got %v %d %v", m.Position(), m.Steps(), m.Finished())
	}
}

func TestWalkQuit(t *testing.T) {
	m := NewWalkModel(corridorMaze(), WalkOptions{Theme: DefaultTheme()})

	next, cmd := m.Update(runeKey('q'))
	m = next.(WalkModel)
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestWalkCanvas(t *testing.T) {
	m := NewWalkModel(corridorMaze(), WalkOptions{Theme: DefaultTheme()})

	if row := m.Canvas().Row(1); row != "#@   X#" {
		t.Errorf("Row(1) = %q, expected %q", row, "#@   X#")
	}

	m = press(m, runeKey('p'))
	if row := m.Canvas().Row(1); row != "#@...X#" {
		t.Errorf("with solution Row(1) = %q, expected %q", row, "#@...X#")
	}

	if !strings.Contains(m.View(), "steps: 0") {
		t.Error("View() should show the step counter")
	}
}

func TestWalkRecordsFinishedWalk(t *testing.T) {
	store, err := storageForTest(t)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	mz := corridorMaze()
	id, err := store.SaveMaze("", "test", 1, mz)
	if err != nil {
		t.Fatalf("SaveMaze() failed: %v", err)
	}

	m := NewWalkModel(mz, WalkOptions{MazeID: id, Store: store, Player: "bob", Theme: DefaultTheme()})
	m = press(m, keyRight, keyRight)
	if !m.Finished() {
		t.Fatal("walk should be finished")
	}

	best, err := store.BestWalk(id)
	if err != nil {
		t.Fatalf("BestWalk() failed: %v", err)
	}
	if best != 2 {
		t.Errorf("BestWalk() = %d, expected 2", best)
	}
	if !strings.Contains(m.View(), "best: 2") {
		t.Error("View() should show the best walk")
	}
}

func TestWalkKeyMapDirection(t *testing.T) {
	km := DefaultWalkKeyMap()

	tests := []struct {
		msg tea.KeyMsg
		dir grid.Dir
	}{
		{keyUp, grid.Top},
		{runeKey('j'), grid.Bottom},
		{runeKey('a'), grid.Left},
		{keyRight, grid.Right},
	}

	for _, tc := range tests {
		d, ok := km.Direction(tc.msg)
		if !ok || d != tc.dir {
			t.Errorf("Direction(%q) = %v, %v; expected %v", tc.msg.String(), d, ok, tc.dir)
		}
	}

	if _, ok := km.Direction(runeKey('x')); ok {
		t.Error("x should not map to a direction")
	}
}

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestMazeListSelect(t *testing.T) {
	store, err := storageForTest(t)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	first, err := store.SaveMaze("first", "test", 1, corridorMaze())
	if err != nil {
		t.Fatalf("SaveMaze() failed: %v", err)
	}
	second, err := store.SaveMaze("second", "test", 2, corridorMaze())
	if err != nil {
		t.Fatalf("SaveMaze() failed: %v", err)
	}
	if _, err := store.SaveWalk(first, "dave", 2); err != nil {
		t.Fatalf("SaveWalk() failed: %v", err)
	}

	m, err := NewMazeListModel(store, 20)
	if err != nil {
		t.Fatalf("NewMazeListModel() failed: %v", err)
	}
	view := m.View()
	if !strings.Contains(view, "first") || !strings.Contains(view, "second") {
		t.Errorf("View() should list both mazes:\n%s", view)
	}

	// Newest first, so the cursor starts on the second maze.
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MazeListModel)
	if m.Selected() != second {
		t.Errorf("Selected() = %d, expected %d", m.Selected(), second)
	}
	if cmd == nil {
		t.Error("selecting should quit the browser")
	}
}

func TestMazeListEmpty(t *testing.T) {
	store, err := storageForTest(t)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	m, err := NewMazeListModel(store, 20)
	if err != nil {
		t.Fatalf("NewMazeListModel() failed: %v", err)
	}
	if !strings.Contains(m.View(), "No mazes saved yet") {
		t.Error("empty list should say so")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if next.(MazeListModel).Selected() != 0 {
		t.Error("enter on an empty list should select nothing")
	}
}

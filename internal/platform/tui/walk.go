package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridkit/internal/maze"
	"github.com/vovakirdan/gridkit/internal/render"
	"github.com/vovakirdan/gridkit/internal/storage"
	"github.com/vovakirdan/gridkit/pkg/grid"
)

// WalkOptions configures a WalkModel.
type WalkOptions struct {
	MazeID int64          // saved maze ID, 0 if the maze is not stored
	Store  *storage.Store // may be nil
	Player string         // recorded with finished walks
	Theme  Theme
	Logger *log.Logger // may be nil
}

// WalkModel is the Bubble Tea model for walking from the top-left room of a
// maze to the bottom-right one.
type WalkModel struct {
	maze         *maze.Maze
	opts         WalkOptions
	walker       maze.Walker
	best         int
	showSolution bool
	finished     bool
	quitting     bool
	keys         WalkKeyMap
	help         help.Model
}

// NewWalkModel creates a walker placed at the maze start.
func NewWalkModel(mz *maze.Maze, opts WalkOptions) WalkModel {
	m := WalkModel{
		maze:   mz,
		opts:   opts,
		walker: maze.NewWalker(mz),
		keys:   DefaultWalkKeyMap(),
		help:   help.New(),
	}
	m.loadBest()
	return m
}

func (m *WalkModel) loadBest() {
	if m.opts.Store == nil || m.opts.MazeID == 0 {
		return
	}
	best, err := m.opts.Store.BestWalk(m.opts.MazeID)
	if err != nil {
		m.logWarn("cannot load best walk", "maze", m.opts.MazeID, "error", err)
		return
	}
	m.best = best
}

func (m WalkModel) logWarn(msg string, keyvals ...any) {
	if m.opts.Logger != nil {
		m.opts.Logger.Warn(msg, keyvals...)
	}
}

// Init implements tea.Model.
func (m WalkModel) Init() tea.Cmd {
	return nil
}

// Update handles key presses and window resizes.
func (m WalkModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m WalkModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Solution):
		m.showSolution = !m.showSolution
		return m, nil
	case key.Matches(msg, m.keys.Restart):
		m.walker.Reset()
		m.finished = false
		return m, nil
	}

	if d, ok := m.keys.Direction(msg); ok {
		m.move(d)
	}
	return m, nil
}

// move steps through an open passage. Walls and the border block movement.
func (m *WalkModel) move(d grid.Dir) {
	if m.finished || !m.walker.Move(d) {
		return
	}
	if m.walker.Finished() {
		m.finished = true
		m.recordWalk()
	}
}

func (m *WalkModel) recordWalk() {
	if m.opts.Store == nil || m.opts.MazeID == 0 {
		return
	}
	steps := m.walker.Steps()
	if _, err := m.opts.Store.SaveWalk(m.opts.MazeID, m.opts.Player, steps); err != nil {
		m.logWarn("cannot save walk", "maze", m.opts.MazeID, "error", err)
		return
	}
	if m.best == 0 || steps < m.best {
		m.best = steps
	}
}

// Position returns the room the player is in.
func (m WalkModel) Position() grid.Coord {
	return m.walker.Position()
}

// Steps returns the number of moves made since the last restart.
func (m WalkModel) Steps() int {
	return m.walker.Steps()
}

// Finished returns true once the goal has been reached.
func (m WalkModel) Finished() bool {
	return m.finished
}

// IsQuitting returns true if the user asked to quit.
func (m WalkModel) IsQuitting() bool {
	return m.quitting
}

// Canvas draws the maze with the player, the goal and, if enabled, the
// shortest remaining path.
func (m WalkModel) Canvas() *render.Canvas {
	var path []grid.Coord
	if m.showSolution {
		path, _ = m.maze.Solve(m.walker.Position(), m.maze.Goal())
	}
	th := m.opts.Theme
	cv := m.maze.Canvas(th.Maze, path)
	cv.Set(maze.RoomAt(m.maze.Goal()), th.Goal, th.GoalColor)
	cv.Set(maze.RoomAt(m.walker.Position()), th.Player, th.PlayerColor)
	return cv
}

// View renders the maze and a status line.
func (m WalkModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(render.Styled(m.Canvas()))
	b.WriteString("\n")

	status := fmt.Sprintf("steps: %d", m.walker.Steps())
	if m.best > 0 {
		status += fmt.Sprintf("  best: %d", m.best)
	}
	if m.finished {
		status += "  - goal reached! press r to walk again"
	}
	statusStyle := lipgloss.NewStyle().Bold(true)
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// RunWalk runs the walker in the current terminal.
// Returns true if the goal was reached.
func RunWalk(mz *maze.Maze, opts WalkOptions) (bool, error) {
	p := tea.NewProgram(
		NewWalkModel(mz, opts),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(WalkModel)
	if !ok {
		return false, nil
	}
	return m.Finished(), nil
}

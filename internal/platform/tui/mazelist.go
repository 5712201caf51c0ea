package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridkit/internal/storage"
)

const maxListed = 100 // Max mazes to load

// MazeListKeyMap defines the key bindings for the saved maze browser.
type MazeListKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MazeListKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MazeListKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Select, k.Quit}}
}

// DefaultMazeListKeyMap returns default key bindings.
func DefaultMazeListKeyMap() MazeListKeyMap {
	return MazeListKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "walk"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MazeListModel is a table of saved mazes. Selecting a row ends the program
// with Selected set.
type MazeListModel struct {
	records  []storage.MazeRecord
	best     map[int64]int
	table    table.Model
	help     help.Model
	keys     MazeListKeyMap
	height   int
	selected int64
	quitting bool
}

// NewMazeListModel loads saved mazes from the store.
func NewMazeListModel(store *storage.Store, height int) (MazeListModel, error) {
	records, err := store.ListMazes(maxListed)
	if err != nil {
		return MazeListModel{}, err
	}

	best := make(map[int64]int, len(records))
	for _, r := range records {
		steps, err := store.BestWalk(r.ID)
		if err != nil {
			return MazeListModel{}, err
		}
		best[r.ID] = steps
	}

	m := MazeListModel{
		records: records,
		best:    best,
		help:    help.New(),
		keys:    DefaultMazeListKeyMap(),
		height:  height,
	}
	m.table = m.createTable()
	return m, nil
}

// createTable builds the table with one row per saved maze.
func (m *MazeListModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Name", Width: 16},
		{Title: "Algorithm", Width: 12},
		{Title: "Size", Width: 8},
		{Title: "Best", Width: 6},
		{Title: "Saved", Width: 14},
	}

	rows := make([]table.Row, len(m.records))
	for i, r := range m.records {
		best := "-"
		if steps := m.best[r.ID]; steps > 0 {
			best = strconv.Itoa(steps)
		}
		rows[i] = table.Row{
			strconv.FormatInt(r.ID, 10),
			r.Name,
			r.Algorithm,
			fmt.Sprintf("%dx%d", r.Width, r.Height),
			best,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-6, 3)), // Leave room for title and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init implements tea.Model.
func (m MazeListModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m MazeListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Select):
			if i := m.table.Cursor(); i >= 0 && i < len(m.records) {
				m.selected = m.records[i].ID
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.table = m.createTable()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m MazeListModel) View() string {
	if m.quitting || m.selected != 0 {
		return ""
	}

	var b strings.Builder
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render("SAVED MAZES"))
	b.WriteString("\n\n")

	if len(m.records) == 0 {
		b.WriteString("No mazes saved yet. Run 'gridkit maze --save' to add one.\n")
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Selected returns the ID of the chosen maze, or 0 if none was chosen.
func (m MazeListModel) Selected() int64 {
	return m.selected
}

// RunMazeList runs the browser and returns the selected maze ID (0 if the
// user quit).
func RunMazeList(store *storage.Store, height int) (int64, error) {
	model, err := NewMazeListModel(store, height)
	if err != nil {
		return 0, err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return 0, err
	}

	m, ok := finalModel.(MazeListModel)
	if !ok {
		return 0, nil
	}
	return m.Selected(), nil
}

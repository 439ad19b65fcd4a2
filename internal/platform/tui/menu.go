package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// LevelEntry describes one selectable level.
type LevelEntry struct {
	Name   string
	Width  int
	Height int
	Coins  int
}

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	title    string
	entries  []LevelEntry
	table    table.Model
	help     help.Model
	keys     MenuKeyMap
	config   core.RuntimeConfig
	quitting bool
	selected int // -1 until a level is picked
}

// NewMenuModel creates a new level picker.
func NewMenuModel(title string, entries []LevelEntry, cfg core.RuntimeConfig) MenuModel {
	h := help.New()
	h.ShowAll = false

	m := MenuModel{
		title:    title,
		entries:  entries,
		help:     h,
		keys:     DefaultMenuKeyMap(),
		config:   cfg,
		selected: -1,
	}
	m.table = m.createTable()
	return m
}

// createTable builds the level table sized to the current terminal.
func (m *MenuModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Level", Width: 24},
		{Title: "Size", Width: 9},
		{Title: "Coins", Width: 6},
	}

	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			e.Name,
			fmt.Sprintf("%dx%d", e.Width, e.Height),
			fmt.Sprintf("%d", e.Coins),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(core.Clamp(m.config.ScreenH-8, 3, core.Max(len(rows)+2, 3))),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("124")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if len(m.entries) > 0 {
				m.selected = m.table.Cursor()
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("208")).
		Padding(0, 1)
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")
	if len(m.entries) == 0 {
		b.WriteString("  No levels found.\n")
	} else {
		b.WriteString(tableStyle.Render(m.table.View()))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	b.WriteString("\n")

	block := b.String()
	if m.config.ScreenW > 0 {
		return lipgloss.PlaceHorizontal(m.config.ScreenW, lipgloss.Center, block)
	}
	return block
}

// Selected returns the picked level index, or -1 if none was picked.
func (m MenuModel) Selected() int {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Level  int
	Config core.RuntimeConfig
	Quit   bool
}

// RunMenu runs the level picker and returns the selection.
func RunMenu(title string, entries []LevelEntry, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(title, entries, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg, Quit: true}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.IsQuitting() || m.Selected() < 0 {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	return MenuResult{
		Level:  m.Selected(),
		Config: m.Config(),
	}, nil
}

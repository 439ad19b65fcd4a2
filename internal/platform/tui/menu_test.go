package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func testEntries() []LevelEntry {
	return []LevelEntry{
		{Name: "Warm Up", Width: 35, Height: 8, Coins: 3},
		{Name: "Lava Lake", Width: 74, Height: 12, Coins: 5},
		{Name: "Long Drop", Width: 75, Height: 18, Coins: 9},
	}
}

func menuConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60}
}

func TestMenuSelect(t *testing.T) {
	var m tea.Model = NewMenuModel("Lava Runner", testEntries(), menuConfig())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	menu := m.(MenuModel)
	if menu.Selected() != 2 {
		t.Errorf("Selected() = %d, expected 2", menu.Selected())
	}
	if cmd == nil {
		t.Error("selecting should quit the menu")
	}
}

func TestMenuQuit(t *testing.T) {
	var m tea.Model = NewMenuModel("Lava Runner", testEntries(), menuConfig())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	menu := m.(MenuModel)
	if !menu.IsQuitting() || menu.Selected() != -1 {
		t.Error("q should quit without a selection")
	}
}

func TestMenuView(t *testing.T) {
	m := NewMenuModel("Lava Runner", testEntries(), menuConfig())
	view := m.View()

	for _, want := range []string{"Lava Runner", "Warm Up", "74x12"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() is missing %q", want)
		}
	}

	empty := NewMenuModel("Lava Runner", nil, menuConfig())
	if !strings.Contains(empty.View(), "No levels found") {
		t.Error("empty menu should say so")
	}
	next, _ := empty.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if next.(MenuModel).Selected() != -1 {
		t.Error("enter on an empty menu should not select")
	}
}

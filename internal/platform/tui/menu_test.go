package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

func menuSend(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestMenuSelection(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want MenuChoice
	}{
		{"play", []tea.KeyMsg{{Type: tea.KeyEnter}}, MenuPlay},
		{"demo", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyEnter}}, MenuDemo},
		{"quit entry", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyEnter}}, MenuQuit},
		{"cursor stops at bottom", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyUp}, {Type: tea.KeyEnter}}, MenuDemo},
		{"cursor stops at top", []tea.KeyMsg{{Type: tea.KeyUp}, {Type: tea.KeyEnter}}, MenuPlay},
		{"quit key", []tea.KeyMsg{{Type: tea.KeyRunes, Runes: []rune("q")}}, MenuQuit},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMenuModel(core.DefaultConfig(), 0)
			for _, k := range tc.keys {
				m = menuSend(t, m, k)
			}
			if m.Choice() != tc.want {
				t.Errorf("Choice() = %v, expected %v", m.Choice(), tc.want)
			}
		})
	}
}

func TestMenuView(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, 17)
	out := m.View()
	for _, want := range []string{"S H O O T E R", "Best: 17", "> Play", "Watch demo"} {
		if !strings.Contains(out, want) {
			t.Errorf("menu view missing %q", want)
		}
	}

	m = NewMenuModel(core.RuntimeConfig{}, 0)
	if strings.Contains(m.View(), "Best:") {
		t.Error("best line should be hidden with no score")
	}
}

func TestMenuResize(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), 0)
	m = menuSend(t, m, tea.WindowSizeMsg{Width: 100, Height: 50})
	if cfg := m.Config(); cfg.ScreenW != 100 || cfg.ScreenH != 50 {
		t.Errorf("config after resize = %+v", cfg)
	}
}

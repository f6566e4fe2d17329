package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tetcolor/internal/core"
)

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"up rotates right", tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotateRight},
		{"q rotates left", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.ActionRotateLeft},
		{"space drops", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.ActionDrop},
		{"enter starts", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart},
		{"p pauses", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")}, core.ActionPause},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"s is platform", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")}, core.ActionNone},
		{"ctrl+c is platform", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionNone},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp is empty")
	}
	n := 0
	for _, col := range keys.FullHelp() {
		n += len(col)
	}
	if n != 11 {
		t.Errorf("FullHelp lists %d bindings, want 11", n)
	}
}

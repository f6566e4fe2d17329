package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tetcolor/internal/core"
)

// KeyMap holds the key bindings of the game screen.
type KeyMap struct {
	Left        key.Binding
	Right       key.Binding
	Down        key.Binding
	Drop        key.Binding
	RotateRight key.Binding
	RotateLeft  key.Binding
	Start       key.Binding
	Pause       key.Binding
	Quit        key.Binding
	Sound       key.Binding
	Screenshot  key.Binding
	Exit        key.Binding
}

// DefaultKeyMap returns the classic bindings: arrows move, up rotates,
// space drops, enter starts, esc ends the game.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←/→", "move"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "soft drop"),
		),
		Drop: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "drop"),
		),
		RotateRight: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "rotate"),
		),
		RotateLeft: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "rotate back"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "end/quit"),
		),
		Sound: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sound"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Exit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.RotateRight, k.Drop, k.Start, k.Pause, k.Sound, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Down, k.Drop, k.RotateRight, k.RotateLeft},
		{k.Start, k.Pause, k.Quit},
		{k.Sound, k.Screenshot, k.Exit},
	}
}

// Action translates a key message to a game action.
// Keys handled by the platform itself map to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Drop):
		return core.ActionDrop
	case key.Matches(msg, k.RotateRight):
		return core.ActionRotateRight
	case key.Matches(msg, k.RotateLeft):
		return core.ActionRotateLeft
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	}
	return core.ActionNone
}

package tetcolor

// Command is a player intent queued with Board.Issue and resolved at the
// start of the next Advance.
type Command int

const (
	CommandMoveLeft Command = iota
	CommandMoveRight
	CommandSoftDrop
	CommandHardDrop
	CommandRotateLeft
	CommandRotateRight
	CommandStart
	CommandTogglePause
	CommandQuit
)

var commandNames = [...]string{
	CommandMoveLeft:    "move-left",
	CommandMoveRight:   "move-right",
	CommandSoftDrop:    "soft-drop",
	CommandHardDrop:    "hard-drop",
	CommandRotateLeft:  "rotate-left",
	CommandRotateRight: "rotate-right",
	CommandStart:       "start",
	CommandTogglePause: "toggle-pause",
	CommandQuit:        "quit",
}

func (c Command) String() string {
	if c >= 0 && int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "unknown"
}

// movement reports whether the command moves or rotates the active piece.
func (c Command) movement() bool {
	return c <= CommandRotateRight
}

package tetcolor

// EventKind identifies what happened during an Advance.
type EventKind int

const (
	EventMoved EventKind = iota
	EventHardDrop
	EventMatch
	EventCombo
	EventLevelUp
	EventGameOver
	EventQuit
)

func (k EventKind) String() string {
	switch k {
	case EventMoved:
		return "moved"
	case EventHardDrop:
		return "hard-drop"
	case EventMatch:
		return "match"
	case EventCombo:
		return "combo"
	case EventLevelUp:
		return "level-up"
	case EventGameOver:
		return "game-over"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Event is emitted by Board.Advance for the presentation layer to react to.
type Event struct {
	Kind EventKind
	// Bonus is the classification for EventMatch and the combo amount for EventCombo.
	Bonus  int
	Points int // EventMatch only
	Level  int // EventLevelUp only
}

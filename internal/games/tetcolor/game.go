package tetcolor

import (
	"math/rand"

	"github.com/vovakirdan/tetcolor/internal/core"
)

// GameID identifies Tetcolor in storage and logs.
const GameID = "tetcolor"

// Game adapts a Board to the platform loop: it turns input frames into
// commands, advances the board and reports state and cues back.
type Game struct {
	rng   *rand.Rand
	sink  ScoreSink
	board *Board
	flash bonusFlash
}

// New creates a game reporting finished scores to sink, which may be nil.
func New(sink ScoreSink) *Game {
	return &Game{sink: sink}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetcolor"
}

// Reset creates a fresh board waiting for the start command.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.board = NewBoard(g.rng, g.sink)
	g.flash = bonusFlash{}
}

// Step queues the frame's actions, advances the board by the frame's
// elapsed time and translates the resulting events into cues.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, a := range in.Actions {
		if cmd, ok := commandFor(a); ok {
			g.board.Issue(cmd)
		}
	}

	g.flash.advance(in.Elapsed)

	var res core.StepResult
	for _, ev := range g.board.Advance(in.Elapsed) {
		switch ev.Kind {
		case EventMoved:
			res.Cues = append(res.Cues, core.CueMove)
		case EventHardDrop:
			res.Cues = append(res.Cues, core.CueDrop)
		case EventMatch:
			res.Cues = append(res.Cues, core.CuePoints)
		case EventCombo:
			g.flash.start(ev.Bonus)
		case EventGameOver:
			res.Cues = append(res.Cues, core.CueFinish)
		case EventQuit:
			res.Quit = true
		}
	}
	res.State = g.State()
	return res
}

// State returns the platform view of the board.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.board.Score(),
		Level:    g.board.Level() + 1,
		Started:  g.board.Phase() != PhaseNotStarted,
		GameOver: g.board.Phase() == PhaseOver,
		Paused:   g.board.Paused(),
	}
}

// Board exposes the underlying board.
func (g *Game) Board() *Board {
	return g.board
}

// Snapshot returns the board snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.board.Snapshot()
}

func commandFor(a core.Action) (Command, bool) {
	switch a {
	case core.ActionLeft:
		return CommandMoveLeft, true
	case core.ActionRight:
		return CommandMoveRight, true
	case core.ActionDown:
		return CommandSoftDrop, true
	case core.ActionDrop:
		return CommandHardDrop, true
	case core.ActionRotateLeft:
		return CommandRotateLeft, true
	case core.ActionRotateRight:
		return CommandRotateRight, true
	case core.ActionStart:
		return CommandStart, true
	case core.ActionPause:
		return CommandTogglePause, true
	case core.ActionQuit:
		return CommandQuit, true
	default:
		return 0, false
	}
}

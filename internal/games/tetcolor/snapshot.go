package tetcolor

import "time"

// StateType is the externally visible board state.
type StateType string

const (
	StateWaiting   StateType = "waiting"
	StateFalling   StateType = "falling"
	StateResolving StateType = "resolving"
	StatePaused    StateType = "paused"
	StateGameOver  StateType = "game_over"
)

// Snapshot captures the complete board state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Elapsed    time.Duration
	State      StateType
	Score      int
	Level      int
	LevelTicks int
	LastBonus  int
	Fade       int
	Chain      []int
	Grid       Grid
	Piece      Piece
	Next       Piece
}

// Snapshot returns the current board snapshot.
func (b *Board) Snapshot() Snapshot {
	return Snapshot{
		Tick:       b.tick,
		Elapsed:    b.clock.Elapsed(),
		State:      b.State(),
		Score:      b.score.Score(),
		Level:      b.clock.Level(),
		LevelTicks: b.clock.LevelTicks(),
		LastBonus:  b.score.LastBonus(),
		Fade:       b.fade,
		Chain:      b.score.Chain(),
		Grid:       b.grid,
		Piece:      b.piece.clone(),
		Next:       b.next.clone(),
	}
}

// State summarizes phase, pause and fade into one value.
func (b *Board) State() StateType {
	switch {
	case b.phase == PhaseNotStarted:
		return StateWaiting
	case b.phase == PhaseOver:
		return StateGameOver
	case b.paused:
		return StatePaused
	case b.fade != 0:
		return StateResolving
	default:
		return StateFalling
	}
}

package tetcolor

import "time"

// MaxFade is the number of ticks matched cells stay visible before collapsing.
const MaxFade = 15

// Phase is the lifecycle state of a board.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhasePlaying
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhasePlaying:
		return "playing"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// ScoreSink receives the final score once per finished game.
type ScoreSink interface {
	RecordScore(score int)
}

// ScoreSinkFunc adapts a function to ScoreSink.
type ScoreSinkFunc func(score int)

func (f ScoreSinkFunc) RecordScore(score int) { f(score) }

// Board owns the grid, the active and next pieces, score and level, and
// drives them from queued commands and elapsed time.
type Board struct {
	rng  Rand
	sink ScoreSink

	grid  Grid
	piece Piece
	next  Piece

	phase    Phase
	paused   bool
	hardDrop bool
	// fade is 0 while a piece falls, positive while matched cells fade out and
	// -1 for the single settle tick after a lock without matches.
	fade int

	clock LevelClock
	score ScoreKeeper

	tick    uint64
	pending []Command
	events  []Event
}

// NewBoard creates a board waiting for CommandStart. sink may be nil.
func NewBoard(rng Rand, sink ScoreSink) *Board {
	b := &Board{rng: rng, sink: sink}
	b.init()
	return b
}

func (b *Board) init() {
	b.grid = Grid{}
	b.piece = NewPiece(b.rng).AtStart()
	b.next = NewPiece(b.rng)
	b.paused = false
	b.hardDrop = false
	b.fade = 0
	b.clock = LevelClock{}
	b.score = ScoreKeeper{}
	b.tick = 0
	b.pending = nil
}

// Reset starts a fresh game immediately.
func (b *Board) Reset() {
	b.init()
	b.phase = PhasePlaying
}

// Issue queues a command for the next Advance.
func (b *Board) Issue(cmd Command) {
	b.pending = append(b.pending, cmd)
}

// Advance resolves queued commands, moves the clock by dt and runs one
// simulation tick. It returns the events produced; the slice is owned by the
// caller.
func (b *Board) Advance(dt time.Duration) []Event {
	b.events = nil

	pending := b.pending
	b.pending = nil
	for _, cmd := range pending {
		b.apply(cmd)
	}

	if b.phase == PhasePlaying && !b.paused {
		b.tick++
		b.clock.Advance(dt)
		b.step()
	}

	events := b.events
	b.events = nil
	return events
}

func (b *Board) apply(cmd Command) {
	switch cmd {
	case CommandStart:
		switch b.phase {
		case PhaseNotStarted:
			b.phase = PhasePlaying
		case PhaseOver:
			b.Reset()
		}
	case CommandTogglePause:
		if b.phase == PhasePlaying {
			b.paused = !b.paused
		}
	case CommandQuit:
		if b.phase == PhasePlaying {
			b.finish()
			return
		}
		b.emit(Event{Kind: EventQuit})
	default:
		if cmd.movement() && b.Falling() && !b.paused {
			b.move(cmd)
		}
	}
}

func (b *Board) move(cmd Command) {
	if cmd == CommandHardDrop {
		if b.piece.Locked {
			return
		}
		for p := b.piece.Offset(0, 1); b.grid.Validate(p); p = b.piece.Offset(0, 1) {
			b.piece.MoveInto(p)
		}
		b.piece.Lock()
		b.hardDrop = true
		b.emit(Event{Kind: EventHardDrop})
		return
	}

	var p Piece
	switch cmd {
	case CommandMoveLeft:
		p = b.piece.Offset(-1, 0)
	case CommandMoveRight:
		p = b.piece.Offset(1, 0)
	case CommandSoftDrop:
		p = b.piece.Offset(0, 1)
	case CommandRotateLeft:
		p = b.piece.Rotate(RotateLeft)
	case CommandRotateRight:
		p = b.piece.Rotate(RotateRight)
	default:
		return
	}
	if b.grid.Validate(p) {
		b.piece.MoveInto(p)
		b.emit(Event{Kind: EventMoved})
	}
}

func (b *Board) step() {
	if b.fade != 0 {
		b.resolve()
		return
	}

	b.score.ResetLastBonus()
	if b.clock.Age() {
		b.emit(Event{Kind: EventLevelUp, Level: b.clock.Level()})
	}

	if b.hardDrop {
		b.hardDrop = false
	} else if !b.clock.DropDue() {
		return
	}

	if down := b.piece.Offset(0, 1); b.grid.Validate(down) {
		b.piece.MoveInto(down)
		b.clock.MarkDrop()
		return
	}

	b.piece.Lock()
	b.grid.Freeze(b.piece)
	if level := b.clock.Level(); level > 5 {
		b.score.Add(level - 5)
	}
	if !b.detect() {
		b.fade = -1
	}
}

// resolve runs one tick of the fade and collapse cycle.
func (b *Board) resolve() {
	if b.fade < 0 {
		b.fade = 0
	} else {
		b.fade--
	}
	if b.fade != 0 {
		return
	}

	Collapse(&b.grid)
	if !b.detect() {
		if bonus := b.score.Settle(); bonus > 0 {
			b.emit(Event{Kind: EventCombo, Bonus: bonus})
		}
		if b.piece.Y == 0 {
			b.finish()
		} else {
			b.spawn()
		}
	}
	b.clock.MarkDrop()
}

// detect runs match detection and starts a fade when something matched.
func (b *Board) detect() bool {
	res := DetectMatches(&b.grid)
	if res.Bonus == 0 {
		return false
	}
	b.score.Add(res.Points)
	b.score.Push(res.Bonus)
	b.fade = MaxFade
	b.emit(Event{Kind: EventMatch, Bonus: res.Bonus, Points: res.Points})
	return true
}

func (b *Board) spawn() {
	b.piece = b.next.AtStart()
	b.next = NewPiece(b.rng)
	if !b.grid.Validate(b.piece) {
		b.finish()
	}
}

func (b *Board) finish() {
	if b.phase != PhasePlaying {
		return
	}
	b.phase = PhaseOver
	b.paused = false
	b.emit(Event{Kind: EventGameOver})
	if b.sink != nil {
		b.sink.RecordScore(b.score.Score())
	}
}

func (b *Board) emit(ev Event) {
	b.events = append(b.events, ev)
}

// Falling reports whether the game is running and the active piece is not
// yet part of the grid.
func (b *Board) Falling() bool {
	return b.phase == PhasePlaying && b.fade == 0
}

// Resolving reports whether matched cells are fading or a lock is settling.
func (b *Board) Resolving() bool {
	return b.phase == PhasePlaying && b.fade != 0
}

// FadeProgress returns the remaining fade as a fraction in [0, 1].
func (b *Board) FadeProgress() float64 {
	if b.fade <= 0 {
		return 0
	}
	return float64(b.fade) / MaxFade
}

// Grid returns a copy of the playfield.
func (b *Board) Grid() Grid { return b.grid }

// Piece returns a copy of the active piece.
func (b *Board) Piece() Piece { return b.piece.clone() }

// Next returns a copy of the upcoming piece.
func (b *Board) Next() Piece { return b.next.clone() }

func (b *Board) Phase() Phase { return b.phase }
func (b *Board) Paused() bool { return b.paused }
func (b *Board) Score() int { return b.score.Score() }
func (b *Board) Level() int { return b.clock.Level() }
func (b *Board) LastBonus() int { return b.score.LastBonus() }

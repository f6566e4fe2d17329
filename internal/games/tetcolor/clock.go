package tetcolor

import (
	"time"

	"github.com/vovakirdan/tetcolor/internal/core"
)

// DropIntervals is the gravity interval for each level.
var DropIntervals = [...]time.Duration{
	800 * time.Millisecond, 730 * time.Millisecond, 660 * time.Millisecond,
	590 * time.Millisecond, 530 * time.Millisecond, 470 * time.Millisecond,
	410 * time.Millisecond, 360 * time.Millisecond, 310 * time.Millisecond,
	260 * time.Millisecond, 220 * time.Millisecond, 180 * time.Millisecond,
	140 * time.Millisecond, 110 * time.Millisecond, 100 * time.Millisecond,
	90 * time.Millisecond, 90 * time.Millisecond, 90 * time.Millisecond,
	90 * time.Millisecond, 80 * time.Millisecond, 80 * time.Millisecond,
}

const (
	// MaxLevel is the last level with its own drop interval.
	MaxLevel = len(DropIntervals) - 1
	// levelTickSpan is the clock time that counts as one level tick.
	levelTickSpan = time.Second
	// levelTicks is how many level ticks a level lasts, minus one.
	levelTicks = 59
)

// DropInterval returns the gravity interval for level, clamped to the table.
func DropInterval(level int) time.Duration {
	return DropIntervals[core.Clamp(level, 0, MaxLevel)]
}

// LevelClock is the engine's own clock. It only moves when Advance is called,
// so a paused game does not age.
type LevelClock struct {
	elapsed   time.Duration
	levelMark time.Duration
	dropMark  time.Duration
	level     int
	ticks     int
}

// Advance moves the clock forward by dt.
func (c *LevelClock) Advance(dt time.Duration) {
	if dt > 0 {
		c.elapsed += dt
	}
}

// Age counts a level tick once a second has passed since the last one and
// moves to the next level after 60 ticks. It reports whether the level changed.
func (c *LevelClock) Age() bool {
	if c.elapsed-c.levelMark < levelTickSpan {
		return false
	}
	c.levelMark = c.elapsed
	c.ticks++
	if c.ticks <= levelTicks {
		return false
	}
	c.ticks = 0
	if c.level >= MaxLevel {
		return false
	}
	c.level++
	return true
}

// DropDue reports whether more than one drop interval has passed since the last mark.
func (c *LevelClock) DropDue() bool {
	return c.elapsed-c.dropMark > DropInterval(c.level)
}

// MarkDrop restarts the drop interval.
func (c *LevelClock) MarkDrop() {
	c.dropMark = c.elapsed
}

func (c *LevelClock) Level() int { return c.level }
func (c *LevelClock) LevelTicks() int { return c.ticks }
func (c *LevelClock) Elapsed() time.Duration { return c.elapsed }

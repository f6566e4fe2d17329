package tetcolor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDropInterval(t *testing.T) {
	tests := []struct {
		level int
		want  time.Duration
	}{
		{-1, 800 * time.Millisecond},
		{0, 800 * time.Millisecond},
		{1, 730 * time.Millisecond},
		{10, 220 * time.Millisecond},
		{MaxLevel, 80 * time.Millisecond},
		{MaxLevel + 5, 80 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := DropInterval(tt.level); got != tt.want {
			t.Errorf("DropInterval(%d) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestLevelTicks(t *testing.T) {
	var c LevelClock

	c.Advance(999 * time.Millisecond)
	assert.False(t, c.Age())
	assert.Zero(t, c.LevelTicks())

	c.Advance(time.Millisecond)
	assert.False(t, c.Age())
	assert.Equal(t, 1, c.LevelTicks())

	for i := 2; i <= levelTicks; i++ {
		c.Advance(time.Second)
		assert.False(t, c.Age())
	}
	assert.Equal(t, levelTicks, c.LevelTicks())

	c.Advance(time.Second)
	assert.True(t, c.Age())
	assert.Equal(t, 1, c.Level())
	assert.Zero(t, c.LevelTicks())
}

func TestLevelClampsAtLastInterval(t *testing.T) {
	var c LevelClock
	ups := 0
	for i := 0; i < (MaxLevel+3)*(levelTicks+1); i++ {
		c.Advance(time.Second)
		if c.Age() {
			ups++
		}
	}

	assert.Equal(t, MaxLevel, ups)
	assert.Equal(t, MaxLevel, c.Level())
	assert.Equal(t, 80*time.Millisecond, DropInterval(c.Level()))
}

func TestDropDue(t *testing.T) {
	var c LevelClock
	c.Advance(800 * time.Millisecond)
	assert.False(t, c.DropDue())

	c.Advance(time.Millisecond)
	assert.True(t, c.DropDue())

	c.MarkDrop()
	assert.False(t, c.DropDue())
}

func TestAdvanceIgnoresNegative(t *testing.T) {
	var c LevelClock
	c.Advance(time.Second)
	c.Advance(-time.Second)
	assert.Equal(t, time.Second, c.Elapsed())
}

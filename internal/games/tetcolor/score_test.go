package tetcolor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComboBonus(t *testing.T) {
	tests := []struct {
		chain []int
		want  int
	}{
		{nil, 0},
		{[]int{1}, 0},
		{[]int{2}, 0},
		{[]int{1, 1}, 500},
		{[]int{1, 2}, 1000},
		{[]int{1, 2, 1}, 2000},
		{[]int{2, 2, 2}, 2000},
		{[]int{1, 1, 1, 1}, 2500},
	}
	for _, tt := range tests {
		if got := ComboBonus(tt.chain); got != tt.want {
			t.Errorf("ComboBonus(%v) = %d, want %d", tt.chain, got, tt.want)
		}
	}
}

func TestScoreKeeperSettle(t *testing.T) {
	var s ScoreKeeper
	s.Add(40)
	s.Push(1)
	s.Push(2)
	s.Push(1)

	assert.Equal(t, 2000, s.Settle())
	assert.Equal(t, 2040, s.Score())
	assert.Equal(t, 2000, s.LastBonus())
	assert.Empty(t, s.Chain())

	// The chain is gone, so settling again earns nothing.
	assert.Zero(t, s.Settle())
	assert.Equal(t, 2040, s.Score())

	s.ResetLastBonus()
	assert.Zero(t, s.LastBonus())
}

func TestScoreKeeperSingleMatchHasNoCombo(t *testing.T) {
	var s ScoreKeeper
	s.Push(1)

	assert.Zero(t, s.Settle())
	assert.Zero(t, s.Score())
	assert.Zero(t, s.LastBonus())
}

package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tetcolor/internal/storage"
)

type memScores struct {
	entries []storage.ScoreEntry
	err     error
	loads   int
}

func (s *memScores) TopScores(gameID string, limit int) ([]storage.ScoreEntry, error) {
	s.loads++
	if s.err != nil {
		return nil, s.err
	}
	return s.entries[:min(limit, len(s.entries))], nil
}

func (s *memScores) GetGameStats(gameID string) (*storage.GameStats, error) {
	st := &storage.GameStats{GameID: gameID, GamesCount: len(s.entries)}
	for _, e := range s.entries {
		st.HighScore = max(st.HighScore, e.Score)
	}
	return st, nil
}

func TestScoreboardRows(t *testing.T) {
	store := &memScores{entries: []storage.ScoreEntry{
		{Player: "ada", Score: 900, CreatedAt: time.Now()},
		{Player: "ken", Score: 300, CreatedAt: time.Now()},
	}}
	m := NewScoreboardModel(store, "tetcolor", "Tetcolor", 30, 80, 24)

	rows := m.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0][0] != "#1" || rows[0][1] != "ada" || rows[0][2] != "900" {
		t.Errorf("first row = %v", rows[0])
	}

	view := m.View()
	assert.Contains(t, view, "HIGH SCORES - Tetcolor")
	assert.Contains(t, view, "2 games")
	assert.Contains(t, view, "best 900")
}

func TestScoreboardEmptyAndError(t *testing.T) {
	m := NewScoreboardModel(&memScores{}, "tetcolor", "Tetcolor", 30, 80, 24)
	assert.Contains(t, m.View(), "No scores recorded yet")

	m = NewScoreboardModel(&memScores{err: errors.New("locked")}, "tetcolor", "Tetcolor", 30, 80, 24)
	assert.Contains(t, m.View(), "locked")
}

func TestScoreboardRefreshAndQuit(t *testing.T) {
	store := &memScores{}
	m := NewScoreboardModel(store, "tetcolor", "Tetcolor", 30, 80, 24)
	assert.Equal(t, 1, store.loads)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	assert.Equal(t, 2, store.loads)

	_, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if assert.NotNil(t, cmd) {
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

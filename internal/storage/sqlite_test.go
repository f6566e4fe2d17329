package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	saves := []struct {
		game   string
		player string
		score  int
	}{
		{"tetcolor", "ada", 100},
		{"tetcolor", "grace", 50},
		{"tetcolor", "ada", 200},
		{"other", "ken", 500},
	}
	for _, s := range saves {
		if _, err := store.SaveScore(s.game, s.player, s.score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("tetcolor", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []struct {
		player string
		score  int
	}{{"ada", 200}, {"ada", 100}, {"grace", 50}}
	for i, w := range want {
		if scores[i].Player != w.player || scores[i].Score != w.score {
			t.Errorf("scores[%d] = %s/%d, want %s/%d", i, scores[i].Player, scores[i].Score, w.player, w.score)
		}
		if scores[i].GameID != "tetcolor" {
			t.Errorf("scores[%d].GameID = %q", i, scores[i].GameID)
		}
	}

	other, err := store.TopScores("other", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 score for other game, got %d", len(other))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < DefaultTopN+5; i++ {
		store.SaveScore("tetcolor", "p", (i+1)*100)
	}

	scores, err := store.TopScores("tetcolor", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 3500 || scores[1].Score != 3400 || scores[2].Score != 3300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	scores, err = store.TopScores("tetcolor", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != DefaultTopN {
		t.Errorf("Expected default limit %d, got %d", DefaultTopN, len(scores))
	}
}

func TestStoreTiesKeepInsertionOrder(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("tetcolor", "first", 300)
	store.SaveScore("tetcolor", "second", 300)

	scores, err := store.TopScores("tetcolor", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].Player != "first" || scores[1].Player != "second" {
		t.Errorf("tie order = %s, %s", scores[0].Player, scores[1].Player)
	}
}

func TestStoreRank(t *testing.T) {
	store := openTestStore(t)
	for _, s := range []int{500, 300, 100} {
		store.SaveScore("tetcolor", "p", s)
	}

	tests := []struct {
		score int
		want  int
	}{
		{900, 1},
		{500, 2},
		{200, 3},
		{50, 4},
	}
	for _, tt := range tests {
		got, err := store.Rank("tetcolor", tt.score)
		if err != nil {
			t.Fatalf("Rank() failed: %v", err)
		}
		if got != tt.want {
			t.Errorf("Rank(%d) = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("tetcolor")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("tetcolor", "a", 100)
	store.SaveScore("tetcolor", "b", 300)
	store.SaveScore("tetcolor", "c", 200)

	high, err = store.HighScore("tetcolor")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("tetcolor", "a", 100)
	store.SaveScore("tetcolor", "a", 200)
	store.SaveScore("other", "a", 300)

	if err := store.ClearScores("tetcolor"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("tetcolor", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	other, _ := store.TopScores("other", 10)
	if len(other) != 1 {
		t.Errorf("Other game scores should not be affected by clearing")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("tetcolor")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveScore("tetcolor", "ada", 100)
	store.SaveScore("tetcolor", "ada", 300)
	store.SaveScore("tetcolor", "ken", 200)

	stats, err = store.GetGameStats("tetcolor")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, want 3", stats.GamesCount)
	}
	if stats.Players != 2 {
		t.Errorf("Players = %d, want 2", stats.Players)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
	if stats.TotalScore != 600 {
		t.Errorf("TotalScore = %d, want 600", stats.TotalScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}
}

func TestRecorder(t *testing.T) {
	store := openTestStore(t)
	rec := store.Recorder("tetcolor", "ada", nil)

	rec.RecordScore(0)
	rec.RecordScore(-5)
	rec.RecordScore(1234)

	scores, err := store.TopScores("tetcolor", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected only the positive score to be saved, got %d", len(scores))
	}
	if scores[0].Player != "ada" || scores[0].Score != 1234 {
		t.Errorf("saved %s/%d", scores[0].Player, scores[0].Score)
	}

	var nilRec *Recorder
	nilRec.RecordScore(10) // must not panic
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/nested/deep/test.db")
	if err != nil {
		t.Fatalf("Open() with home path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, "nested", "deep", "test.db")); os.IsNotExist(err) {
		t.Error("Database file was not created under home")
	}
}

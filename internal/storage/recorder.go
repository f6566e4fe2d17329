package storage

import "github.com/charmbracelet/log"

// Recorder saves finished games for one player. It satisfies the game's
// score sink interface.
type Recorder struct {
	store  *Store
	gameID string
	player string
	logger *log.Logger
}

// Recorder returns a sink that stores scores of gameID under player.
// logger may be nil.
func (s *Store) Recorder(gameID, player string, logger *log.Logger) *Recorder {
	return &Recorder{store: s, gameID: gameID, player: player, logger: logger}
}

// RecordScore saves a positive score. Empty games are not kept.
func (r *Recorder) RecordScore(score int) {
	if r == nil || r.store == nil || score <= 0 {
		return
	}
	id, err := r.store.SaveScore(r.gameID, r.player, score)
	if r.logger == nil {
		return
	}
	if err != nil {
		r.logger.Error("cannot save score", "player", r.player, "score", score, "err", err)
		return
	}
	r.logger.Info("score saved", "player", r.player, "score", score, "id", id)
}

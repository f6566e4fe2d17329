// Package web serves the read-only score API.
//
//	GET /healthz        liveness probe
//	GET /scores         top scores, ?limit=N (1..top_n)
//	GET /scores/stats   aggregate statistics
package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vovakirdan/tetcolor/internal/storage"
)

// ScoreSource is the part of the score store the API reads.
type ScoreSource interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	GetGameStats(gameID string) (*storage.GameStats, error)
}

// Server bundles the router and its score source.
type Server struct {
	r      *chi.Mux
	scores ScoreSource
	gameID string
	topN   int
	logger *log.Logger
}

// rankedEntry is one row of GET /scores.
type rankedEntry struct {
	Rank int `json:"rank"`
	storage.ScoreEntry
}

// New constructs a Server for one game's table and registers routes.
func New(scores ScoreSource, gameID string, topN int, logger *log.Logger) *Server {
	if topN <= 0 {
		topN = storage.DefaultTopN
	}
	s := &Server{r: chi.NewRouter(), scores: scores, gameID: gameID, topN: topN, logger: logger}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(s.requestLogger)
	s.r.Use(jsonContentType)

	s.r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Route("/scores", func(r chi.Router) {
		r.Get("/", s.handleTop)
		r.Get("/stats", s.handleStats)
	})
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Router exposes the router for tests and embedding.
func (s *Server) Router() chi.Router { return s.r }

// Serve listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logf("starting HTTP server", "address", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) handleTop(w http.ResponseWriter, r *http.Request) {
	limit := s.topN
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > s.topN {
			writeError(w, http.StatusBadRequest, "bad_limit")
			return
		}
		limit = n
	}

	entries, err := s.scores.TopScores(s.gameID, limit)
	if err != nil {
		s.logError("top scores", err)
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}

	out := make([]rankedEntry, len(entries))
	for i, e := range entries {
		out[i] = rankedEntry{Rank: i + 1, ScoreEntry: e}
	}
	_ = json.NewEncoder(w).Encode(out)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.scores.GetGameStats(s.gameID)
	if err != nil {
		s.logError("game stats", err)
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	_ = json.NewEncoder(w).Encode(stats)
}

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		if s.logger != nil {
			s.logger.Debug("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
				"request_id", chimw.GetReqID(r.Context()),
			)
		}
	})
}

func (s *Server) logf(msg string, kv ...any) {
	if s.logger != nil {
		s.logger.Info(msg, kv...)
	}
}

func (s *Server) logError(what string, err error) {
	if s.logger != nil {
		s.logger.Error("cannot load "+what, "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}

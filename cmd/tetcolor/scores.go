package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tetcolor/internal/games/tetcolor"
	"github.com/vovakirdan/tetcolor/internal/platform/tui"
	"github.com/vovakirdan/tetcolor/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the high-score table (top 30 by default, see storage.top_n).

Examples:
  tetcolor scores
  tetcolor scores --tui
  tetcolor scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores")
}

func runScores(cmd *cobra.Command, _ []string) {
	cfg := loadConfig(cmd)

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.ClearScores(tetcolor.GameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
		return

	case flagScoresTUI:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, tetcolor.GameID, "Tetcolor", cfg.Storage.TopN, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	scores, err := store.TopScores(tetcolor.GameID, cfg.Storage.TopN)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Tetcolor")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tetcolor play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "----", "------", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-16s  %-10d  %s\n", i+1, entry.Player, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GetGameStats(tetcolor.GameID); err == nil {
		fmt.Printf("Best: %d  Games: %d  Players: %d\n", stats.HighScore, stats.GamesCount, stats.Players)
	}
}

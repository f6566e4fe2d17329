package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tetcolor/internal/core"
	"github.com/vovakirdan/tetcolor/internal/games/tetcolor"
	"github.com/vovakirdan/tetcolor/internal/platform/tui"
	"github.com/vovakirdan/tetcolor/internal/storage"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game in this terminal. Press Enter to begin.

Controls:
  Left/Right - Move piece
  Down       - Soft drop
  Space      - Hard drop
  Up / Q     - Rotate right / left
  Enter      - Start, or start over after game over
  P          - Pause
  Esc        - End the game, or leave when not playing
  S          - Toggle sound
  Ctrl+C     - Exit immediately

Scores are saved under the player name from the config,
TETCOLOR_PLAYER or $USER.

Examples:
  tetcolor play
  tetcolor play --seed 42 --fps 30
  tetcolor play --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound off")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg := loadConfig(cmd)

	// The alt screen owns stdout; log only when a file is configured.
	logger, closeLog := mustLogger(cfg.Log, io.Discard)
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	player := cfg.PlayerName()
	game := tetcolor.New(store.Recorder(tetcolor.GameID, player, logger))
	logger.Info("game started", "player", player, "seed", cfg.Runtime.Seed)

	runErr := tui.Run(game, tui.Options{
		Config: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.Runtime.TickRate,
			Seed:     cfg.Runtime.Seed,
		},
		Sound:  cfg.Runtime.Sound && !flagMute,
		Logger: logger,
	})

	if store != nil {
		printRank(store, game.State().Score)
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// printRank reports where the last score landed in the table.
func printRank(store *storage.Store, score int) {
	if score <= 0 {
		return
	}
	rank, err := store.Rank(tetcolor.GameID, score)
	if err != nil {
		return
	}
	fmt.Printf("Score %d, rank #%d\n", score, rank)
}

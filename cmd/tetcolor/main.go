// tetcolor is a falling-block color-match game for the terminal.
//
// Usage:
//
//	tetcolor play            - Play in this terminal
//	tetcolor scores          - Show the high-score table
//	tetcolor serve           - Serve the game over SSH and scores over HTTP
//	tetcolor config          - Print the effective configuration
//
// Global flags:
//
//	--config <path> - Config file (default: search ~/.tetcolor, ./configs)
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.tetcolor/scores.db)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetcolor/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetcolor",
	Short: "Tetcolor - match falling colors in your terminal",
	Long: `Tetcolor drops pieces of colored cells into a 7x18 well.
Line up three or more cells of one color in a row, a column or a
diagonal to clear them. Cleared cells let everything above fall,
and every follow-up match in the same drop earns a combo bonus.

Available commands:
  play     - Play in this terminal
  scores   - View high scores
  serve    - Start SSH and HTTP servers
  config   - Print the effective configuration

Examples:
  tetcolor play
  tetcolor play --seed 42
  tetcolor scores --tui
  tetcolor serve --ssh :2222 --http :8080`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetcolor/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config file and applies explicitly set global flags.
func loadConfig(cmd *cobra.Command) config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Runtime.TickRate = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Runtime.Seed = flagSeed
	}
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newLogger builds the logger described by cfg. Without a log file the
// logger writes to fallback. The returned func closes the file, if any.
func newLogger(cfg config.LogConfig, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	out, closeFn := fallback, func() {}
	if cfg.File != "" {
		path := cfg.File
		if strings.HasPrefix(path, "~") {
			home, homeErr := os.UserHomeDir()
			if homeErr != nil {
				return nil, nil, fmt.Errorf("cannot get home directory: %w", homeErr)
			}
			path = filepath.Join(home, path[1:])
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetcolor",
		Level:           level,
	})
	return logger, closeFn, nil
}

// mustLogger is newLogger that exits on error.
func mustLogger(cfg config.LogConfig, fallback io.Writer) (*log.Logger, func()) {
	logger, closeFn, err := newLogger(cfg, fallback)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger, closeFn
}

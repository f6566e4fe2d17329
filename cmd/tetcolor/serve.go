package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tetcolor/internal/games/tetcolor"
	"github.com/vovakirdan/tetcolor/internal/platform/tui"
	"github.com/vovakirdan/tetcolor/internal/platform/web"
	"github.com/vovakirdan/tetcolor/internal/storage"
)

var (
	flagSSHAddr  string
	flagHTTPAddr string
	flagHostKey  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH game server and the HTTP score API",
	Long: `Start an SSH server where every connection plays its own game,
and optionally a read-only HTTP API over the shared score table.

Scores are saved under the SSH user name.

HTTP endpoints:
  GET /healthz
  GET /scores?limit=N
  GET /scores/stats

Examples:
  tetcolor serve                        # SSH on the configured address
  tetcolor serve --ssh :2222            # Listen on port 2222
  tetcolor serve --http :8080           # Also serve the score API
  tetcolor serve --ssh "" --http :8080  # Score API only

Users can connect with:
  ssh localhost -p 2222`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "HTTP score API address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (generated if missing)")
}

func runServe(cmd *cobra.Command, _ []string) {
	cfg := loadConfig(cmd)
	if cmd.Flags().Changed("ssh") {
		cfg.Server.SSHAddress = flagSSHAddr
	}
	if cmd.Flags().Changed("http") {
		cfg.Server.HTTPAddress = flagHTTPAddr
	}
	if flagHostKey != "" {
		cfg.Server.HostKey = flagHostKey
	}
	if cfg.Server.SSHAddress == "" && cfg.Server.HTTPAddress == "" {
		fmt.Fprintln(os.Stderr, "Error: nothing to serve, set --ssh or --http")
		os.Exit(1)
	}

	logger, closeLog := mustLogger(cfg.Log, os.Stderr)
	defer closeLog()

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	if cfg.Server.SSHAddress != "" {
		server, err := tui.NewSSHServer(tui.SSHServerConfig{
			Address:     cfg.Server.SSHAddress,
			HostKeyPath: cfg.Server.HostKey,
			IdleTimeout: cfg.Server.IdleTimeout,
			TickRate:    cfg.Runtime.TickRate,
			Sound:       cfg.Runtime.Sound,
		}, func(player string) tui.Game {
			return tetcolor.New(store.Recorder(tetcolor.GameID, player, logger))
		}, logger.WithPrefix("tetcolor-ssh"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
			os.Exit(1)
		}
		g.Go(func() error { return server.Serve(ctx) })
	}

	if cfg.Server.HTTPAddress != "" {
		api := web.New(store, tetcolor.GameID, cfg.Storage.TopN, logger.WithPrefix("tetcolor-http"))
		addr := cfg.Server.HTTPAddress
		g.Go(func() error { return api.Serve(ctx, addr) })
	}

	if err := g.Wait(); err != nil {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
	logger.Info("servers stopped")
}

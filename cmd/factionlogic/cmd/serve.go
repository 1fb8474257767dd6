package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/talgya/faction-logic/internal/api"
	"github.com/talgya/faction-logic/internal/config"
	"github.com/talgya/faction-logic/internal/engine"
	"github.com/talgya/faction-logic/internal/entropy"
	"github.com/talgya/faction-logic/internal/metrics"
	"github.com/talgya/faction-logic/internal/persistence"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve move requests from the game server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context) error {
	cfg, err := loadConfig(true)
	if err != nil {
		return err
	}
	slog.Info("faction logic starting", "version", version, "backend", cfg.StateBackend, "path", cfg.GameStatePath)

	// ── Metrics ───────────────────────────────────────────────────────
	m := metrics.New()
	metricsServer, err := metrics.Listen(cfg.MetricsAddr, m)
	if err != nil {
		return fmt.Errorf("start metrics: %w", err)
	}

	// ── State store ───────────────────────────────────────────────────
	store := openStateStore(cfg, m)
	defer store.Close()

	// ── Engine + HTTP API ─────────────────────────────────────────────
	seed := cfg.RandomSeed
	if seed == 0 {
		seed = entropy.CryptoSeed()
	}
	slog.Info("random source seeded", "seed", seed)
	logic := engine.New(ctx, store, m, entropy.New(seed))

	secureKey := ""
	if cfg.SecureEndpoints {
		secureKey = cfg.SecureKey
	}
	srv := api.NewServer(logic, cfg.HTTPPort, secureKey)
	if err := srv.Start(); err != nil {
		metricsServer.Shutdown(context.Background())
		return err
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	slog.Info("received signal, shutting down", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP shutdown error", "error", err)
	}
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("metrics shutdown error", "error", err)
	}
	slog.Info("shutdown complete")
	return nil
}

// openStateStore opens the configured snapshot store. A store that cannot be
// opened is logged, counted as a persistence failure and replaced by one
// whose every call fails, so the engine starts fresh and keeps retrying.
func openStateStore(cfg config.Config, m *metrics.Metrics) persistence.Store {
	store, err := persistence.Open(cfg.StateBackend, cfg.GameStatePath)
	if err != nil {
		err = fmt.Errorf("open state store: %w", err)
		m.PersistFailed()
		slog.Warn("state store unavailable, running on in-memory state", "backend", cfg.StateBackend, "path", cfg.GameStatePath, "error", err)
		return persistence.Unavailable(err)
	}
	return store
}

package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/talgya/faction-logic/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "factionlogic",
	Short: "Decision engine for an autonomous faction",
	Long: `factionlogic answers the game server's per-turn move requests for one faction
and remembers the points of interest it is told about.

Settings come from the environment (or a .env file): HTTP_PORT, SECURE_ENDPOINTS,
SECURE_KEY, METRICS_ADDR, STATE_BACKEND, GAMESTATE_PATH, RANDOM_SEED, LOG_LEVEL.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogging installs a text handler at level as the default logger.
func setupLogging(level slog.Level) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

// loadConfig reads settings and installs logging from them.
func loadConfig(validate bool) (config.Config, error) {
	load := config.Parse
	if validate {
		load = config.Load
	}
	cfg, err := load()
	if err != nil {
		return config.Config{}, err
	}
	setupLogging(cfg.Level())
	return cfg, nil
}

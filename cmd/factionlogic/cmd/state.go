package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/talgya/faction-logic/internal/memory"
	"github.com/talgya/faction-logic/internal/persistence"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Inspect or reset the persisted game state",
	Long: `The state command works on the snapshot configured by STATE_BACKEND and
GAMESTATE_PATH. Stop the server before resetting.`,
}

var stateShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the persisted game state as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		state, err := store.Load(cmd.Context())
		if errors.Is(err, persistence.ErrNoSnapshot) {
			fmt.Fprintln(cmd.OutOrStdout(), "no game state persisted")
			return nil
		}
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(state, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

var stateResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Overwrite the persisted game state with an empty one",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Save(cmd.Context(), memory.NewGameState("")); err != nil {
			return err
		}
		slog.Info("game state reset")
		return nil
	},
}

func init() {
	stateCmd.AddCommand(stateShowCmd, stateResetCmd)
	rootCmd.AddCommand(stateCmd)
}

// openStore opens the configured store. The secure key is not needed here.
func openStore() (persistence.Store, error) {
	cfg, err := loadConfig(false)
	if err != nil {
		return nil, err
	}
	return persistence.Open(cfg.StateBackend, cfg.GameStatePath)
}

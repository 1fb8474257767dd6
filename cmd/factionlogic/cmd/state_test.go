package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/faction-logic/internal/memory"
	"github.com/talgya/faction-logic/internal/persistence"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestStateShowAndReset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gamestate.db")
	t.Setenv("STATE_BACKEND", persistence.BackendSQLite)
	t.Setenv("GAMESTATE_PATH", path)
	t.Setenv("SECURE_KEY", "")

	assert.Contains(t, run(t, "state", "show"), "no game state persisted")

	store, err := persistence.Open(persistence.BackendSQLite, path)
	require.NoError(t, err)
	state := memory.NewGameState("g7")
	state.Append(memory.POI{X: 3, Y: 4, Resource: true})
	require.NoError(t, store.Save(context.Background(), state))
	require.NoError(t, store.Close())

	shown := run(t, "state", "show")
	assert.Contains(t, shown, `"g7"`)
	assert.Contains(t, shown, `"resource": true`)

	run(t, "state", "reset")
	shown = run(t, "state", "show")
	assert.NotContains(t, shown, `"g7"`)
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "factionlogic v"+version+"\n", run(t, "version"))
}

// Package persistence stores the faction's memory snapshot between process
// restarts. A snapshot is overwritten wholesale on every save.
package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/afero"

	"github.com/talgya/faction-logic/internal/memory"
)

// ErrNoSnapshot is returned by Load when nothing has been persisted yet.
var ErrNoSnapshot = errors.New("no snapshot")

// ErrDigestMismatch is returned by Load when the stored rows do not hash to
// the digest recorded with them.
var ErrDigestMismatch = errors.New("snapshot digest mismatch")

// Store persists a single GameState snapshot.
type Store interface {
	Load(ctx context.Context) (*memory.GameState, error)
	Save(ctx context.Context, state *memory.GameState) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

// Open returns the store for the configured backend at path.
func Open(backend, path string) (Store, error) {
	switch backend {
	case BackendSQLite:
		return OpenSQLite(path)
	case BackendFile:
		return NewFileStore(afero.NewOsFs(), path), nil
	default:
		return nil, fmt.Errorf("unknown state backend %q", backend)
	}
}

// Unavailable returns a Store whose Load and Save always fail with err. It
// stands in for a store that could not be opened so the service can run on
// in-memory state.
func Unavailable(err error) Store {
	return unavailableStore{err: err}
}

type unavailableStore struct {
	err error
}

func (s unavailableStore) Load(context.Context) (*memory.GameState, error) {
	return nil, s.err
}

func (s unavailableStore) Save(context.Context, *memory.GameState) error {
	return s.err
}

func (s unavailableStore) Close() error {
	return nil
}

package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/talgya/faction-logic/internal/memory"
)

// FileStore keeps the snapshot as a JSON document.
type FileStore struct {
	fs   afero.Fs
	path string
}

// NewFileStore stores the snapshot at path on fsys.
func NewFileStore(fsys afero.Fs, path string) *FileStore {
	return &FileStore{fs: fsys, path: path}
}

// Save writes state to a temporary file and renames it over the snapshot.
func (s *FileStore) Save(ctx context.Context, state *memory.GameState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace state: %w", err)
	}
	slog.Debug("state snapshot saved", "backend", BackendFile, "path", s.path, "pois", len(state.POIs()))
	return nil
}

// Load reads the snapshot. A missing file is ErrNoSnapshot.
func (s *FileStore) Load(ctx context.Context) (*memory.GameState, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("read state: %w", err)
	}

	var state memory.GameState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	if state.PointsOfInterest == nil {
		state.PointsOfInterest = []memory.POI{}
	}
	return &state, nil
}

// Close is a no-op; files are closed after every operation.
func (s *FileStore) Close() error {
	return nil
}

package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/faction-logic/internal/game"
	"github.com/talgya/faction-logic/internal/memory"
)

// SQLiteStore keeps the snapshot in a SQLite database.
type SQLiteStore struct {
	conn *sqlx.DB
}

type poiRow struct {
	Seq      int            `db:"seq"`
	X        int            `db:"x"`
	Y        int            `db:"y"`
	Resource bool           `db:"resource"`
	UnitJSON sql.NullString `db:"unit_json"`
}

// OpenSQLite opens or creates the database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create state dir: %w", err)
		}
	}

	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// One writer per process; a single connection keeps WAL and busy handling simple.
	conn.SetMaxOpenConns(1)

	s := &SQLiteStore{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS pois (
		seq INTEGER PRIMARY KEY,
		x INTEGER NOT NULL,
		y INTEGER NOT NULL,
		resource INTEGER NOT NULL,
		unit_json TEXT
	);

	CREATE TABLE IF NOT EXISTS state_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// Save replaces the stored snapshot with state.
func (s *SQLiteStore) Save(ctx context.Context, state *memory.GameState) error {
	tx, err := s.conn.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM pois"); err != nil {
		return err
	}

	stmt, err := tx.PreparexContext(ctx, `INSERT INTO pois (seq, x, y, resource, unit_json) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, p := range state.POIs() {
		var unitJSON sql.NullString
		if p.Unit != nil {
			b, err := json.Marshal(p.Unit)
			if err != nil {
				return fmt.Errorf("marshal poi %d unit: %w", i, err)
			}
			unitJSON = sql.NullString{String: string(b), Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, i, p.X, p.Y, p.Resource, unitJSON); err != nil {
			return fmt.Errorf("insert poi %d: %w", i, err)
		}
	}

	meta := map[string]string{
		"game_id":  state.GameID,
		"digest":   strconv.FormatUint(state.Digest(), 16),
		"saved_at": time.Now().UTC().Format(time.RFC3339),
	}
	for k, v := range meta {
		if _, err := tx.ExecContext(ctx, "INSERT OR REPLACE INTO state_meta (key, value) VALUES (?, ?)", k, v); err != nil {
			return fmt.Errorf("save meta %s: %w", k, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	slog.Debug("state snapshot saved", "backend", BackendSQLite, "game_id", state.GameID, "pois", len(state.POIs()))
	return nil
}

// Load reads the stored snapshot. ErrNoSnapshot if none was ever saved.
func (s *SQLiteStore) Load(ctx context.Context) (*memory.GameState, error) {
	var gameID string
	err := s.conn.GetContext(ctx, &gameID, "SELECT value FROM state_meta WHERE key = 'game_id'")
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("load game id: %w", err)
	}

	var rows []poiRow
	if err := s.conn.SelectContext(ctx, &rows, "SELECT seq, x, y, resource, unit_json FROM pois ORDER BY seq"); err != nil {
		return nil, fmt.Errorf("load pois: %w", err)
	}

	state := memory.NewGameState(gameID)
	for _, r := range rows {
		p := memory.POI{X: r.X, Y: r.Y, Resource: r.Resource}
		if r.UnitJSON.Valid {
			var u game.Unit
			if err := json.Unmarshal([]byte(r.UnitJSON.String), &u); err != nil {
				return nil, fmt.Errorf("decode poi %d unit: %w", r.Seq, err)
			}
			p.Unit = &u
		}
		state.Append(p)
	}

	var digest string
	err = s.conn.GetContext(ctx, &digest, "SELECT value FROM state_meta WHERE key = 'digest'")
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("load digest: %w", err)
	}
	if digest != "" && digest != strconv.FormatUint(state.Digest(), 16) {
		return nil, ErrDigestMismatch
	}
	return state, nil
}

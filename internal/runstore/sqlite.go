package runstore

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/archforge/archforge/internal/engine"
	_ "modernc.org/sqlite"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// timeNow is a package-level variable for testability.
var timeNow = time.Now

// SQLiteStore implements Store on a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// Open creates the data directory if needed, opens the database with
// WAL mode, and runs migrations.
func Open(dataDir string) (*SQLiteStore, error) {
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("runstore: create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, "runs.db")
	db, err := openDB("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("runstore: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return nil, fmt.Errorf("runstore: pragma %q: %w", p, err)
		}
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("runstore: migration: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id             TEXT PRIMARY KEY,
			state          TEXT NOT NULL,
			intake_json    TEXT NOT NULL,
			questions_json TEXT NOT NULL DEFAULT '',
			blueprint_json TEXT NOT NULL DEFAULT '',
			created_at     TEXT NOT NULL,
			updated_at     TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_state ON runs(state);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Save upserts a record. CreatedAt is preserved on update; UpdatedAt
// is always refreshed.
func (s *SQLiteStore) Save(rec *Record) error {
	now := timeNow().UTC().Format(time.RFC3339)
	if rec.CreatedAt == "" {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	_, err := s.db.Exec(`
		INSERT INTO runs (id, state, intake_json, questions_json, blueprint_json, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			state = excluded.state,
			intake_json = excluded.intake_json,
			questions_json = excluded.questions_json,
			blueprint_json = excluded.blueprint_json,
			updated_at = excluded.updated_at`,
		rec.ID, string(rec.State), rec.IntakeJSON, rec.QuestionsJSON, rec.BlueprintJSON,
		rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("runstore: save %q: %w", rec.ID, err)
	}
	return nil
}

// Load returns the record for an ID, or ErrNotFound.
func (s *SQLiteStore) Load(id string) (*Record, error) {
	row := s.db.QueryRow(`
		SELECT id, state, intake_json, questions_json, blueprint_json, created_at, updated_at
		FROM runs WHERE id = ?`, id)

	var rec Record
	var state string
	err := row.Scan(&rec.ID, &state, &rec.IntakeJSON, &rec.QuestionsJSON,
		&rec.BlueprintJSON, &rec.CreatedAt, &rec.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("runstore: load %q: %w", id, err)
	}
	rec.State = engine.State(state)
	return &rec, nil
}

// List returns all records, newest first.
func (s *SQLiteStore) List() ([]Record, error) {
	rows, err := s.db.Query(`
		SELECT id, state, intake_json, questions_json, blueprint_json, created_at, updated_at
		FROM runs ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("runstore: list: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Record
	for rows.Next() {
		var rec Record
		var state string
		if err := rows.Scan(&rec.ID, &state, &rec.IntakeJSON, &rec.QuestionsJSON,
			&rec.BlueprintJSON, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("runstore: scan: %w", err)
		}
		rec.State = engine.State(state)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Delete removes a record. Deleting an unknown ID is not an error.
func (s *SQLiteStore) Delete(id string) error {
	_, err := s.db.Exec(`DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("runstore: delete %q: %w", id, err)
	}
	return nil
}

package history

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/nwidger/depgraph/graph"
)

// SQLiteStore is a graph.HistoryStore backed by a single SQLite file.
// Suitable for local development and single-process deployments that
// want execution history to survive a restart without standing up a
// separate database server.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (and, if necessary, creates) the database at
// path and ensures its schema exists. Pass ":memory:" for a store that
// is discarded when the process exits.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}

	s := &SQLiteStore{db: db}
	if err := s.createTable(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) createTable(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS executions (
			execution_id TEXT PRIMARY KEY,
			timings      TEXT NOT NULL,
			created_at   TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("create executions table: %w", err)
	}
	return nil
}

// SaveExecution implements graph.HistoryStore.
func (s *SQLiteStore) SaveExecution(ctx context.Context, executionID string, timings []graph.Timing) error {
	encoded, err := marshalRecords(toRecords(timings))
	if err != nil {
		return fmt.Errorf("marshal timings: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO executions (execution_id, timings) VALUES (?, ?)
		ON CONFLICT(execution_id) DO UPDATE SET timings = excluded.timings
	`, executionID, encoded)
	if err != nil {
		return fmt.Errorf("insert execution %s: %w", executionID, err)
	}
	return nil
}

// Load returns the Timing sequence recorded for executionID.
func (s *SQLiteStore) Load(ctx context.Context, executionID string) ([]Record, error) {
	var encoded string
	err := s.db.QueryRowContext(ctx, `SELECT timings FROM executions WHERE execution_id = ?`, executionID).Scan(&encoded)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query execution %s: %w", executionID, err)
	}
	return unmarshalRecords(encoded)
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error { return s.db.Close() }

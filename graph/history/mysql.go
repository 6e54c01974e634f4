package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/nwidger/depgraph/graph"
)

// MySQLStore is a graph.HistoryStore backed by MySQL/MariaDB, suitable
// for multi-process deployments that want a shared, durable execution
// history.
type MySQLStore struct {
	db *sql.DB
}

// NewMySQLStore opens a connection pool against dsn and ensures the
// store's schema exists.
//
// dsn follows the go-sql-driver/mysql format:
//
//	user:password@tcp(127.0.0.1:3306)/dbname?parseTime=true
func NewMySQLStore(dsn string) (*MySQLStore, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping mysql: %w", err)
	}

	s := &MySQLStore{db: db}
	if err := s.createTable(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *MySQLStore) createTable(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS executions (
			execution_id VARCHAR(191) PRIMARY KEY,
			timings      JSON NOT NULL,
			created_at   TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("create executions table: %w", err)
	}
	return nil
}

// SaveExecution implements graph.HistoryStore.
func (s *MySQLStore) SaveExecution(ctx context.Context, executionID string, timings []graph.Timing) error {
	encoded, err := marshalRecords(toRecords(timings))
	if err != nil {
		return fmt.Errorf("marshal timings: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO executions (execution_id, timings) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE timings = VALUES(timings)
	`, executionID, encoded)
	if err != nil {
		return fmt.Errorf("insert execution %s: %w", executionID, err)
	}
	return nil
}

// Load returns the Timing sequence recorded for executionID.
func (s *MySQLStore) Load(ctx context.Context, executionID string) ([]Record, error) {
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

// Close releases the underlying connection pool.
func (s *MySQLStore) Close() error { return s.db.Close() }

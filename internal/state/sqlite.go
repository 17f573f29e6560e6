package state

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // sqlite driver
)

// SQLiteStore implements Store on a local SQLite file.
type SQLiteStore struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// NewSQLiteStore creates a new store instance. Open must be called before
// any other method.
func NewSQLiteStore(logger *slog.Logger) *SQLiteStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SQLiteStore{logger: logger}
}

// Open opens the SQLite database at path and runs pending migrations.
// Use ":memory:" for an in-memory database.
func (s *SQLiteStore) Open(ctx context.Context, path string) error {
	dsn := path
	if path != ":memory:" {
		dsn = fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)", path)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("failed to open state database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping state database: %w", err)
	}

	s.db = db
	s.path = path

	if err := s.Migrate(ctx); err != nil {
		_ = db.Close()
		s.db = nil
		return err
	}

	s.logger.Debug("state store opened", "path", path)
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordStart inserts a new running load run.
func (s *SQLiteStore) RecordStart(source, team string) (*LoadRun, error) {
	if s.db == nil {
		return nil, fmt.Errorf("state database not opened")
	}

	run := &LoadRun{
		ID:        uuid.New().String(),
		Source:    source,
		Team:      team,
		Status:    LoadStatusRunning,
		StartedAt: time.Now().UTC(),
	}

	_, err := s.db.Exec(
		`INSERT INTO load_runs (id, source, team, status, started_at) VALUES (?, ?, ?, ?, ?)`,
		run.ID, run.Source, run.Team, run.Status, run.StartedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to record load start: %w", err)
	}
	return run, nil
}

// Complete marks a run finished.
func (s *SQLiteStore) Complete(id string, status LoadStatus, hitters, pitchers int, errMsg string) error {
	if s.db == nil {
		return fmt.Errorf("state database not opened")
	}

	res, err := s.db.Exec(
		`UPDATE load_runs SET status = ?, hitters = ?, pitchers = ?, error = ?, completed_at = ? WHERE id = ?`,
		status, hitters, pitchers, errMsg, time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to complete load run: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("load run not found: %s", id)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (s *SQLiteStore) ListRuns(limit int) ([]*LoadRun, error) {
	if s.db == nil {
		return nil, fmt.Errorf("state database not opened")
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(`
		SELECT id, source, team, status, hitters, pitchers, error, started_at, completed_at
		FROM load_runs
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list load runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []*LoadRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate load runs: %w", err)
	}
	return runs, nil
}

// LatestCompleted returns the newest completed run, or nil if none exists.
func (s *SQLiteStore) LatestCompleted() (*LoadRun, error) {
	if s.db == nil {
		return nil, fmt.Errorf("state database not opened")
	}

	rows, err := s.db.Query(`
		SELECT id, source, team, status, hitters, pitchers, error, started_at, completed_at
		FROM load_runs
		WHERE status = ?
		ORDER BY started_at DESC
		LIMIT 1
	`, LoadStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest run: %w", err)
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		return nil, rows.Err()
	}
	return scanRun(rows)
}

func scanRun(rows *sql.Rows) (*LoadRun, error) {
	run := &LoadRun{}
	var hitters, pitchers sql.NullInt64
	var errMsg sql.NullString
	var completedAt sql.NullTime

	if err := rows.Scan(
		&run.ID, &run.Source, &run.Team, &run.Status,
		&hitters, &pitchers, &errMsg, &run.StartedAt, &completedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to scan load run: %w", err)
	}

	run.Hitters = int(hitters.Int64)
	run.Pitchers = int(pitchers.Int64)
	if errMsg.Valid {
		run.Error = errMsg.String
	}
	if completedAt.Valid {
		run.CompletedAt = &completedAt.Time
	}
	return run, nil
}

var _ Store = (*SQLiteStore)(nil)

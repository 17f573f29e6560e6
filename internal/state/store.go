// Package state tracks loader run history in a SQLite database next to the
// DuckDB file. The dashboard's Loads view and the history command read it.
package state

import "time"

// LoadStatus is the lifecycle state of one loader run.
type LoadStatus string

const (
	LoadStatusRunning   LoadStatus = "running"
	LoadStatusCompleted LoadStatus = "completed"
	LoadStatusFailed    LoadStatus = "failed"
)

// LoadRun is one recorded loader invocation.
type LoadRun struct {
	ID          string
	Source      string
	Team        string
	Status      LoadStatus
	Hitters     int
	Pitchers    int
	Error       string
	StartedAt   time.Time
	CompletedAt *time.Time
}

// Store records and lists loader runs.
type Store interface {
	// RecordStart inserts a new running load and returns it.
	RecordStart(source, team string) (*LoadRun, error)

	// Complete marks a run finished with the given status, row counts, and
	// optional error message.
	Complete(id string, status LoadStatus, hitters, pitchers int, errMsg string) error

	// ListRuns returns the most recent runs, newest first.
	ListRuns(limit int) ([]*LoadRun, error)

	// LatestCompleted returns the newest completed run, or nil if none.
	LatestCompleted() (*LoadRun, error)

	Close() error
}

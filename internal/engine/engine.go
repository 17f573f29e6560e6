// Package engine orchestrates the two halves of rotodash: loading team
// exports into the DuckDB file (full-refresh, transactional) and serving
// read-only queries to the dashboard and CLI.
package engine

import (
	"log/slog"

	"github.com/dugout-labs/rotodash/internal/roster"
	"github.com/dugout-labs/rotodash/internal/state"
)

// Engine ties together the DuckDB file, the load-history store, and league
// pricing parameters. DuckDB connections are opened per operation: writes
// need exclusive access during a load, reads open the file read-only so
// concurrent dashboard instances never block each other.
type Engine struct {
	dbPath  string
	history state.Store
	league  roster.League
	logger  *slog.Logger
}

// Config holds engine configuration.
type Config struct {
	// DatabasePath is the DuckDB file shared by loader and dashboard.
	DatabasePath string
	// History records load runs; may be nil to disable tracking.
	History state.Store
	// League holds auction pricing parameters.
	League roster.League
	// Logger is optional; a discard logger is used if nil.
	Logger *slog.Logger
}

// New creates an engine. It performs no I/O; connections are opened lazily
// by Load and the query methods.
func New(cfg Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	league := cfg.League
	if league.Teams == 0 {
		league = roster.DefaultLeague()
	}
	return &Engine{
		dbPath:  cfg.DatabasePath,
		history: cfg.History,
		league:  league,
		logger:  logger,
	}
}

// DatabasePath returns the configured DuckDB file path.
func (e *Engine) DatabasePath() string { return e.dbPath }

// League returns the auction parameters in effect.
func (e *Engine) League() roster.League { return e.league }

// History returns the load-history store, or nil if tracking is disabled.
func (e *Engine) History() state.Store { return e.history }

// Close releases the history store. DuckDB handles are per-operation and
// already closed.
func (e *Engine) Close() error {
	if e.history != nil {
		return e.history.Close()
	}
	return nil
}

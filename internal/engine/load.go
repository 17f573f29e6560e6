package engine

// load.go - the loader: parse, validate, price, and replace in one transaction

import (
	"context"
	"database/sql"
	"time"

	"github.com/dugout-labs/rotodash/internal/duckdb"
	"github.com/dugout-labs/rotodash/internal/fault"
	"github.com/dugout-labs/rotodash/internal/roster"
	"github.com/dugout-labs/rotodash/internal/state"
)

// LoadResult summarizes a completed load.
type LoadResult struct {
	RunID    string
	Team     string
	Hitters  int
	Pitchers int
	Elapsed  time.Duration
}

// Load reads a team export CSV, prices the players, and replaces that
// team's rows in the hitters and pitchers tables. The replace happens in a
// single transaction: a failure anywhere rolls back and leaves prior table
// contents untouched. Errors carry a fault kind (IO, Validation, Storage).
func (e *Engine) Load(ctx context.Context, csvPath, team string) (*LoadResult, error) {
	start := time.Now()
	e.logger.Info("starting load", "source", csvPath, "team", team)

	var runID string
	if e.history != nil {
		if run, err := e.history.RecordStart(csvPath, team); err != nil {
			e.logger.Warn("failed to record load start", "error", err)
		} else {
			runID = run.ID
		}
	}

	result, err := e.load(ctx, csvPath, team)
	if err != nil {
		e.recordOutcome(runID, state.LoadStatusFailed, 0, 0, err.Error())
		e.logger.Error("load failed", "source", csvPath, "error", err)
		return nil, err
	}

	result.RunID = runID
	result.Elapsed = time.Since(start)
	e.recordOutcome(runID, state.LoadStatusCompleted, result.Hitters, result.Pitchers, "")
	e.logger.Info("load completed",
		"team", team, "hitters", result.Hitters, "pitchers", result.Pitchers,
		"elapsed", result.Elapsed.Round(time.Millisecond))
	return result, nil
}

func (e *Engine) load(ctx context.Context, csvPath, team string) (*LoadResult, error) {
	exp, err := roster.ParseExportFile(csvPath, team)
	if err != nil {
		return nil, err
	}
	if len(exp.Hitters) == 0 && len(exp.Pitchers) == 0 {
		return nil, &fault.ValidationError{
			Section: "export",
			Reason:  "no Hitting or Pitching sections found in " + csvPath,
		}
	}

	roster.Price(exp, e.league)

	db, err := duckdb.Open(ctx, e.dbPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = db.Close() }()

	if err := db.ExecContext(ctx, createHittersSQL); err != nil {
		return nil, err
	}
	if err := db.ExecContext(ctx, createPitchersSQL); err != nil {
		return nil, err
	}

	tx, err := db.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	if err := replaceRows(ctx, tx, team, exp); err != nil {
		_ = tx.Rollback()
		return nil, &fault.StorageError{Path: e.dbPath, Err: err}
	}
	if err := tx.Commit(); err != nil {
		return nil, &fault.StorageError{Path: e.dbPath, Err: err}
	}

	return &LoadResult{
		Team:     team,
		Hitters:  len(exp.Hitters),
		Pitchers: len(exp.Pitchers),
	}, nil
}

// replaceRows deletes a team's prior rows and inserts the new export inside
// the caller's transaction.
func replaceRows(ctx context.Context, tx *sql.Tx, team string, exp *roster.Export) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM hitters WHERE source_team = ?`, team); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM pitchers WHERE source_team = ?`, team); err != nil {
		return err
	}

	for i := range exp.Hitters {
		h := &exp.Hitters[i]
		if _, err := tx.ExecContext(ctx, insertHitterSQL,
			h.SourceTeam, h.ID, h.Pos, h.Player, h.Team, h.Eligible, h.Status,
			h.Age, h.Opponent, h.Salary, h.Contract,
			h.AB, h.H, h.R, h.HR, h.RBI, h.SB, h.AVG, h.GP, h.Price,
		); err != nil {
			return err
		}
	}

	for i := range exp.Pitchers {
		p := &exp.Pitchers[i]
		if _, err := tx.ExecContext(ctx, insertPitcherSQL,
			p.SourceTeam, p.ID, p.Pos, p.Player, p.Team, p.Eligible, p.Status,
			p.Age, p.Opponent, p.Salary, p.Contract,
			p.IP, p.W, p.SV, p.K, p.ERA, p.WHIP,
			p.H, p.AB, p.R, p.RBI, p.HR, p.SB, p.AVG, p.GP, p.Price,
		); err != nil {
			return err
		}
	}

	return nil
}

func (e *Engine) recordOutcome(runID string, status state.LoadStatus, hitters, pitchers int, errMsg string) {
	if e.history == nil || runID == "" {
		return
	}
	if err := e.history.Complete(runID, status, hitters, pitchers, errMsg); err != nil {
		e.logger.Warn("failed to record load outcome", "run_id", runID, "error", err)
	}
}

package engine

// query.go - read-only query path for the dashboard and CLI

import (
	"context"
	"fmt"
	"strings"

	"github.com/dugout-labs/rotodash/internal/duckdb"
	"github.com/dugout-labs/rotodash/internal/fault"
	"github.com/dugout-labs/rotodash/internal/roster"
)

// QueryOptions are pass-through controls for the table views. Sorting and
// filtering happen in DuckDB, not in Go.
type QueryOptions struct {
	// SourceTeam filters rows to one loaded team; empty means all teams.
	SourceTeam string
	// OrderBy is a column name from the queried table. Unknown columns fall
	// back to the default ordering (source_team, price DESC).
	OrderBy string
	// Desc reverses the sort order when OrderBy is set.
	Desc bool
}

var hitterColumns = []string{
	"source_team", "id", "pos", "player", "team", "eligible", "status",
	"age", "opponent", "salary", "contract",
	"ab", "h", "r", "hr", "rbi", "sb", "avg", "gp", "price",
}

var pitcherColumns = []string{
	"source_team", "id", "pos", "player", "team", "eligible", "status",
	"age", "opponent", "salary", "contract",
	"ip", "w", "sv", "k", "era", "whip",
	"h", "ab", "r", "rbi", "hr", "sb", "avg", "gp", "price",
}

// Hitters returns all hitter rows matching opts. A missing database file or
// absent table is a NotFoundError for the caller to render as an empty state.
func (e *Engine) Hitters(ctx context.Context, opts QueryOptions) ([]roster.Hitter, error) {
	db, err := e.openRead(ctx, "hitters")
	if err != nil {
		return nil, err
	}
	defer func() { _ = db.Close() }()

	query, args := buildSelect("hitters", hitterColumns, opts)
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var hitters []roster.Hitter
	for rows.Next() {
		var h roster.Hitter
		if err := rows.Scan(
			&h.SourceTeam, &h.ID, &h.Pos, &h.Player, &h.Team, &h.Eligible, &h.Status,
			&h.Age, &h.Opponent, &h.Salary, &h.Contract,
			&h.AB, &h.H, &h.R, &h.HR, &h.RBI, &h.SB, &h.AVG, &h.GP, &h.Price,
		); err != nil {
			return nil, fmt.Errorf("scanning hitter row: %w", err)
		}
		hitters = append(hitters, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating hitter rows: %w", err)
	}
	return hitters, nil
}

// Pitchers returns all pitcher rows matching opts.
func (e *Engine) Pitchers(ctx context.Context, opts QueryOptions) ([]roster.Pitcher, error) {
	db, err := e.openRead(ctx, "pitchers")
	if err != nil {
		return nil, err
	}
	defer func() { _ = db.Close() }()

	query, args := buildSelect("pitchers", pitcherColumns, opts)
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var pitchers []roster.Pitcher
	for rows.Next() {
		var p roster.Pitcher
		if err := rows.Scan(
			&p.SourceTeam, &p.ID, &p.Pos, &p.Player, &p.Team, &p.Eligible, &p.Status,
			&p.Age, &p.Opponent, &p.Salary, &p.Contract,
			&p.IP, &p.W, &p.SV, &p.K, &p.ERA, &p.WHIP,
			&p.H, &p.AB, &p.R, &p.RBI, &p.HR, &p.SB, &p.AVG, &p.GP, &p.Price,
		); err != nil {
			return nil, fmt.Errorf("scanning pitcher row: %w", err)
		}
		pitchers = append(pitchers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pitcher rows: %w", err)
	}
	return pitchers, nil
}

// SourceTeams returns the distinct source_team tags present in both tables,
// for the dashboard's filter control.
func (e *Engine) SourceTeams(ctx context.Context) ([]string, error) {
	db, err := e.openRead(ctx, "hitters")
	if err != nil {
		return nil, err
	}
	defer func() { _ = db.Close() }()

	rows, err := db.QueryContext(ctx, `
		SELECT DISTINCT source_team FROM hitters
		UNION
		SELECT DISTINCT source_team FROM pitchers
		ORDER BY 1
	`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var teams []string
	for rows.Next() {
		var team string
		if err := rows.Scan(&team); err != nil {
			return nil, fmt.Errorf("scanning source team: %w", err)
		}
		teams = append(teams, team)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating source teams: %w", err)
	}
	return teams, nil
}

// Counts returns the row counts of both tables.
func (e *Engine) Counts(ctx context.Context) (hitters, pitchers int64, err error) {
	db, err := e.openRead(ctx, "hitters")
	if err != nil {
		return 0, 0, err
	}
	defer func() { _ = db.Close() }()

	if err := db.Handle().QueryRowContext(ctx, `SELECT COUNT(*) FROM hitters`).Scan(&hitters); err != nil {
		return 0, 0, &fault.StorageError{Path: e.dbPath, Err: err}
	}
	if err := db.Handle().QueryRowContext(ctx, `SELECT COUNT(*) FROM pitchers`).Scan(&pitchers); err != nil {
		return 0, 0, &fault.StorageError{Path: e.dbPath, Err: err}
	}
	return hitters, pitchers, nil
}

// openRead opens the database read-only and verifies the table exists, so
// callers get a NotFoundError instead of a raw catalog error.
func (e *Engine) openRead(ctx context.Context, table string) (*duckdb.DB, error) {
	db, err := duckdb.OpenReadOnly(ctx, e.dbPath)
	if err != nil {
		return nil, err
	}
	exists, err := db.TableExists(ctx, table)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if !exists {
		_ = db.Close()
		return nil, &fault.NotFoundError{Resource: "table " + table}
	}
	return db, nil
}

// buildSelect assembles the SELECT for a table view. The order-by column is
// checked against the table's column list; user input never reaches the SQL
// text unchecked.
func buildSelect(table string, columns []string, opts QueryOptions) (string, []any) {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(columns, ", "))
	sb.WriteString(" FROM ")
	sb.WriteString(table)

	var args []any
	if opts.SourceTeam != "" {
		sb.WriteString(" WHERE source_team = ?")
		args = append(args, opts.SourceTeam)
	}

	orderBy := "source_team, price DESC"
	if opts.OrderBy != "" && columnAllowed(columns, opts.OrderBy) {
		orderBy = opts.OrderBy
		if opts.Desc {
			orderBy += " DESC"
		}
	}
	sb.WriteString(" ORDER BY ")
	sb.WriteString(orderBy)

	return sb.String(), args
}

func columnAllowed(columns []string, name string) bool {
	for _, c := range columns {
		if c == name {
			return true
		}
	}
	return false
}

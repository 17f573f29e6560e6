package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dugout-labs/rotodash/internal/fault"
	"github.com/dugout-labs/rotodash/internal/roster"
	"github.com/dugout-labs/rotodash/internal/state"
	"github.com/dugout-labs/rotodash/internal/testutil"
)

const slugsExport = `Buffalo Slugs,,,,,,,,,,,,,,,,,,
,Hitting,,,,,,,,,,,,,,,,,
ID,Pos,Player,Team,Eligible,Status,Age,Opponent,Salary,Contract,AB,H,R,HR,RBI,SB,AVG,GP
4721,C,Buster Vance,SF,C,A,29,@LAD,12,2027,410,118,55,18,72,2,0.288,120
5130,1B,Mo Castle,NYY,"1B,DH",A,31,BOS,28,2026,"1,002",150,88,34,101,5,0.295,148
6003,OF,Terry Gale,SEA,"OF,DH",A,25,TEX,4,2028,390,102,61,12,44,21,0.262,115
,,,,,,,,,,,,,,,,,
,Pitching,,,,,,,,,,,,,,,,,
ID,Pos,Player,Team,Eligible,Status,Age,Opponent,Salary,Contract,IP,W,SV,K,ERA,WHIP,GP
8812,SP,Walt Freer,ATL,SP,A,27,MIA,19,2026,180.1,14,0,201,3.12,1.08,31
9044,RP,Gil Haddock,CLE,RP,A,33,DET,7,2025,64.2,4,28,77,2.45,0.98,58
`

const slugsExportV2 = `Buffalo Slugs,,,,,,,,,,,,,,,,,,
,Hitting,,,,,,,,,,,,,,,,,
ID,Pos,Player,Team,Eligible,Status,Age,Opponent,Salary,Contract,AB,H,R,HR,RBI,SB,AVG,GP
5130,1B,Mo Castle,NYY,"1B,DH",A,31,BOS,28,2026,420,125,90,36,105,6,0.298,152
,,,,,,,,,,,,,,,,,
,Pitching,,,,,,,,,,,,,,,,,
ID,Pos,Player,Team,Eligible,Status,Age,Opponent,Salary,Contract,IP,W,SV,K,ERA,WHIP,GP
8812,SP,Walt Freer,ATL,SP,A,27,MIA,19,2026,190.0,15,0,210,3.05,1.05,32
`

func writeExport(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestEngine(t *testing.T, dbPath string) *Engine {
	t.Helper()
	store := state.NewSQLiteStore(testutil.NewTestLogger(t))
	require.NoError(t, store.Open(context.Background(), ":memory:"))
	e := New(Config{
		DatabasePath: dbPath,
		History:      store,
		Logger:       testutil.NewTestLogger(t),
	})
	t.Cleanup(func() { _ = e.Close() })
	return e
}

func TestLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeExport(t, dir, "slugs.csv", slugsExport)
	e := newTestEngine(t, filepath.Join(dir, "league.duckdb"))
	ctx := context.Background()

	result, err := e.Load(ctx, csvPath, "slugs")
	require.NoError(t, err)
	assert.Equal(t, "slugs", result.Team)
	assert.Equal(t, 3, result.Hitters)
	assert.Equal(t, 2, result.Pitchers)
	assert.NotEmpty(t, result.RunID)

	hitters, err := e.Hitters(ctx, QueryOptions{})
	require.NoError(t, err)
	require.Len(t, hitters, 3)
	for _, h := range hitters {
		assert.Equal(t, "slugs", h.SourceTeam)
		assert.GreaterOrEqual(t, h.Price, 0.0)
	}

	pitchers, err := e.Pitchers(ctx, QueryOptions{})
	require.NoError(t, err)
	require.Len(t, pitchers, 2)

	nHitters, nPitchers, err := e.Counts(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, nHitters)
	assert.EqualValues(t, 2, nPitchers)

	run, err := e.History().LatestCompleted()
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, result.RunID, run.ID)
	assert.Equal(t, 3, run.Hitters)
}

func TestLoadReplacesTeamRows(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "league.duckdb")
	e := newTestEngine(t, dbPath)
	ctx := context.Background()

	_, err := e.Load(ctx, writeExport(t, dir, "v1.csv", slugsExport), "slugs")
	require.NoError(t, err)
	_, err = e.Load(ctx, writeExport(t, dir, "rivals.csv", slugsExport), "rivals")
	require.NoError(t, err)

	// Reloading slugs with fewer rows must replace only slugs rows.
	_, err = e.Load(ctx, writeExport(t, dir, "v2.csv", slugsExportV2), "slugs")
	require.NoError(t, err)

	slugs, err := e.Hitters(ctx, QueryOptions{SourceTeam: "slugs"})
	require.NoError(t, err)
	require.Len(t, slugs, 1)
	assert.Equal(t, "Mo Castle", slugs[0].Player)
	assert.Equal(t, 420, slugs[0].AB)

	rivals, err := e.Hitters(ctx, QueryOptions{SourceTeam: "rivals"})
	require.NoError(t, err)
	assert.Len(t, rivals, 3)
}

func TestLoadValidationFailureLeavesTablesUntouched(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "league.duckdb")
	e := newTestEngine(t, dbPath)
	ctx := context.Background()

	_, err := e.Load(ctx, writeExport(t, dir, "good.csv", slugsExport), "slugs")
	require.NoError(t, err)

	bad := `Buffalo Slugs,,,,,,,,,,,,,,,,,,
,Hitting,,,,,,,,,,,,,,,,,
ID,Pos,Player,Team,Eligible,Status,Age,Opponent,Salary,Contract,AB,H,R,HR,RBI,SB,AVG,GP
4721,C,Buster Vance,SF,C,A,29,@LAD,12,2027,410,118,55,18,72,2,not-a-number,120
`
	_, err = e.Load(ctx, writeExport(t, dir, "bad.csv", bad), "slugs")
	require.Error(t, err)
	assert.True(t, fault.IsValidation(err))

	hitters, err := e.Hitters(ctx, QueryOptions{SourceTeam: "slugs"})
	require.NoError(t, err)
	assert.Len(t, hitters, 3, "prior rows must survive a failed load")

	run, err := e.History().LatestCompleted()
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, 3, run.Hitters, "failed run must not become latest completed")
}

func TestLoadEmptyExportRejected(t *testing.T) {
	dir := t.TempDir()
	e := newTestEngine(t, filepath.Join(dir, "league.duckdb"))

	path := writeExport(t, dir, "empty.csv", "just,a,header\n1,2,3\n")
	_, err := e.Load(context.Background(), path, "slugs")
	require.Error(t, err)
	assert.True(t, fault.IsValidation(err))
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	e := newTestEngine(t, filepath.Join(dir, "league.duckdb"))

	_, err := e.Load(context.Background(), filepath.Join(dir, "nope.csv"), "slugs")
	require.Error(t, err)
	assert.True(t, fault.IsIO(err))

	runs, err := e.History().ListRuns(0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, state.LoadStatusFailed, runs[0].Status)
}

func TestQueryMissingDatabase(t *testing.T) {
	e := newTestEngine(t, filepath.Join(t.TempDir(), "absent.duckdb"))

	_, err := e.Hitters(context.Background(), QueryOptions{})
	require.Error(t, err)
	assert.True(t, fault.IsNotFound(err))
}

func TestSourceTeams(t *testing.T) {
	dir := t.TempDir()
	e := newTestEngine(t, filepath.Join(dir, "league.duckdb"))
	ctx := context.Background()

	_, err := e.Load(ctx, writeExport(t, dir, "a.csv", slugsExport), "slugs")
	require.NoError(t, err)
	_, err = e.Load(ctx, writeExport(t, dir, "b.csv", slugsExport), "rivals")
	require.NoError(t, err)

	teams, err := e.SourceTeams(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"rivals", "slugs"}, teams)
}

func TestHittersOrdering(t *testing.T) {
	dir := t.TempDir()
	e := newTestEngine(t, filepath.Join(dir, "league.duckdb"))
	ctx := context.Background()

	_, err := e.Load(ctx, writeExport(t, dir, "a.csv", slugsExport), "slugs")
	require.NoError(t, err)

	hitters, err := e.Hitters(ctx, QueryOptions{OrderBy: "hr", Desc: true})
	require.NoError(t, err)
	require.Len(t, hitters, 3)
	assert.Equal(t, "Mo Castle", hitters[0].Player)
	assert.Equal(t, "Terry Gale", hitters[2].Player)

	// Unknown column falls back to the default ordering instead of erroring.
	_, err = e.Hitters(ctx, QueryOptions{OrderBy: "hr; DROP TABLE hitters"})
	require.NoError(t, err)
}

func TestReplaceRowsRollsBackOnInsertFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	exp := &roster.Export{
		Hitters: []roster.Hitter{{SourceTeam: "slugs", Player: "Buster Vance"}},
	}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM hitters").
		WithArgs("slugs").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM pitchers").
		WithArgs("slugs").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO hitters").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	ctx := context.Background()
	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)

	err = replaceRows(ctx, tx, "slugs", exp)
	require.Error(t, err)
	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

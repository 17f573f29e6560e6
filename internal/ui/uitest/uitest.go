// Package uitest provides fixtures for dashboard handler tests.
package uitest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/require"

	"github.com/dugout-labs/rotodash/internal/engine"
	"github.com/dugout-labs/rotodash/internal/state"
	"github.com/dugout-labs/rotodash/internal/testutil"
)

// SampleExport is a two-section team export with two hitters and one pitcher.
const SampleExport = `Buffalo Slugs,,,,,,,,,,,,,,,,,,
,Hitting,,,,,,,,,,,,,,,,,
ID,Pos,Player,Team,Eligible,Status,Age,Opponent,Salary,Contract,AB,H,R,HR,RBI,SB,AVG,GP
4721,C,Buster Vance,SF,C,A,29,@LAD,12,2027,410,118,55,18,72,2,0.288,120
5130,1B,Mo Castle,NYY,"1B,DH",A,31,BOS,28,2026,520,150,88,34,101,5,0.295,148
,,,,,,,,,,,,,,,,,
,Pitching,,,,,,,,,,,,,,,,,
ID,Pos,Player,Team,Eligible,Status,Age,Opponent,Salary,Contract,IP,W,SV,K,ERA,WHIP,GP
8812,SP,Walt Freer,ATL,SP,A,27,MIA,19,2026,180.1,14,0,201,3.12,1.08,31
`

// NewEngine creates an engine backed by a temp DuckDB file with SampleExport
// loaded as team "slugs", plus an in-memory history store.
func NewEngine(t *testing.T) *engine.Engine {
	t.Helper()

	dir := t.TempDir()
	csvPath := filepath.Join(dir, "slugs.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(SampleExport), 0o644))

	store := state.NewSQLiteStore(testutil.NewTestLogger(t))
	require.NoError(t, store.Open(context.Background(), ":memory:"))

	e := engine.New(engine.Config{
		DatabasePath: filepath.Join(dir, "league.duckdb"),
		History:      store,
		Logger:       testutil.NewTestLogger(t),
	})
	t.Cleanup(func() { _ = e.Close() })

	_, err := e.Load(context.Background(), csvPath, "slugs")
	require.NoError(t, err)
	return e
}

// EmptyEngine creates an engine whose DuckDB file does not exist yet.
func EmptyEngine(t *testing.T) *engine.Engine {
	t.Helper()

	store := state.NewSQLiteStore(testutil.NewTestLogger(t))
	require.NoError(t, store.Open(context.Background(), ":memory:"))

	e := engine.New(engine.Config{
		DatabasePath: filepath.Join(t.TempDir(), "league.duckdb"),
		History:      store,
		Logger:       testutil.NewTestLogger(t),
	})
	t.Cleanup(func() { _ = e.Close() })
	return e
}

// NewSessionStore creates a cookie session store with a fixed test secret.
func NewSessionStore() *sessions.CookieStore {
	return sessions.NewCookieStore([]byte("test-secret-key-32-bytes-long!!!"))
}

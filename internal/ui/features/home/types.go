// Package home provides the dashboard landing page.
package home

import "github.com/dugout-labs/rotodash/internal/state"

// DashboardStats is the data behind the landing page cards.
type DashboardStats struct {
	Hitters  int64
	Pitchers int64
	Teams    int
	LastLoad *state.LoadRun
	Loaded   bool
}

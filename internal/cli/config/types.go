// Package config provides configuration management for the rotodash CLI.
package config

// UIConfig holds configuration for the dashboard server.
type UIConfig struct {
	Host          string `koanf:"host"`
	Port          int    `koanf:"port"`
	AutoOpen      bool   `koanf:"auto_open"`
	Watch         bool   `koanf:"watch"`
	SessionSecret string `koanf:"session_secret"`
}

// DefaultUIConfig returns a UIConfig with default values.
func DefaultUIConfig() *UIConfig {
	return &UIConfig{
		Port:     8765,
		AutoOpen: true,
		Watch:    true,
	}
}

// GetUIConfig returns the UI config with defaults applied for any unset values.
func (c *Config) GetUIConfig() *UIConfig {
	if c.UI == nil {
		return DefaultUIConfig()
	}
	ui := c.UI
	if ui.Port == 0 {
		ui.Port = 8765
	}
	return ui
}

// LeagueConfig holds auction pricing parameters.
type LeagueConfig struct {
	Teams         int     `koanf:"teams"`
	BudgetPerTeam float64 `koanf:"budget_per_team"`
	HitterShare   float64 `koanf:"hitter_share"`
}

// Config holds all CLI configuration options.
type Config struct {
	DatabasePath string        `koanf:"database"`
	StatePath    string        `koanf:"state_path"`
	Verbose      bool          `koanf:"verbose"`
	League       *LeagueConfig `koanf:"league"`
	UI           *UIConfig     `koanf:"ui"`
}

// Default configuration values.
const (
	DefaultDatabaseFile = "league.duckdb"
	DefaultStateFile    = ".rotodash/state.db"
)

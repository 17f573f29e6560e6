package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Cleanup(ResetConfig)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultDatabaseFile, cfg.DatabasePath)
	assert.Equal(t, DefaultStateFile, cfg.StatePath)
	assert.False(t, cfg.Verbose)
	assert.Nil(t, cfg.League)
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Cleanup(ResetConfig)

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "rotodash.yaml")
	content := `
database: /data/league.duckdb
verbose: true
league:
  teams: 10
  budget_per_team: 300
  hitter_share: 0.65
ui:
  port: 9000
  auto_open: false
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o644))

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, "/data/league.duckdb", cfg.DatabasePath)
	assert.True(t, cfg.Verbose)
	require.NotNil(t, cfg.League)
	assert.Equal(t, 10, cfg.League.Teams)
	assert.Equal(t, 300.0, cfg.League.BudgetPerTeam)
	assert.Equal(t, 0.65, cfg.League.HitterShare)
	require.NotNil(t, cfg.UI)
	assert.Equal(t, 9000, cfg.UI.Port)
	assert.False(t, cfg.UI.AutoOpen)
	assert.True(t, cfg.UI.Watch, "unset ui keys keep their defaults")
	assert.Equal(t, cfgPath, GetConfigFileUsed())
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	t.Cleanup(ResetConfig)

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "rotodash.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("database: from-file.duckdb\n"), 0o644))

	t.Setenv("ROTODASH_DATABASE", "from-env.duckdb")
	t.Setenv("ROTODASH_UI__PORT", "7777")

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, "from-env.duckdb", cfg.DatabasePath)
	require.NotNil(t, cfg.UI)
	assert.Equal(t, 7777, cfg.UI.Port)
}

func TestLoadConfigFlagsOverrideEnv(t *testing.T) {
	t.Cleanup(ResetConfig)

	t.Setenv("ROTODASH_DATABASE", "from-env.duckdb")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("database", "", "")
	flags.String("state", "", "")
	require.NoError(t, flags.Parse([]string{
		"--database", "from-flag.duckdb",
		"--state", "custom/state.db",
	}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)

	assert.Equal(t, "from-flag.duckdb", cfg.DatabasePath)
	assert.Equal(t, "custom/state.db", cfg.StatePath, "--state flag maps to state_path")
}

func TestLoadConfigUnchangedFlagsIgnored(t *testing.T) {
	t.Cleanup(ResetConfig)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("database", "", "")
	require.NoError(t, flags.Parse(nil))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, DefaultDatabaseFile, cfg.DatabasePath)
}

func TestGetUIConfigDefaults(t *testing.T) {
	cfg := &Config{}
	ui := cfg.GetUIConfig()
	assert.Equal(t, 8765, ui.Port)
	assert.True(t, ui.AutoOpen)
	assert.True(t, ui.Watch)

	cfg = &Config{UI: &UIConfig{AutoOpen: false}}
	ui = cfg.GetUIConfig()
	assert.Equal(t, 8765, ui.Port, "unset port falls back to default")
	assert.False(t, ui.AutoOpen)
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Cleanup(ResetConfig)

	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
}

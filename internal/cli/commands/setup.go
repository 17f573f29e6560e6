// Package commands implements the rotodash subcommands.
package commands

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dugout-labs/rotodash/internal/cli/config"
	"github.com/dugout-labs/rotodash/internal/engine"
	"github.com/dugout-labs/rotodash/internal/roster"
	"github.com/dugout-labs/rotodash/internal/state"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg    *config.Config
	Logger *slog.Logger
	Engine *engine.Engine
}

// NewCommandContext creates a CommandContext with an engine and history store.
// Returns the context and a cleanup function that must be called (typically via defer).
func NewCommandContext(cmd *cobra.Command) (*CommandContext, func(), error) {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	eng, err := createEngine(cmd.Context(), cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = eng.Close()
	}

	return &CommandContext{
		Cfg:    cfg,
		Logger: logger,
		Engine: eng,
	}, cleanup, nil
}

// NewCommandContextWithoutEngine creates a CommandContext without an engine.
// Useful for commands that don't need database access.
func NewCommandContextWithoutEngine(cmd *cobra.Command) *CommandContext {
	return &CommandContext{
		Cfg:    getConfig(),
		Logger: config.GetLogger(cmd.Context()),
	}
}

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	database := getEnvOrDefault("ROTODASH_DATABASE", config.DefaultDatabaseFile)
	statePath := getEnvOrDefault("ROTODASH_STATE_PATH", config.DefaultStateFile)
	verbose := os.Getenv("ROTODASH_VERBOSE") == "true"

	return &config.Config{
		DatabasePath: database,
		StatePath:    statePath,
		Verbose:      verbose,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// leagueFromConfig maps the optional league section onto pricing parameters.
func leagueFromConfig(lc *config.LeagueConfig) roster.League {
	league := roster.DefaultLeague()
	if lc == nil {
		return league
	}
	if lc.Teams > 0 {
		league.Teams = lc.Teams
	}
	if lc.BudgetPerTeam > 0 {
		league.BudgetPerTeam = lc.BudgetPerTeam
	}
	if lc.HitterShare > 0 {
		league.HitterShare = lc.HitterShare
	}
	return league
}

func createEngine(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*engine.Engine, error) {
	// Ensure state directory exists
	stateDir := filepath.Dir(cfg.StatePath)
	if stateDir != "." && stateDir != "" {
		if err := os.MkdirAll(stateDir, 0750); err != nil {
			return nil, err
		}
	}

	store := state.NewSQLiteStore(logger)
	if err := store.Open(ctx, cfg.StatePath); err != nil {
		return nil, err
	}

	return engine.New(engine.Config{
		DatabasePath: cfg.DatabasePath,
		History:      store,
		League:       leagueFromConfig(cfg.League),
		Logger:       logger,
	}), nil
}

package commands

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dugout-labs/rotodash/internal/cli/config"
)

// LoadOptions holds options for the load command.
type LoadOptions struct {
	Team        string
	Teams       int
	Budget      float64
	HitterShare float64
}

// NewLoadCommand creates the load command.
func NewLoadCommand() *cobra.Command {
	opts := &LoadOptions{}

	cmd := &cobra.Command{
		Use:   "load <export.csv>",
		Short: "Load a team export into the database",
		Long: `Load a fantasy team export CSV into the DuckDB database.

The export is split into its Hitting and Pitching sections, validated,
priced with z-score auction values, and written in a single transaction.
Reloading a team replaces that team's rows; other teams are untouched.`,
		Example: `  # Load an export, tagging rows with the file's base name
  rotodash load exports/slugs.csv

  # Tag rows with an explicit team name
  rotodash load exports/week12.csv --team slugs`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.Team, "team", "", "Team tag for the loaded rows (default: file base name)")
	cmd.Flags().IntVar(&opts.Teams, "teams", 0, "Number of teams in the league (default: 12)")
	cmd.Flags().Float64Var(&opts.Budget, "budget", 0, "Auction budget per team (default: 260)")
	cmd.Flags().Float64Var(&opts.HitterShare, "hitter-share", 0, "Share of the budget spent on hitters (default: 0.69)")

	return cmd
}

func runLoad(cmd *cobra.Command, csvPath string, opts *LoadOptions) error {
	cfg := getConfig()
	applyLeagueFlags(cfg, opts)

	eng, err := createEngine(cmd.Context(), cfg, config.GetLogger(cmd.Context()))
	if err != nil {
		return err
	}
	defer func() { _ = eng.Close() }()

	team := opts.Team
	if team == "" {
		base := filepath.Base(csvPath)
		team = strings.TrimSuffix(base, filepath.Ext(base))
	}

	result, err := eng.Load(cmd.Context(), csvPath, team)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Loaded %s into %s\n", team, cfg.DatabasePath)
	_, _ = fmt.Fprintf(out, "  hitters:  %d\n", result.Hitters)
	_, _ = fmt.Fprintf(out, "  pitchers: %d\n", result.Pitchers)
	_, _ = fmt.Fprintf(out, "  elapsed:  %s\n", result.Elapsed.Round(time.Millisecond))
	return nil
}

// applyLeagueFlags folds the pricing flags into the loaded configuration.
func applyLeagueFlags(cfg *config.Config, opts *LoadOptions) {
	if opts.Teams == 0 && opts.Budget == 0 && opts.HitterShare == 0 {
		return
	}
	if cfg.League == nil {
		cfg.League = &config.LeagueConfig{}
	}
	if opts.Teams > 0 {
		cfg.League.Teams = opts.Teams
	}
	if opts.Budget > 0 {
		cfg.League.BudgetPerTeam = opts.Budget
	}
	if opts.HitterShare > 0 {
		cfg.League.HitterShare = opts.HitterShare
	}
}

package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/dugout-labs/rotodash/internal/state"
)

// HistoryOptions holds options for the history command.
type HistoryOptions struct {
	Limit  int
	Format string
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand() *cobra.Command {
	opts := &HistoryOptions{}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent load runs",
		Long: `Show recent load runs recorded in the history database.

Each row shows the source file, team tag, outcome, and row counts for
one invocation of 'rotodash load'.`,
		Example: `  # Show the last 20 runs
  rotodash history

  # Show more runs as JSON
  rotodash history --limit 100 --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHistory(cmd, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 20, "Maximum number of runs to show")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "table", "Output format: table, json")

	return cmd
}

func runHistory(cmd *cobra.Command, opts *HistoryOptions) error {
	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	runs, err := cmdCtx.Engine.History().ListRuns(opts.Limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if opts.Format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		_, _ = fmt.Fprintln(out, "No load runs recorded yet")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Started", "Team", "Status", "Hitters", "Pitchers", "Source"})

	for _, run := range runs {
		t.AppendRow(table.Row{
			run.StartedAt.Format(time.RFC3339),
			run.Team,
			statusLabel(run),
			run.Hitters,
			run.Pitchers,
			run.Source,
		})
	}
	t.Render()

	return nil
}

func statusLabel(run *state.LoadRun) string {
	if run.Status == state.LoadStatusFailed && run.Error != "" {
		return fmt.Sprintf("%s (%s)", run.Status, run.Error)
	}
	return string(run.Status)
}

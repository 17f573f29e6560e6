// Package loads shows the loader run history in the dashboard.
package loads

import (
	"context"
	"fmt"
	"html"
	"io"
	"time"

	"github.com/a-h/templ"

	"github.com/dugout-labs/rotodash/internal/state"
	"github.com/dugout-labs/rotodash/internal/ui/features/common"
)

// LoadsView renders the run history table inside the element the updates
// stream patches.
func LoadsView(runs []*state.LoadRun) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div id="loads-view">`+"\n"); err != nil {
			return err
		}

		if len(runs) == 0 {
			if err := common.EmptyState("No loads recorded yet.").Render(ctx, w); err != nil {
				return err
			}
			_, err := io.WriteString(w, "</div>\n")
			return err
		}

		if _, err := io.WriteString(w, `<table class="stat-table">
<thead><tr><th>Started</th><th>Team</th><th>Status</th><th>Hitters</th><th>Pitchers</th><th>Source</th></tr></thead>
<tbody>
`); err != nil {
			return err
		}

		for _, run := range runs {
			errNote := ""
			if run.Status == state.LoadStatusFailed && run.Error != "" {
				errNote = " title=\"" + html.EscapeString(run.Error) + "\""
			}
			if _, err := fmt.Fprintf(w,
				`<tr><td>%s</td><td>%s</td><td class="status-%s"%s>%s</td><td class="num">%d</td><td class="num">%d</td><td>%s</td></tr>`+"\n",
				run.StartedAt.Format(time.RFC822),
				html.EscapeString(run.Team),
				run.Status, errNote, run.Status,
				run.Hitters, run.Pitchers,
				html.EscapeString(run.Source)); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, "</tbody>\n</table>\n</div>\n")
		return err
	})
}

package players

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/url"

	"github.com/a-h/templ"

	"github.com/dugout-labs/rotodash/internal/roster"
	"github.com/dugout-labs/rotodash/internal/ui/features/common"
)

// HittersView renders the hitters table (or an empty state) inside the
// element the updates stream patches.
func HittersView(hitters []roster.Hitter, opts ViewOptions) templ.Component {
	rows := make([][]string, len(hitters))
	for i, h := range hitters {
		rows[i] = []string{
			h.SourceTeam, h.Pos, h.Player, h.Team, h.Eligible, h.Status,
			common.Itoa(h.Age), h.Opponent, common.Itoa(h.Salary), h.Contract,
			common.Itoa(h.AB), common.Itoa(h.H), common.Itoa(h.R), common.Itoa(h.HR),
			common.Itoa(h.RBI), common.Itoa(h.SB), common.FormatAvg(h.AVG),
			common.Itoa(h.GP), common.FormatPrice(h.Price),
		}
	}
	return tableView(hitterColumns, rows, opts, "No hitters loaded yet.")
}

// PitchersView renders the pitchers table (or an empty state).
func PitchersView(pitchers []roster.Pitcher, opts ViewOptions) templ.Component {
	rows := make([][]string, len(pitchers))
	for i, p := range pitchers {
		rows[i] = []string{
			p.SourceTeam, p.Pos, p.Player, p.Team, p.Eligible, p.Status,
			common.Itoa(p.Age), p.Opponent, common.Itoa(p.Salary), p.Contract,
			common.FormatIP(p.IP), common.Itoa(p.W), common.Itoa(p.SV), common.Itoa(p.K),
			common.FormatERA(p.ERA), common.FormatERA(p.WHIP),
			common.Itoa(p.GP), common.FormatPrice(p.Price),
		}
	}
	return tableView(pitcherColumns, rows, opts, "No pitchers loaded yet.")
}

// tableView writes the patchable container with either the stat table or an
// empty state.
func tableView(cols []column, rows [][]string, opts ViewOptions, emptyMsg string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div id="players-view">`+"\n"); err != nil {
			return err
		}

		if len(rows) == 0 {
			if err := common.EmptyState(emptyMsg).Render(ctx, w); err != nil {
				return err
			}
			_, err := io.WriteString(w, "</div>\n")
			return err
		}

		if _, err := io.WriteString(w, `<table class="stat-table">`+"\n<thead><tr>\n"); err != nil {
			return err
		}
		for _, col := range cols {
			if err := writeHeaderCell(w, col, opts); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</tr></thead>\n<tbody>\n"); err != nil {
			return err
		}

		for _, row := range rows {
			if _, err := io.WriteString(w, "<tr>"); err != nil {
				return err
			}
			for i, cell := range row {
				class := ""
				if cols[i].class != "" {
					class = fmt.Sprintf(" class=%q", cols[i].class)
				}
				if _, err := fmt.Fprintf(w, "<td%s>%s</td>", class, html.EscapeString(cell)); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "</tr>\n"); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, "</tbody>\n</table>\n</div>\n")
		return err
	})
}

// writeHeaderCell renders one sortable column header. Clicking an already
// sorted column flips the direction.
func writeHeaderCell(w io.Writer, col column, opts ViewOptions) error {
	sorted := opts.Sort == col.key
	class := ""
	if sorted {
		class = ` class="sorted"`
	}

	q := url.Values{}
	if opts.Team != "" {
		q.Set("team", opts.Team)
	}
	q.Set("sort", col.key)
	if sorted && !opts.Desc {
		q.Set("desc", "1")
	}

	marker := ""
	if sorted {
		marker = " ↑"
		if opts.Desc {
			marker = " ↓"
		}
	}

	_, err := fmt.Fprintf(w, "<th%s><a href=\"%s?%s\">%s%s</a></th>\n",
		class, opts.Path, q.Encode(), html.EscapeString(col.label), marker)
	return err
}

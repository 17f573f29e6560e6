package home

import (
	"context"
	"fmt"
	"html"
	"io"
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/dugout-labs/rotodash/internal/ui/features/common"
)

// HomeView renders the landing page cards inside the element the updates
// stream patches.
func HomeView(stats DashboardStats) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div id="home-view">`+"\n"); err != nil {
			return err
		}

		if !stats.Loaded {
			if err := common.EmptyState("No rosters loaded yet.").Render(ctx, w); err != nil {
				return err
			}
			_, err := io.WriteString(w, "</div>\n")
			return err
		}

		if _, err := io.WriteString(w, `<div class="cards">`+"\n"); err != nil {
			return err
		}
		cards := []struct {
			value string
			label string
		}{
			{strconv.FormatInt(stats.Hitters, 10), "Hitters"},
			{strconv.FormatInt(stats.Pitchers, 10), "Pitchers"},
			{strconv.Itoa(stats.Teams), "Teams"},
		}
		for _, card := range cards {
			if _, err := fmt.Fprintf(w, `<div class="card"><div class="value">%s</div><div class="label">%s</div></div>`+"\n",
				card.value, card.label); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</div>\n"); err != nil {
			return err
		}

		if stats.LastLoad != nil {
			if _, err := fmt.Fprintf(w, `<p class="last-load">Last load: <strong>%s</strong> at %s (%d hitters, %d pitchers)</p>`+"\n",
				html.EscapeString(stats.LastLoad.Team),
				stats.LastLoad.StartedAt.Format(time.RFC822),
				stats.LastLoad.Hitters,
				stats.LastLoad.Pitchers); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, "</div>\n")
		return err
	})
}

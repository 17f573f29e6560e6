package home

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dugout-labs/rotodash/internal/engine"
	"github.com/dugout-labs/rotodash/internal/fault"
	"github.com/dugout-labs/rotodash/internal/ui/features/common"
	"github.com/dugout-labs/rotodash/internal/ui/features/sections"
	"github.com/dugout-labs/rotodash/internal/ui/notifier"
)

// Handlers provides HTTP handlers for the home feature.
type Handlers struct {
	engine       *engine.Engine
	sessionStore sessions.Store
	notifier     *notifier.Notifier
	isDev        bool
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(eng *engine.Engine, sessionStore sessions.Store, notify *notifier.Notifier, isDev bool) *Handlers {
	return &Handlers{
		engine:       eng,
		sessionStore: sessionStore,
		notifier:     notify,
		isDev:        isDev,
	}
}

// HomePage renders the landing page with full content.
func (h *Handlers) HomePage(w http.ResponseWriter, r *http.Request) {
	stats, err := h.buildStats(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	sidebar := common.SidebarData{
		CurrentPath: "/",
		Sections:    sections.FromRequest(h.sessionStore, r),
	}
	if teams, err := h.engine.SourceTeams(r.Context()); err == nil {
		sidebar.Teams = teams
	}

	if err := common.Layout("Dashboard", h.isDev, "/updates", sidebar, HomeView(stats)).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// HomeUpdates is the long-lived SSE endpoint for the landing page. It pushes
// fresh stats when the database changes; initial state is server-rendered by
// HomePage.
func (h *Handlers) HomeUpdates(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	updates := h.notifier.Subscribe()
	defer h.notifier.Unsubscribe(updates)

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-updates:
			stats, err := h.buildStats(r)
			if err != nil {
				_ = sse.ConsoleError(err)
				continue
			}
			if err := sse.PatchElementTempl(HomeView(stats)); err != nil {
				_ = sse.ConsoleError(err)
			}
		}
	}
}

// buildStats assembles the landing page data. A missing database yields the
// unloaded state.
func (h *Handlers) buildStats(r *http.Request) (DashboardStats, error) {
	var stats DashboardStats

	hitters, pitchers, err := h.engine.Counts(r.Context())
	if err != nil {
		if fault.IsNotFound(err) {
			return stats, nil
		}
		return stats, err
	}
	stats.Loaded = true
	stats.Hitters = hitters
	stats.Pitchers = pitchers

	if teams, err := h.engine.SourceTeams(r.Context()); err == nil {
		stats.Teams = len(teams)
	}

	if h.engine.History() != nil {
		if run, err := h.engine.History().LatestCompleted(); err == nil {
			stats.LastLoad = run
		}
	}

	return stats, nil
}

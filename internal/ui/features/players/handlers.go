package players

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/gorilla/sessions"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dugout-labs/rotodash/internal/engine"
	"github.com/dugout-labs/rotodash/internal/fault"
	"github.com/dugout-labs/rotodash/internal/ui/features/common"
	"github.com/dugout-labs/rotodash/internal/ui/features/sections"
	"github.com/dugout-labs/rotodash/internal/ui/notifier"
)

// Handlers provides HTTP handlers for the hitter and pitcher tables.
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

// HittersPage renders the hitters table page.
func (h *Handlers) HittersPage(w http.ResponseWriter, r *http.Request) {
	h.playersPage(w, r, "Hitters", "/hitters")
}

// PitchersPage renders the pitchers table page.
func (h *Handlers) PitchersPage(w http.ResponseWriter, r *http.Request) {
	h.playersPage(w, r, "Pitchers", "/pitchers")
}

func (h *Handlers) playersPage(w http.ResponseWriter, r *http.Request, title, path string) {
	opts := viewOptions(r, path)

	view, err := h.buildView(r, path, opts)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	sidebar := h.buildSidebar(r, path, opts.Team)

	updatesPath := path + "/updates"
	if r.URL.RawQuery != "" {
		updatesPath += "?" + r.URL.RawQuery
	}

	if err := common.Layout(title, h.isDev, updatesPath, sidebar, view).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// HittersUpdates is the long-lived SSE endpoint for the hitters page. It
// re-sends the table whenever the database changes.
func (h *Handlers) HittersUpdates(w http.ResponseWriter, r *http.Request) {
	h.playersUpdates(w, r, "/hitters")
}

// PitchersUpdates is the SSE endpoint for the pitchers page.
func (h *Handlers) PitchersUpdates(w http.ResponseWriter, r *http.Request) {
	h.playersUpdates(w, r, "/pitchers")
}

func (h *Handlers) playersUpdates(w http.ResponseWriter, r *http.Request, path string) {
	sse := datastar.NewSSE(w, r)

	updates := h.notifier.Subscribe()
	defer h.notifier.Unsubscribe(updates)

	opts := viewOptions(r, path)

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-updates:
			view, err := h.buildView(r, path, opts)
			if err != nil {
				_ = sse.ConsoleError(err)
				continue
			}
			if err := sse.PatchElementTempl(view); err != nil {
				_ = sse.ConsoleError(err)
			}
		}
	}
}

// buildView queries the requested table and renders it. A missing database
// or table becomes the empty state, not an error.
func (h *Handlers) buildView(r *http.Request, path string, opts ViewOptions) (templ.Component, error) {
	query := engine.QueryOptions{
		SourceTeam: opts.Team,
		OrderBy:    opts.Sort,
		Desc:       opts.Desc,
	}

	if path == "/pitchers" {
		pitchers, err := h.engine.Pitchers(r.Context(), query)
		if err != nil && !fault.IsNotFound(err) {
			return nil, err
		}
		return PitchersView(pitchers, opts), nil
	}

	hitters, err := h.engine.Hitters(r.Context(), query)
	if err != nil && !fault.IsNotFound(err) {
		return nil, err
	}
	return HittersView(hitters, opts), nil
}

func (h *Handlers) buildSidebar(r *http.Request, path, team string) common.SidebarData {
	sidebar := common.SidebarData{
		CurrentPath: path,
		ActiveTeam:  team,
		Sections:    sections.FromRequest(h.sessionStore, r),
	}
	if teams, err := h.engine.SourceTeams(r.Context()); err == nil {
		sidebar.Teams = teams
	}
	return sidebar
}

// viewOptions extracts filter and sort state from the request.
func viewOptions(r *http.Request, path string) ViewOptions {
	q := r.URL.Query()
	return ViewOptions{
		Path: path,
		Team: q.Get("team"),
		Sort: q.Get("sort"),
		Desc: q.Get("desc") == "1",
	}
}

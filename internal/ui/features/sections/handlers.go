package sections

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dugout-labs/rotodash/internal/engine"
	"github.com/dugout-labs/rotodash/internal/ui/features/common"
)

// Handlers provides HTTP handlers for sidebar section management.
type Handlers struct {
	engine       *engine.Engine
	sessionStore sessions.Store
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(eng *engine.Engine, sessionStore sessions.Store) *Handlers {
	return &Handlers{
		engine:       eng,
		sessionStore: sessionStore,
	}
}

// addSignals is the datastar signal payload for adding a section.
type addSignals struct {
	NewSection string `json:"newSection"`
}

// Add creates a new placeholder section from the sidebar form and patches
// the sidebar.
func (h *Handlers) Add(w http.ResponseWriter, r *http.Request) {
	var signals addSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		sse := datastar.NewSSE(w, r)
		_ = sse.ConsoleError(err)
		return
	}

	name := strings.TrimSpace(signals.NewSection)
	if name == "" {
		sse := datastar.NewSSE(w, r)
		_ = sse.ConsoleError(errEmptyName)
		return
	}

	state := loadState(h.sessionStore, r)
	if !contains(state.Order, name) {
		state.Order = append(state.Order, name)
	}

	if err := saveState(h.sessionStore, w, r, state); err != nil {
		sse := datastar.NewSSE(w, r)
		_ = sse.ConsoleError(err)
		return
	}

	h.patchSidebar(w, r, state)
}

// Toggle flips the visibility of one section and patches the sidebar.
// Toggling an unknown section is a no-op patch.
func (h *Handlers) Toggle(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		sse := datastar.NewSSE(w, r)
		_ = sse.ConsoleError(err)
		return
	}

	state := loadState(h.sessionStore, r)
	if contains(state.Order, name) {
		state.Hidden[name] = !state.Hidden[name]
		if err := saveState(h.sessionStore, w, r, state); err != nil {
			sse := datastar.NewSSE(w, r)
			_ = sse.ConsoleError(err)
			return
		}
	}

	h.patchSidebar(w, r, state)
}

// patchSidebar re-renders the sidebar with the updated section state. The
// current page and team filter are recovered from the Referer header; the
// sidebar id makes the patch a morph of the existing element.
func (h *Handlers) patchSidebar(w http.ResponseWriter, r *http.Request, state State) {
	sse := datastar.NewSSE(w, r)

	data := common.SidebarData{CurrentPath: "/"}
	if ref, err := url.Parse(r.Referer()); err == nil && ref.Path != "" {
		data.CurrentPath = ref.Path
		data.ActiveTeam = ref.Query().Get("team")
	}
	if teams, err := h.engine.SourceTeams(r.Context()); err == nil {
		data.Teams = teams
	}

	data.Sections = make([]common.Section, 0, len(state.Order))
	for _, name := range state.Order {
		data.Sections = append(data.Sections, common.Section{Name: name, Hidden: state.Hidden[name]})
	}

	if err := sse.PatchElementTempl(common.Sidebar(data)); err != nil {
		_ = sse.ConsoleError(err)
	}
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

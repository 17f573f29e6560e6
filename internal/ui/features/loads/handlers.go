package loads

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dugout-labs/rotodash/internal/engine"
	"github.com/dugout-labs/rotodash/internal/state"
	"github.com/dugout-labs/rotodash/internal/ui/features/common"
	"github.com/dugout-labs/rotodash/internal/ui/features/sections"
	"github.com/dugout-labs/rotodash/internal/ui/notifier"
)

// historyPageSize caps the runs shown on the loads page.
const historyPageSize = 50

// Handlers provides HTTP handlers for the loads feature.
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

// LoadsPage renders the run history page.
func (h *Handlers) LoadsPage(w http.ResponseWriter, r *http.Request) {
	runs, err := h.listRuns()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	sidebar := common.SidebarData{
		CurrentPath: "/loads",
		Sections:    sections.FromRequest(h.sessionStore, r),
	}
	if teams, err := h.engine.SourceTeams(r.Context()); err == nil {
		sidebar.Teams = teams
	}

	if err := common.Layout("Loads", h.isDev, "/loads/updates", sidebar, LoadsView(runs)).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// LoadsUpdates pushes a fresh history table when a load completes.
func (h *Handlers) LoadsUpdates(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	updates := h.notifier.Subscribe()
	defer h.notifier.Unsubscribe(updates)

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-updates:
			runs, err := h.listRuns()
			if err != nil {
				_ = sse.ConsoleError(err)
				continue
			}
			if err := sse.PatchElementTempl(LoadsView(runs)); err != nil {
				_ = sse.ConsoleError(err)
			}
		}
	}
}

func (h *Handlers) listRuns() ([]*state.LoadRun, error) {
	if h.engine.History() == nil {
		return nil, nil
	}
	return h.engine.History().ListRuns(historyPageSize)
}

package loads

import (
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/dugout-labs/rotodash/internal/engine"
	"github.com/dugout-labs/rotodash/internal/ui/notifier"
)

// SetupRoutes registers the run history routes.
func SetupRoutes(
	router chi.Router,
	eng *engine.Engine,
	sessionStore sessions.Store,
	notify *notifier.Notifier,
	isDev bool,
) error {
	handlers := NewHandlers(eng, sessionStore, notify, isDev)

	router.Get("/loads", handlers.LoadsPage)
	router.Get("/loads/updates", handlers.LoadsUpdates)

	return nil
}

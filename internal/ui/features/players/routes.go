package players

import (
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/dugout-labs/rotodash/internal/engine"
	"github.com/dugout-labs/rotodash/internal/ui/notifier"
)

// SetupRoutes registers the hitter and pitcher table routes.
func SetupRoutes(
	router chi.Router,
	eng *engine.Engine,
	sessionStore sessions.Store,
	notify *notifier.Notifier,
	isDev bool,
) error {
	handlers := NewHandlers(eng, sessionStore, notify, isDev)

	router.Get("/hitters", handlers.HittersPage)
	router.Get("/hitters/updates", handlers.HittersUpdates)
	router.Get("/pitchers", handlers.PitchersPage)
	router.Get("/pitchers/updates", handlers.PitchersUpdates)

	return nil
}

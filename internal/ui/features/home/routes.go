package home

import (
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/dugout-labs/rotodash/internal/engine"
	"github.com/dugout-labs/rotodash/internal/ui/notifier"
)

// SetupRoutes configures routes for the home feature.
func SetupRoutes(
	router chi.Router,
	eng *engine.Engine,
	sessionStore sessions.Store,
	notify *notifier.Notifier,
	isDev bool,
) error {
	handlers := NewHandlers(eng, sessionStore, notify, isDev)

	router.Get("/", handlers.HomePage)
	router.Get("/updates", handlers.HomeUpdates)

	return nil
}

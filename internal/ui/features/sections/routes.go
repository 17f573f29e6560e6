package sections

import (
	"errors"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/dugout-labs/rotodash/internal/engine"
)

var errEmptyName = errors.New("section name must not be empty")

// SetupRoutes registers the sidebar section routes.
func SetupRoutes(router chi.Router, eng *engine.Engine, sessionStore sessions.Store) error {
	handlers := NewHandlers(eng, sessionStore)

	router.Route("/sections", func(r chi.Router) {
		r.Post("/", handlers.Add)
		r.Post("/{name}/toggle", handlers.Toggle)
	})

	return nil
}

// Package router sets up HTTP routes for the dashboard server.
package router

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dugout-labs/rotodash/internal/engine"
	homeFeature "github.com/dugout-labs/rotodash/internal/ui/features/home"
	loadsFeature "github.com/dugout-labs/rotodash/internal/ui/features/loads"
	playersFeature "github.com/dugout-labs/rotodash/internal/ui/features/players"
	sectionsFeature "github.com/dugout-labs/rotodash/internal/ui/features/sections"
	"github.com/dugout-labs/rotodash/internal/ui/notifier"
	"github.com/dugout-labs/rotodash/internal/ui/resources"
)

// SetupRoutes configures all routes for the dashboard server.
func SetupRoutes(
	router chi.Router,
	eng *engine.Engine,
	sessionStore *sessions.CookieStore,
	notify *notifier.Notifier,
	isDev bool,
) error {
	// Hot reload endpoint for dev mode
	if isDev {
		setupReload(router)
	}

	// Static assets
	router.Handle("/static/*", resources.Handler())

	// Feature routes
	if err := homeFeature.SetupRoutes(router, eng, sessionStore, notify, isDev); err != nil {
		return err
	}

	if err := playersFeature.SetupRoutes(router, eng, sessionStore, notify, isDev); err != nil {
		return err
	}

	if err := loadsFeature.SetupRoutes(router, eng, sessionStore, notify, isDev); err != nil {
		return err
	}

	if err := sectionsFeature.SetupRoutes(router, eng, sessionStore); err != nil {
		return err
	}

	return nil
}

func setupReload(router chi.Router) {
	reloadChan := make(chan struct{}, 1)
	var hotReloadOnce sync.Once

	router.Get("/reload", func(w http.ResponseWriter, r *http.Request) {
		sse := datastar.NewSSE(w, r)
		reload := func() { _ = sse.ExecuteScript("window.location.reload()") }
		hotReloadOnce.Do(reload)
		select {
		case <-reloadChan:
			reload()
		case <-r.Context().Done():
		}
	})

	router.Get("/hotreload", func(w http.ResponseWriter, _ *http.Request) {
		select {
		case reloadChan <- struct{}{}:
		default:
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
}

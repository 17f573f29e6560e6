// Package sections manages user-added sidebar placeholder sections.
//
// Section state is per-browser only: it lives in a cookie session and never
// touches the database. Each section can be shown or hidden; toggling twice
// restores the original visibility.
package sections

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/dugout-labs/rotodash/internal/ui/features/common"
)

const (
	sessionName = "rotodash"
	sessionKey  = "sections"
)

// State is the section list and visibility set stored in the session.
type State struct {
	Order  []string        `json:"order"`
	Hidden map[string]bool `json:"hidden"`
}

// loadState decodes section state from the request's session. A missing or
// undecodable session yields empty state rather than an error; cookie
// problems should never break page rendering.
func loadState(store sessions.Store, r *http.Request) State {
	state := State{Hidden: make(map[string]bool)}

	session, err := store.Get(r, sessionName)
	if err != nil {
		return state
	}
	raw, ok := session.Values[sessionKey].(string)
	if !ok {
		return state
	}
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return State{Hidden: make(map[string]bool)}
	}
	if state.Hidden == nil {
		state.Hidden = make(map[string]bool)
	}
	return state
}

// saveState writes section state back to the session cookie.
func saveState(store sessions.Store, w http.ResponseWriter, r *http.Request, state State) error {
	session, err := store.Get(r, sessionName)
	if err != nil {
		// A tampered cookie still returns a fresh session to write into
		session, err = store.New(r, sessionName)
		if err != nil {
			return err
		}
	}

	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	session.Values[sessionKey] = string(raw)
	return session.Save(r, w)
}

// FromRequest returns the sidebar sections for the current session, in the
// order they were added.
func FromRequest(store sessions.Store, r *http.Request) []common.Section {
	state := loadState(store, r)
	out := make([]common.Section, 0, len(state.Order))
	for _, name := range state.Order {
		out = append(out, common.Section{Name: name, Hidden: state.Hidden[name]})
	}
	return out
}

package sections

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dugout-labs/rotodash/internal/ui/uitest"
)

func newTestRouter(t *testing.T) (chi.Router, *sessionClient) {
	t.Helper()
	router := chi.NewRouter()
	store := uitest.NewSessionStore()
	require.NoError(t, SetupRoutes(router, uitest.NewEngine(t), store))
	return router, &sessionClient{store: store}
}

// sessionClient carries the session cookie across requests the way a browser
// would.
type sessionClient struct {
	store   *sessions.CookieStore
	cookies []*http.Cookie
}

func (c *sessionClient) do(t *testing.T, router chi.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if cookies := rec.Result().Cookies(); len(cookies) > 0 {
		c.cookies = cookies
	}
	return rec
}

func (c *sessionClient) sections(t *testing.T) []string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}
	names := make([]string, 0)
	for _, s := range FromRequest(c.store, req) {
		names = append(names, s.Name)
	}
	return names
}

func (c *sessionClient) hidden(t *testing.T, name string) bool {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}
	for _, s := range FromRequest(c.store, req) {
		if s.Name == name {
			return s.Hidden
		}
	}
	t.Fatalf("section %q not found", name)
	return false
}

func TestAddSection(t *testing.T) {
	router, client := newTestRouter(t)

	rec := client.do(t, router, http.MethodPost, "/sections", `{"newSection":"Watch list"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, []string{"Watch list"}, client.sections(t))
	assert.False(t, client.hidden(t, "Watch list"))
	// The response patches the sidebar with the new section
	assert.Contains(t, rec.Body.String(), "Watch list")
}

func TestAddSectionTrimsAndDeduplicates(t *testing.T) {
	router, client := newTestRouter(t)

	client.do(t, router, http.MethodPost, "/sections", `{"newSection":"  notes  "}`)
	client.do(t, router, http.MethodPost, "/sections", `{"newSection":"notes"}`)

	assert.Equal(t, []string{"notes"}, client.sections(t))
}

func TestAddSectionEmptyNameRejected(t *testing.T) {
	router, client := newTestRouter(t)

	client.do(t, router, http.MethodPost, "/sections", `{"newSection":"   "}`)

	assert.Empty(t, client.sections(t))
}

func TestToggleTwiceRestoresVisibility(t *testing.T) {
	router, client := newTestRouter(t)
	client.do(t, router, http.MethodPost, "/sections", `{"newSection":"notes"}`)

	client.do(t, router, http.MethodPost, "/sections/notes/toggle", "")
	assert.True(t, client.hidden(t, "notes"))

	client.do(t, router, http.MethodPost, "/sections/notes/toggle", "")
	assert.False(t, client.hidden(t, "notes"))
}

func TestToggleUnknownSectionIsNoOp(t *testing.T) {
	router, client := newTestRouter(t)
	client.do(t, router, http.MethodPost, "/sections", `{"newSection":"notes"}`)

	rec := client.do(t, router, http.MethodPost, "/sections/ghost/toggle", "")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, []string{"notes"}, client.sections(t))
	assert.False(t, client.hidden(t, "notes"))
}

func TestLoadStateBadCookieYieldsEmptyState(t *testing.T) {
	store := uitest.NewSessionStore()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionName, Value: "garbage"})

	state := loadState(store, req)
	assert.Empty(t, state.Order)
	assert.NotNil(t, state.Hidden)
}

package home

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dugout-labs/rotodash/internal/ui/notifier"
	"github.com/dugout-labs/rotodash/internal/ui/uitest"
)

func TestHomePage(t *testing.T) {
	h := NewHandlers(uitest.NewEngine(t), uitest.NewSessionStore(), notifier.New(), false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.HomePage(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `id="home-view"`)
	assert.Contains(t, body, "Hitters")
	assert.Contains(t, body, "Pitchers")
	assert.Contains(t, body, "Last load:")
	assert.Contains(t, body, "slugs")
}

func TestHomePageNoDatabase(t *testing.T) {
	h := NewHandlers(uitest.EmptyEngine(t), uitest.NewSessionStore(), notifier.New(), false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.HomePage(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No rosters loaded yet.")
}

func TestHomeUpdatesPushesOnBroadcast(t *testing.T) {
	notify := notifier.New()
	h := NewHandlers(uitest.NewEngine(t), uitest.NewSessionStore(), notify, false)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/updates", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		h.HomeUpdates(rec, req)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	notify.Broadcast()
	time.Sleep(200 * time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("updates handler did not stop after context cancel")
	}

	assert.Contains(t, rec.Body.String(), "home-view")
}

func TestBuildStats(t *testing.T) {
	h := NewHandlers(uitest.NewEngine(t), uitest.NewSessionStore(), notifier.New(), false)

	stats, err := h.buildStats(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	assert.True(t, stats.Loaded)
	assert.EqualValues(t, 2, stats.Hitters)
	assert.EqualValues(t, 1, stats.Pitchers)
	assert.Equal(t, 1, stats.Teams)
	require.NotNil(t, stats.LastLoad)
	assert.Equal(t, "slugs", stats.LastLoad.Team)
}

func TestBuildStatsNoDatabase(t *testing.T) {
	h := NewHandlers(uitest.EmptyEngine(t), uitest.NewSessionStore(), notifier.New(), false)

	stats, err := h.buildStats(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	assert.False(t, stats.Loaded)
	assert.Zero(t, stats.Hitters)
}

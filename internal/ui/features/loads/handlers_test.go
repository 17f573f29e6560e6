package loads

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dugout-labs/rotodash/internal/state"
	"github.com/dugout-labs/rotodash/internal/ui/notifier"
	"github.com/dugout-labs/rotodash/internal/ui/uitest"
)

func TestLoadsPage(t *testing.T) {
	h := NewHandlers(uitest.NewEngine(t), uitest.NewSessionStore(), notifier.New(), false)

	req := httptest.NewRequest(http.MethodGet, "/loads", nil)
	rec := httptest.NewRecorder()
	h.LoadsPage(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `id="loads-view"`)
	assert.Contains(t, body, "slugs")
	assert.Contains(t, body, "completed")
}

func TestLoadsPageEmptyHistory(t *testing.T) {
	h := NewHandlers(uitest.EmptyEngine(t), uitest.NewSessionStore(), notifier.New(), false)

	req := httptest.NewRequest(http.MethodGet, "/loads", nil)
	rec := httptest.NewRecorder()
	h.LoadsPage(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No loads recorded yet.")
}

func TestLoadsViewFailedRunCarriesError(t *testing.T) {
	runs := []*state.LoadRun{
		{
			Team:      "slugs",
			Source:    "slugs.csv",
			Status:    state.LoadStatusFailed,
			Error:     `bad "AVG" value`,
			StartedAt: time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC),
		},
	}

	var sb strings.Builder
	require.NoError(t, LoadsView(runs).Render(context.Background(), &sb))

	body := sb.String()
	assert.Contains(t, body, `class="status-failed"`)
	assert.Contains(t, body, "bad &#34;AVG&#34; value")
}

func TestLoadsUpdatesPushesOnBroadcast(t *testing.T) {
	notify := notifier.New()
	h := NewHandlers(uitest.NewEngine(t), uitest.NewSessionStore(), notify, false)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/loads/updates", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		h.LoadsUpdates(rec, req)
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

	assert.Contains(t, rec.Body.String(), "loads-view")
}

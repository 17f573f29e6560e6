package notifier

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBroadcastReachesAllListeners(t *testing.T) {
	n := New()

	a := n.Subscribe()
	b := n.Subscribe()
	defer n.Unsubscribe(a)
	defer n.Unsubscribe(b)

	n.Broadcast()

	for _, ch := range []chan struct{}{a, b} {
		select {
		case <-ch:
		case <-time.After(time.Second):
			t.Fatal("listener did not receive broadcast")
		}
	}
}

func TestBroadcastDoesNotBlockOnFullChannel(t *testing.T) {
	n := New()
	ch := n.Subscribe()
	defer n.Unsubscribe(ch)

	// Buffer size is 1; repeated broadcasts must not block
	n.Broadcast()
	n.Broadcast()
	n.Broadcast()

	<-ch
	select {
	case <-ch:
		t.Fatal("coalesced broadcasts should deliver a single ping")
	default:
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	n := New()
	ch := n.Subscribe()
	n.Unsubscribe(ch)

	_, open := <-ch
	assert.False(t, open, "unsubscribed channel should be closed")

	// Broadcasting after unsubscribe must not panic
	n.Broadcast()
}

package notify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchDeliversEvent(t *testing.T) {
	received := make(chan Event, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ev Event
		require.NoError(t, json.NewDecoder(r.Body).Decode(&ev))
		received <- ev
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	d := NewDispatcher(srv.URL)
	d.Dispatch(Event{
		Type: "appointment_booked",
		Data: map[string]any{"appointment_id": 12},
	})

	select {
	case ev := <-received:
		assert.Equal(t, "appointment_booked", ev.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("webhook was never delivered")
	}
}

func TestDispatchWithoutEndpointIsNoop(t *testing.T) {
	d := NewDispatcher("")

	// Must not block or panic, whatever the queue state.
	for i := 0; i < 500; i++ {
		d.Dispatch(Event{Type: "noop"})
	}

	assert.Empty(t, d.queue)
}

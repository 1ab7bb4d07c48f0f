package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudioStream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/webapp/realtime/stream", r.URL.Path)
		assert.Equal(t, "studio", r.URL.Query().Get("stream"))
		assert.Equal(t, "query_id=abc", r.URL.Query().Get("init_data"))

		flusher := w.(http.Flusher)
		w.Header().Set("Content-Type", "text/event-stream")

		// Чужое событие – должно игнорироваться
		fmt.Fprint(w, "event: heartbeat\ndata: {}\n\n")
		fmt.Fprint(w, "event: generation.status\ndata: {\"generation_id\":\"g1\",\"status\":\"processing\",\"progress\":40}\n\n")
		fmt.Fprint(w, "event: generation.status\ndata: {\"generation_id\":\"g1\",\"status\":\"done\",\"progress\":100,\"result_url\":\"https://cdn/x.png\"}\n\n")
		flusher.Flush()
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second, nil)
	stream := c.NewStudioStream("query_id=abc")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan GenerationStatus, 8)
	go stream.Run(ctx, events)

	var got []GenerationStatus
	for len(got) < 2 {
		select {
		case ev := <-events:
			got = append(got, ev)
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for stream events")
		}
	}
	cancel()

	assert.Equal(t, "processing", got[0].Status)
	assert.Equal(t, "done", got[1].Status)

	// По генерации действует последнее сообщение
	latest, ok := stream.Latest("g1")
	require.True(t, ok)
	assert.Equal(t, "done", latest.Status)
	assert.Equal(t, "https://cdn/x.png", latest.ResultURL)

	_, ok = stream.Latest("unknown")
	assert.False(t, ok)
}

package api

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClient_RoundTrip(t *testing.T) {
	f := newFixture(t, nil)
	srv := httptest.NewServer(f.routes)
	defer srv.Close()

	c := NewClient(srv.URL)
	ctx := context.Background()

	value, err := c.Invoke(ctx, CmdCreateWindow, map[string]any{
		"options": map[string]any{"label": "main", "url": "index.html"},
	})
	require.NoError(t, err)
	require.Equal(t, "created", value)

	value, err = c.Invoke(ctx, CmdIsMaximized, InvokeArgs{Label: ptr("main")})
	require.NoError(t, err)
	require.Equal(t, false, value)

	_, err = c.Invoke(ctx, CmdCloseWindow, InvokeArgs{Label: ptr("ghost")})
	var remote *RemoteError
	require.True(t, errors.As(err, &remote))
	require.Equal(t, 404, remote.Status)
	require.Equal(t, "not_found", remote.Kind)
	require.EqualError(t, err, "window not found: ghost")

	windows, err := c.Windows(ctx)
	require.NoError(t, err)
	require.Len(t, windows, 1)
	require.Equal(t, "main", windows[0].Label)

	health, err := c.Health(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, health.Windows)
}

func TestClient_Events(t *testing.T) {
	f := newFixture(t, nil)
	srv := httptest.NewServer(f.routes)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := NewClient(strings.TrimPrefix(srv.URL, "http://"))
	events, err := c.Events(ctx)
	require.NoError(t, err)

	// The subscription is registered before the handler writes the
	// connected event, so nothing published after Events returns is lost.
	_, err = c.Invoke(ctx, CmdCreateWindow, map[string]any{"label": "main", "url": "index.html"})
	require.NoError(t, err)

	select {
	case ev := <-events:
		require.Equal(t, "created", string(ev.Action))
		require.Equal(t, "main", ev.Window.Label)
		require.NotEmpty(t, ev.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("no event received")
	}
}

func TestReadSSE_SkipsConnectedAndComments(t *testing.T) {
	stream := "event: connected\ndata: {}\n\n" +
		": heartbeat\n\n" +
		"id: 1\nevent: shown\ndata: {\"id\":\"1\",\"action\":\"shown\",\"window\":{\"label\":\"main\"}}\n\n"

	out := make(chan EventMessage, 4)
	readSSE(context.Background(), strings.NewReader(stream), out)
	close(out)

	var got []EventMessage
	for ev := range out {
		got = append(got, ev)
	}
	require.Len(t, got, 1)
	require.Equal(t, "shown", string(got[0].Action))
	require.Equal(t, "main", got[0].Window.Label)
}

func ptr[T any](v T) *T { return &v }

package api

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renflow/renflow/internal/flags"
	"github.com/renflow/renflow/internal/host"
	"github.com/renflow/renflow/internal/window"
)

type fixture struct {
	host    *host.Host
	service *window.Service
	routes  http.Handler
}

func newFixture(t *testing.T, fl *flags.Registry) *fixture {
	t.Helper()
	plain, err := window.DecoratorFor(window.PlatformPlain)
	require.NoError(t, err)

	h := host.New(host.Config{ScreenWidth: 1280, ScreenHeight: 800})
	t.Cleanup(h.Shutdown)
	svc := window.NewService(window.Config{Host: h, Decorator: plain})
	handler := NewHandler(HandlerConfig{Windows: svc, Registry: h, Flags: fl})

	return &fixture{host: h, service: svc, routes: Middleware(nil, handler.Routes())}
}

func (f *fixture) invoke(t *testing.T, command, body string) (*httptest.ResponseRecorder, InvokeResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/invoke/"+command, bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	f.routes.ServeHTTP(w, req)

	var resp InvokeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w, resp
}

// === Tests ===

func TestInvoke_CreateNestedOptions(t *testing.T) {
	f := newFixture(t, nil)

	w, resp := f.invoke(t, CmdCreateWindow, `{"options":{"label":"settings","url":"/settings","title":"Settings"}}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, resp.OK)
	require.Equal(t, "created", resp.Value)

	win, ok := f.host.Lookup("settings")
	require.True(t, ok)
	assert.Equal(t, "Settings", win.Snapshot().Title)
	assert.Equal(t, 850.0, win.Snapshot().Frame.Width)
}

func TestInvoke_CreateBareOptionsThenExisting(t *testing.T) {
	f := newFixture(t, nil)

	_, resp := f.invoke(t, CmdCreateWindow, `{"label":"main","url":"index.html","width":400,"height":300}`)
	require.Equal(t, "created", resp.Value)

	_, resp = f.invoke(t, CmdCreateWindow, `{"label":"main","url":"index.html"}`)
	require.Equal(t, "existing", resp.Value)
	require.Equal(t, 1, f.host.Len())
}

func TestInvoke_CreateMissingURL(t *testing.T) {
	f := newFixture(t, nil)

	w, resp := f.invoke(t, CmdCreateWindow, `{"options":{"label":"main"}}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.False(t, resp.OK)
	require.Equal(t, "url is required", resp.Error)
	require.Equal(t, "missing_parameter", resp.Kind)
}

func TestInvoke_LabelCommands(t *testing.T) {
	f := newFixture(t, nil)
	_, _ = f.invoke(t, CmdCreateWindow, `{"options":{"label":"main","url":"index.html"}}`)

	steps := []struct {
		command string
		value   any
	}{
		{CmdHideWindow, "hidden"},
		{CmdShowWindow, "shown"},
		{CmdMinimize, "minimized"},
		{CmdShowWindow, "shown"},
		{CmdMaximize, "maximized"},
		{CmdIsMaximized, true},
		{CmdUnmaximize, "unmaximized"},
		{CmdIsMaximized, false},
		{CmdToggleMaximize, "maximized"},
		{CmdToggleMaximize, "unmaximized"},
		{CmdCloseWindow, "closed"},
	}
	for _, s := range steps {
		w, resp := f.invoke(t, s.command, `{"label":"main"}`)
		require.Equal(t, http.StatusOK, w.Code, s.command)
		require.True(t, resp.OK, s.command)
		require.Equal(t, s.value, resp.Value, s.command)
	}
	require.Zero(t, f.host.Len())
}

func TestInvoke_StartDragging(t *testing.T) {
	f := newFixture(t, nil)
	_, _ = f.invoke(t, CmdCreateWindow, `{"options":{"label":"main","url":"index.html"}}`)

	w, resp := f.invoke(t, CmdStartDragging, `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "label is required", resp.Error)

	_, resp = f.invoke(t, CmdStartDragging, `{"label":"main"}`)
	require.Equal(t, "dragging", resp.Value)

	_, _ = f.invoke(t, CmdHideWindow, `{"label":"main"}`)
	w, resp = f.invoke(t, CmdStartDragging, `{"label":"main"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, "host_failure", resp.Kind)
	require.Equal(t, "cannot drag window `main`: not on screen", resp.Error)
}

func TestInvoke_NotFound(t *testing.T) {
	f := newFixture(t, nil)

	for _, cmd := range []string{CmdCloseWindow, CmdShowWindow, CmdHideWindow, CmdMinimize, CmdMaximize, CmdUnmaximize, CmdToggleMaximize, CmdIsMaximized, CmdStartDragging} {
		w, resp := f.invoke(t, cmd, `{"label":"ghost"}`)
		require.Equal(t, http.StatusNotFound, w.Code, cmd)
		require.Equal(t, "window not found: ghost", resp.Error, cmd)
		require.Equal(t, "not_found", resp.Kind, cmd)
	}
}

func TestInvoke_MissingLabel(t *testing.T) {
	f := newFixture(t, nil)

	w, resp := f.invoke(t, CmdCloseWindow, ``)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "label is required", resp.Error)
	require.Equal(t, "missing_parameter", resp.Kind)

	w, _ = f.invoke(t, CmdIsMaximized, `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInvoke_UnknownCommand(t *testing.T) {
	f := newFixture(t, nil)

	w, resp := f.invoke(t, "win_fullscreen", `{}`)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, KindUnknownCommand, resp.Kind)
	require.Equal(t, "unknown command: win_fullscreen", resp.Error)
}

func TestInvoke_InvalidJSON(t *testing.T) {
	f := newFixture(t, nil)

	w, resp := f.invoke(t, CmdShowWindow, `{"label":`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, KindInvalidJSON, resp.Kind)

	w, resp = f.invoke(t, CmdCreateWindow, `{"options":"nope"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, KindInvalidJSON, resp.Kind)
}

func TestInvoke_RequestID(t *testing.T) {
	f := newFixture(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/invoke/"+CmdShowWindow, bytes.NewBufferString(`{"label":"x"}`))
	req.Header.Set("X-Request-ID", "req-42")
	w := httptest.NewRecorder()
	f.routes.ServeHTTP(w, req)
	require.Equal(t, "req-42", w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	f.routes.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestListWindowsAndHealth(t *testing.T) {
	f := newFixture(t, nil)
	_, _ = f.invoke(t, CmdCreateWindow, `{"options":{"label":"a","url":"/a"}}`)
	_, _ = f.invoke(t, CmdCreateWindow, `{"options":{"label":"b","url":"/b"}}`)

	w := httptest.NewRecorder()
	f.routes.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/windows", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var list WindowsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Equal(t, 2, list.Total)
	labels := []string{list.Windows[0].Label, list.Windows[1].Label}
	require.ElementsMatch(t, []string{"a", "b"}, labels)

	w = httptest.NewRecorder()
	f.routes.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	var health HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	require.Equal(t, HealthResponse{Status: "ok", Windows: 2}, health)
}

func TestStreamEvents_Disabled(t *testing.T) {
	f := newFixture(t, flags.WithDefaults(map[string]bool{flags.FlagEventStream: false}))

	w := httptest.NewRecorder()
	f.routes.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/events", nil))
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "disabled", resp.Code)
}

func TestStreamEvents(t *testing.T) {
	f := newFixture(t, nil)
	srv := httptest.NewServer(f.routes)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/events", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	line, err := reader.ReadString('\n')
	require.NoError(t, err)
	require.Equal(t, "event: connected\n", line)

	_, err = f.service.CreateOrShow(ctx, window.CreateOptions{Label: "main", URL: "index.html"})
	require.NoError(t, err)

	var got []string
	for len(got) < 1 {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		if strings.HasPrefix(line, "event: ") {
			got = append(got, strings.TrimSpace(strings.TrimPrefix(line, "event: ")))
		}
	}
	require.Equal(t, []string{"created"}, got)
}

package log

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func capture(t *testing.T, minLevel Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	InitWriter(&buf, minLevel)
	t.Cleanup(Reset)
	return &buf
}

func TestLog_Format(t *testing.T) {
	buf := capture(t, LevelDebug)

	Info(CatWindow, "Created window", "label", "settings", "status", "created")

	line := buf.String()
	require.Contains(t, line, "[INFO] [window] Created window label=settings status=created")
	require.True(t, bytes.HasSuffix(buf.Bytes(), []byte("\n")))
}

func TestLog_OddFieldCount(t *testing.T) {
	buf := capture(t, LevelDebug)

	Warn(CatHost, "dangling", "label")

	require.Contains(t, buf.String(), "label=<missing>")
}

func TestLog_MinLevel(t *testing.T) {
	buf := capture(t, LevelWarn)

	Debug(CatAPI, "hidden")
	Info(CatAPI, "hidden too")
	Error(CatAPI, "shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "[ERROR] [api] shown")

	SetMinLevel(LevelDebug)
	Debug(CatAPI, "now visible")
	require.Contains(t, buf.String(), "now visible")
}

func TestLog_SetEnabled(t *testing.T) {
	buf := capture(t, LevelDebug)

	SetEnabled(false)
	Info(CatConfig, "muted")
	SetEnabled(true)
	Info(CatConfig, "audible")

	require.NotContains(t, buf.String(), "muted")
	require.Contains(t, buf.String(), "audible")
}

func TestLog_ErrorErr(t *testing.T) {
	buf := capture(t, LevelDebug)

	ErrorErr(CatWindow, "Build failed", errString("boom"), "label", "main")
	ErrorErr(CatWindow, "Nil error", nil)

	require.Contains(t, buf.String(), "Build failed label=main error=boom")
	require.Contains(t, buf.String(), "Nil error error=<nil>")
}

func TestLog_NoLogger(t *testing.T) {
	Reset()
	require.NotPanics(t, func() { Info(CatWindow, "dropped") })
	require.Nil(t, NewListener(context.Background()))
}

func TestLog_Listener(t *testing.T) {
	capture(t, LevelDebug)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listener := NewListener(ctx)
	require.NotNil(t, listener)

	Info(CatMonitor, "tail me")

	done := make(chan any, 1)
	go func() { done <- listener.Listen()() }()

	select {
	case msg := <-done:
		ev, ok := msg.(LogEvent)
		require.True(t, ok, "got %T", msg)
		require.Contains(t, ev.Payload, "[monitor] tail me")
	case <-time.After(time.Second):
		t.Fatal("no log event")
	}
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, LevelDebug, ParseLevel("debug"))
	require.Equal(t, LevelWarn, ParseLevel("warning"))
	require.Equal(t, LevelError, ParseLevel("ERROR"))
	require.Equal(t, LevelInfo, ParseLevel("verbose"))
}

type errString string

func (e errString) Error() string { return string(e) }

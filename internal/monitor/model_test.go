package monitor

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/renflow/renflow/internal/host"
	"github.com/renflow/renflow/internal/pubsub"
	"github.com/renflow/renflow/internal/window"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func newLocal(t *testing.T) (*host.Host, Model) {
	t.Helper()
	h := host.New(host.Config{})
	t.Cleanup(h.Shutdown)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return h, New(ctx, LocalSource{Host: h})
}

func build(t *testing.T, h *host.Host, label string) *host.Window {
	t.Helper()
	handle, err := h.Build(window.BuildOptions{Label: label, URL: "/" + label, Title: label, Width: 800, Height: 600})
	require.NoError(t, err)
	return handle.(*host.Window)
}

func TestModel_RefreshLoadsWindows(t *testing.T) {
	h, m := newLocal(t)
	build(t, h, "main")

	msg := m.refresh()()
	updated, _ := m.Update(msg)
	m = updated.(Model)

	require.Len(t, m.windows, 1)
	require.Contains(t, m.View(), "main")
	require.Contains(t, m.View(), "800x600")
}

func TestModel_ListenAppliesEvents(t *testing.T) {
	h, m := newLocal(t)
	w := build(t, h, "main")
	require.NoError(t, w.Maximize())

	for i := 0; i < 2; i++ {
		msg := m.listen()()
		ev, ok := msg.(pubsub.Event[host.Event])
		require.True(t, ok, "got %T", msg)
		updated, cmd := m.Update(ev)
		m = updated.(Model)
		require.NotNil(t, cmd, "listening continues after an event")
	}

	require.Len(t, m.events, 2)
	require.Len(t, m.windows, 1)
	require.True(t, m.windows[0].Maximized)
	require.Contains(t, m.View(), "maximized")
}

func TestModel_StreamClosed(t *testing.T) {
	h, m := newLocal(t)
	h.Shutdown()

	msg := m.listen()()
	require.IsType(t, streamClosedMsg{}, msg)

	updated, cmd := m.Update(msg)
	require.Nil(t, cmd)
	require.Contains(t, updated.View(), "event stream closed")
}

func TestModel_Keys(t *testing.T) {
	_, m := newLocal(t)
	m.events = []pubsub.Event[host.Event]{{ID: "1"}}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	require.Empty(t, updated.(Model).events)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	require.IsType(t, windowsMsg{}, cmd())
}

func TestModel_ListError(t *testing.T) {
	_, m := newLocal(t)
	updated, _ := m.Update(windowsMsg{err: errors.New("connection refused")})
	require.Contains(t, updated.View(), "error: connection refused")
}

func TestApplyEvent(t *testing.T) {
	now := time.Now()
	list := []host.Snapshot{
		{Label: "a", Focused: true},
		{Label: "b"},
	}

	list = applyEvent(list, pubsub.Event[host.Event]{
		Payload:   host.Event{Action: host.ActionFocused, Window: host.Snapshot{Label: "b", Focused: true}},
		Timestamp: now,
	})
	require.False(t, list[0].Focused)
	require.True(t, list[1].Focused)

	list = applyEvent(list, pubsub.Event[host.Event]{
		Payload: host.Event{Action: host.ActionCreated, Window: host.Snapshot{Label: "c"}},
	})
	require.Len(t, list, 3)

	list = applyEvent(list, pubsub.Event[host.Event]{
		Payload: host.Event{Action: host.ActionClosed, Window: host.Snapshot{Label: "a"}},
	})
	require.Len(t, list, 2)
	require.Equal(t, "b", list[0].Label)
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "short", truncate("short", 10))
	require.Equal(t, "abcd…", truncate("abcdefgh", 5))
	require.Equal(t, "設定…", truncate("設定ウィンドウ", 5), "wide runes count double")
}

func TestModel_CursorSelectsDetails(t *testing.T) {
	h, m := newLocal(t)
	build(t, h, "main")
	build(t, h, "settings")

	updated, _ := m.Update(m.refresh()())
	m = updated.(Model)
	require.Equal(t, 0, m.cursor)

	down := tea.KeyMsg{Type: tea.KeyDown}
	for i := 0; i < 3; i++ {
		updated, _ = m.Update(down)
		m = updated.(Model)
	}
	require.Equal(t, 1, m.cursor, "cursor stops at the last window")

	w, ok := h.Lookup("settings")
	require.True(t, ok)
	require.Contains(t, m.View(), "id "+w.Snapshot().ID)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	require.Equal(t, 0, updated.(Model).cursor)
}

func TestModel_CursorOnEmptyList(t *testing.T) {
	_, m := newLocal(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	require.Equal(t, 0, m.cursor)
	require.NotPanics(t, func() { _ = m.View() })
}

func TestModel_HelpToggle(t *testing.T) {
	_, m := newLocal(t)
	require.NotContains(t, m.View(), "next window")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	require.Contains(t, updated.View(), "next window")
}

func TestModel_Program(t *testing.T) {
	h, m := newLocal(t)
	build(t, h, "main")

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(120, 40))

	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return bytes.Contains(b, []byte("main"))
	}, teatest.WithDuration(2*time.Second))

	w := build(t, h, "settings")
	require.NoError(t, w.Minimize())

	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return bytes.Contains(b, []byte("minimized"))
	}, teatest.WithDuration(2*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))

	final := tm.FinalModel(t).(Model)
	require.Len(t, final.windows, 2)
}

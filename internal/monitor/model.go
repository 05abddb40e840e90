// Package monitor is a terminal UI that lists the host's windows and tails
// their events.
package monitor

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/renflow/renflow/internal/host"
	"github.com/renflow/renflow/internal/keys"
	"github.com/renflow/renflow/internal/log"
	"github.com/renflow/renflow/internal/pubsub"
)

// maxEvents bounds the event log.
const maxEvents = 200

// maxLogLines bounds the log tail shown when debug logging is on.
const maxLogLines = 5

// windowsMsg carries a fresh listing.
type windowsMsg struct {
	windows []host.Snapshot
	err     error
}

// streamClosedMsg means the event feed ended.
type streamClosedMsg struct{}

// Model is the monitor's Bubble Tea model.
type Model struct {
	ctx      context.Context
	source   Source
	listener *pubsub.ContinuousListener[host.Event]
	logs     *log.LogListener

	windows []host.Snapshot
	cursor  int
	events  []pubsub.Event[host.Event]
	logTail []string
	err     error
	closed  bool
	help    help.Model

	width  int
	height int
}

// New creates the model. The event subscription lives as long as ctx.
func New(ctx context.Context, source Source) Model {
	return Model{
		ctx:      ctx,
		source:   source,
		listener: pubsub.NewContinuousListener[host.Event](ctx, source),
		logs:     log.NewListener(ctx),
		help:     help.New(),
	}
}

// Init fetches the listing and starts listening.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.refresh(), m.listen()}
	if m.logs != nil {
		cmds = append(cmds, m.logs.Listen())
	}
	return tea.Batch(cmds...)
}

func (m Model) refresh() tea.Cmd {
	return func() tea.Msg {
		list, err := m.source.List(m.ctx)
		return windowsMsg{windows: list, err: err}
	}
}

func (m Model) listen() tea.Cmd {
	next := m.listener.Listen()
	return func() tea.Msg {
		if msg := next(); msg != nil {
			return msg
		}
		return streamClosedMsg{}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Monitor.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Monitor.Refresh):
			return m, m.refresh()
		case key.Matches(msg, keys.Monitor.ClearEvents):
			m.events = nil
		case key.Matches(msg, keys.Monitor.Up):
			m.cursor--
			m.clampCursor()
		case key.Matches(msg, keys.Monitor.Down):
			m.cursor++
			m.clampCursor()
		case key.Matches(msg, keys.Monitor.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case windowsMsg:
		m.err = msg.err
		if msg.err == nil {
			m.windows = msg.windows
			m.clampCursor()
		} else {
			log.ErrorErr(log.CatMonitor, "List windows failed", msg.err)
		}

	case pubsub.Event[host.Event]:
		m.events = append(m.events, msg)
		if len(m.events) > maxEvents {
			m.events = m.events[len(m.events)-maxEvents:]
		}
		m.windows = applyEvent(m.windows, msg)
		m.clampCursor()
		return m, m.listen()

	case log.LogEvent:
		m.logTail = append(m.logTail, strings.TrimRight(msg.Payload, "\n"))
		if len(m.logTail) > maxLogLines {
			m.logTail = m.logTail[len(m.logTail)-maxLogLines:]
		}
		return m, m.logs.Listen()

	case streamClosedMsg:
		m.closed = true
	}

	return m, nil
}

func (m *Model) clampCursor() {
	m.cursor = max(0, min(m.cursor, len(m.windows)-1))
}

// applyEvent folds one event into the listing without a round trip.
func applyEvent(list []host.Snapshot, ev pubsub.Event[host.Event]) []host.Snapshot {
	snap := ev.Payload.Window
	out := make([]host.Snapshot, 0, len(list)+1)
	found := false
	for _, w := range list {
		if w.Label != snap.Label {
			if ev.Payload.Action == host.ActionFocused {
				w.Focused = false
			}
			out = append(out, w)
			continue
		}
		found = true
		if ev.Payload.Action != host.ActionClosed {
			out = append(out, snap)
		}
	}
	if !found && ev.Payload.Action != host.ActionClosed {
		out = append(out, snap)
	}
	return out
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Ren Flow windows"))
	b.WriteString(timestampStyle.Render("  " + m.source.Name()))
	b.WriteString("\n\n")

	b.WriteString(panelStyle.Render(m.renderWindows()))
	b.WriteString("\n")
	if details := m.renderDetails(); details != "" {
		b.WriteString(details + "\n")
	}
	b.WriteString(panelStyle.Render(m.renderEvents()))
	b.WriteString("\n")

	if len(m.logTail) > 0 {
		b.WriteString(panelStyle.Render(detailStyle.Render(strings.Join(m.logTail, "\n"))))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render("error: "+m.err.Error()) + "\n")
	}
	if m.closed {
		b.WriteString(errorStyle.Render("event stream closed") + "\n")
	}
	b.WriteString(m.help.View(keys.Monitor))
	return b.String()
}

func (m Model) renderWindows() string {
	if len(m.windows) == 0 {
		return hiddenStyle.Render("no windows")
	}

	rows := []string{headerStyle.Render("  " + fmt.Sprintf("%-16s %-20s %-11s %-12s %s", "LABEL", "TITLE", "SIZE", "STATE", "URL"))}
	for i, w := range m.windows {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		line := marker + fmt.Sprintf("%-16s %-20s %-11s %-12s %s",
			truncate(w.Label, 16),
			truncate(w.Title, 20),
			fmt.Sprintf("%gx%g", w.Frame.Width, w.Frame.Height),
			windowState(w),
			w.URL,
		)
		switch {
		case w.Focused:
			line = focusedStyle.Render(line)
		case !w.Visible || w.Minimized:
			line = hiddenStyle.Render(line)
		}
		rows = append(rows, line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderDetails describes the window under the cursor.
func (m Model) renderDetails() string {
	if m.cursor >= len(m.windows) {
		return ""
	}
	w := m.windows[m.cursor]
	parts := []string{
		fmt.Sprintf("id %s", w.ID),
		fmt.Sprintf("at %g,%g", w.Frame.X, w.Frame.Y),
	}
	if !w.Decorations {
		parts = append(parts, "borderless")
	}
	if w.Transparent {
		parts = append(parts, "transparent")
	}
	if w.Backdrop != "" {
		parts = append(parts, "backdrop "+string(w.Backdrop))
	}
	return detailStyle.Render(strings.Join(parts, " · "))
}

func (m Model) renderEvents() string {
	if len(m.events) == 0 {
		return hiddenStyle.Render("waiting for events")
	}

	limit := 10
	if m.height > 0 {
		limit = max(3, m.height-len(m.windows)-12)
	}
	start := max(0, len(m.events)-limit)

	rows := make([]string, 0, len(m.events)-start)
	for _, ev := range m.events[start:] {
		rows = append(rows, fmt.Sprintf("%s %-12s %s",
			timestampStyle.Render(ev.Timestamp.Format("15:04:05")),
			ev.Payload.Action,
			ev.Payload.Window.Label,
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func windowState(w host.Snapshot) string {
	switch {
	case w.Minimized:
		return "minimized"
	case w.Maximized:
		return "maximized"
	case !w.Visible:
		return "hidden"
	case w.Focused:
		return "focused"
	default:
		return "normal"
	}
}

func truncate(s string, n int) string {
	return ansi.Truncate(s, n, "…")
}

// Run starts the program on the terminal and blocks until the user quits.
func Run(ctx context.Context, source Source) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(New(ctx, source), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

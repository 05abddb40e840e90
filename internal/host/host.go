// Package host is an in-process, headless window host. It keeps a
// label-keyed registry of windows that carry their visual state (frame,
// visibility, minimized/maximized, focus) and publishes an event for every
// state change. serve uses it as the window.Host behind the HTTP bridge.
package host

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/renflow/renflow/internal/cachemanager"
	"github.com/renflow/renflow/internal/log"
	"github.com/renflow/renflow/internal/pubsub"
	"github.com/renflow/renflow/internal/window"
)

// Default screen size used when Config leaves it unset.
const (
	DefaultScreenWidth  = 1920.0
	DefaultScreenHeight = 1080.0
)

// Config configures a Host.
type Config struct {
	ScreenWidth  float64
	ScreenHeight float64
	// EventBuffer is the per-subscriber event buffer. Zero uses the broker default.
	EventBuffer int
}

// Host implements window.Host.
type Host struct {
	store  cachemanager.CacheManager[string, *Window]
	broker *pubsub.Broker[Event]
	screen Frame

	focusMu sync.RWMutex
	focused string
}

var _ window.Host = (*Host)(nil)

// New creates an empty host.
func New(cfg Config) *Host {
	w, h := cfg.ScreenWidth, cfg.ScreenHeight
	if w <= 0 {
		w = DefaultScreenWidth
	}
	if h <= 0 {
		h = DefaultScreenHeight
	}
	return &Host{
		store:  cachemanager.NewInMemoryCacheManager[string, *Window]("windows"),
		broker: pubsub.NewBrokerWithBuffer[Event](cfg.EventBuffer),
		screen: Frame{Width: w, Height: h},
	}
}

// Window looks up a live window by label.
func (h *Host) Window(label string) (window.Handle, bool) {
	w, ok := h.store.Get(context.Background(), label)
	if !ok {
		return nil, false
	}
	return w, true
}

// Lookup is Window with the concrete type, for callers inside the process.
func (h *Host) Lookup(label string) (*Window, bool) {
	return h.store.Get(context.Background(), label)
}

// Build creates and registers a window. The new window is visible and
// focused, centered on the screen.
func (h *Host) Build(opts window.BuildOptions) (window.Handle, error) {
	if opts.Label == "" {
		return nil, errors.New("window label must not be empty")
	}
	if _, err := url.Parse(opts.URL); err != nil {
		return nil, fmt.Errorf("invalid url %q: %w", opts.URL, err)
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid inner size %gx%g", opts.Width, opts.Height)
	}

	frame := Frame{
		X:      max(0, (h.screen.Width-opts.Width)/2),
		Y:      max(0, (h.screen.Height-opts.Height)/2),
		Width:  opts.Width,
		Height: opts.Height,
	}
	w := &Window{
		host:      h,
		id:        uuid.NewString(),
		label:     opts.Label,
		opts:      opts,
		frame:     frame,
		normal:    frame,
		visible:   true,
		createdAt: time.Now(),
	}

	if err := h.store.Add(context.Background(), opts.Label, w); err != nil {
		if errors.Is(err, cachemanager.ErrKeyExists) {
			return nil, fmt.Errorf("a window with label `%s` already exists", opts.Label)
		}
		return nil, err
	}

	h.setFocus(opts.Label)
	log.Info(log.CatHost, "Window built", "label", opts.Label, "id", w.id,
		"width", opts.Width, "height", opts.Height, "decorations", opts.Decorations)
	h.publish(pubsub.CreatedEvent, ActionCreated, w.Snapshot())
	return w, nil
}

// List returns snapshots of every live window sorted by creation time.
func (h *Host) List() []Snapshot {
	items := h.store.Items(context.Background())
	out := make([]Snapshot, 0, len(items))
	for _, w := range items {
		out = append(out, w.Snapshot())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].Label < out[j].Label
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// Len returns the number of live windows.
func (h *Host) Len() int {
	return h.store.Count(context.Background())
}

// Focused returns the label of the focused window, or "".
func (h *Host) Focused() string {
	h.focusMu.RLock()
	defer h.focusMu.RUnlock()
	return h.focused
}

// Subscribe streams window events until ctx is cancelled or the host closes.
func (h *Host) Subscribe(ctx context.Context) <-chan pubsub.Event[Event] {
	return h.broker.Subscribe(ctx)
}

// Shutdown closes every window and the event broker.
func (h *Host) Shutdown() {
	for _, w := range h.store.Items(context.Background()) {
		_ = w.Close()
	}
	h.broker.Close()
}

func (h *Host) setFocus(label string) {
	h.focusMu.Lock()
	h.focused = label
	h.focusMu.Unlock()
}

// clearFocus drops focus only if label still holds it.
func (h *Host) clearFocus(label string) {
	h.focusMu.Lock()
	if h.focused == label {
		h.focused = ""
	}
	h.focusMu.Unlock()
}

func (h *Host) isFocused(label string) bool {
	return h.Focused() == label
}

func (h *Host) remove(label string) {
	_ = h.store.Delete(context.Background(), label)
	h.clearFocus(label)
}

func (h *Host) publish(t pubsub.EventType, action Action, snap Snapshot) {
	h.broker.Publish(t, Event{Action: action, Window: snap})
}

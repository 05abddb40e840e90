package host

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/renflow/renflow/internal/log"
	"github.com/renflow/renflow/internal/pubsub"
	"github.com/renflow/renflow/internal/window"
)

// Action names the handle call that produced an Event.
type Action string

const (
	ActionCreated     Action = "created"
	ActionClosed      Action = "closed"
	ActionUnminimized Action = "unminimized"
	ActionFocused     Action = "focused"
	ActionShown       Action = "shown"
	ActionHidden      Action = "hidden"
	ActionMinimized   Action = "minimized"
	ActionMaximized   Action = "maximized"
	ActionUnmaximized Action = "unmaximized"
	ActionDragging    Action = "dragging"
	ActionBackdrop    Action = "backdrop"
)

// Event is the payload published on every state change.
type Event struct {
	Action Action   `json:"action"`
	Window Snapshot `json:"window"`
}

// Frame is a window's outer position and size in logical pixels.
type Frame struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Snapshot is a point-in-time copy of a window's state.
type Snapshot struct {
	ID          string          `json:"id"`
	Label       string          `json:"label"`
	Title       string          `json:"title"`
	URL         string          `json:"url"`
	Frame       Frame           `json:"frame"`
	Visible     bool            `json:"visible"`
	Minimized   bool            `json:"minimized"`
	Maximized   bool            `json:"maximized"`
	Focused     bool            `json:"focused"`
	Decorations bool            `json:"decorations"`
	Transparent bool            `json:"transparent"`
	Effects     []window.Effect `json:"effects,omitempty"`
	Backdrop    window.Effect   `json:"backdrop,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ErrClosed is returned by calls on a window that has been closed.
var ErrClosed = errors.New("window is closed")

// Window is a headless window. It implements window.Handle and
// window.BackdropHandle.
type Window struct {
	host *Host

	mu        sync.Mutex
	id        string
	label     string
	opts      window.BuildOptions
	frame     Frame
	normal    Frame
	visible   bool
	minimized bool
	maximized bool
	closed    bool
	backdrop  window.Effect
	createdAt time.Time
}

var (
	_ window.Handle         = (*Window)(nil)
	_ window.BackdropHandle = (*Window)(nil)
)

// Label returns the window label.
func (w *Window) Label() string { return w.label }

// Snapshot copies the window state.
func (w *Window) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

func (w *Window) snapshotLocked() Snapshot {
	var effects []window.Effect
	if len(w.opts.Effects) > 0 {
		effects = append(effects, w.opts.Effects...)
	}
	return Snapshot{
		ID:          w.id,
		Label:       w.label,
		Title:       w.opts.Title,
		URL:         w.opts.URL,
		Frame:       w.frame,
		Visible:     w.visible,
		Minimized:   w.minimized,
		Maximized:   w.maximized,
		Focused:     !w.closed && w.host.isFocused(w.label),
		Decorations: w.opts.Decorations,
		Transparent: w.opts.Transparent,
		Effects:     effects,
		Backdrop:    w.backdrop,
		CreatedAt:   w.createdAt,
	}
}

// BuildOptions returns the options the window was built with.
func (w *Window) BuildOptions() window.BuildOptions {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.opts
}

// mutate runs fn under the window lock and publishes the resulting state.
func (w *Window) mutate(action Action, fn func() error) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return fmt.Errorf("%s: %w", w.label, ErrClosed)
	}
	if err := fn(); err != nil {
		w.mu.Unlock()
		return err
	}
	snap := w.snapshotLocked()
	w.mu.Unlock()

	log.Debug(log.CatHost, "Window state", "label", w.label, "action", action)
	w.host.publish(pubsub.UpdatedEvent, action, snap)
	return nil
}

// Unminimize restores a minimized window. No-op otherwise.
func (w *Window) Unminimize() error {
	return w.mutate(ActionUnminimized, func() error {
		w.minimized = false
		return nil
	})
}

// SetFocus makes this the focused window.
func (w *Window) SetFocus() error {
	return w.mutate(ActionFocused, func() error {
		w.host.setFocus(w.label)
		return nil
	})
}

// Show makes the window visible.
func (w *Window) Show() error {
	return w.mutate(ActionShown, func() error {
		w.visible = true
		return nil
	})
}

// Hide makes the window invisible; a hidden window cannot hold focus.
func (w *Window) Hide() error {
	return w.mutate(ActionHidden, func() error {
		w.visible = false
		w.host.clearFocus(w.label)
		return nil
	})
}

// Minimize minimizes the window and drops its focus.
func (w *Window) Minimize() error {
	return w.mutate(ActionMinimized, func() error {
		w.minimized = true
		w.host.clearFocus(w.label)
		return nil
	})
}

// Maximize fills the screen, remembering the frame to restore.
func (w *Window) Maximize() error {
	return w.mutate(ActionMaximized, func() error {
		if !w.maximized {
			w.normal = w.frame
			w.frame = Frame{Width: w.host.screen.Width, Height: w.host.screen.Height}
			w.maximized = true
		}
		return nil
	})
}

// Unmaximize restores the frame saved by Maximize.
func (w *Window) Unmaximize() error {
	return w.mutate(ActionUnmaximized, func() error {
		if w.maximized {
			w.frame = w.normal
			w.maximized = false
		}
		return nil
	})
}

// IsMaximized reports the maximized state.
func (w *Window) IsMaximized() (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return false, fmt.Errorf("%s: %w", w.label, ErrClosed)
	}
	return w.maximized, nil
}

// StartDragging begins an interactive move. Only a window on screen can be
// dragged.
func (w *Window) StartDragging() error {
	return w.mutate(ActionDragging, func() error {
		if !w.visible || w.minimized {
			return fmt.Errorf("cannot drag window `%s`: not on screen", w.label)
		}
		return nil
	})
}

// ApplyBackdrop records a backdrop effect. Only mica is supported.
func (w *Window) ApplyBackdrop(effect window.Effect) error {
	if effect != window.EffectMica {
		return fmt.Errorf("apply %s: %w", effect, window.ErrBackdropUnsupported)
	}
	return w.mutate(ActionBackdrop, func() error {
		w.backdrop = effect
		return nil
	})
}

// Close destroys the window and removes it from the registry.
func (w *Window) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return fmt.Errorf("%s: %w", w.label, ErrClosed)
	}
	w.closed = true
	w.visible = false
	snap := w.snapshotLocked()
	w.mu.Unlock()

	w.host.remove(w.label)
	log.Info(log.CatHost, "Window destroyed", "label", w.label, "id", w.id)
	w.host.publish(pubsub.DeletedEvent, ActionClosed, snap)
	return nil
}

package window

import (
	"context"
	"sync/atomic"

	"go.opentelemetry.io/otel/trace"

	"github.com/renflow/renflow/internal/flags"
	"github.com/renflow/renflow/internal/log"
	"github.com/renflow/renflow/internal/tracing"
)

// Config wires a Service.
type Config struct {
	Host      Host
	Decorator Decorator       // nil selects DefaultDecorator
	Defaults  Defaults        // zero fields take StandardDefaults
	Tracer    trace.Tracer    // nil disables spans
	Flags     *flags.Registry // nil enables every optional step
}

// Service implements the window commands. It holds no window state and no
// locks; all serialization belongs to the Host.
type Service struct {
	host      Host
	decorator Decorator
	tracer    trace.Tracer
	flags     *flags.Registry
	defaults  atomic.Pointer[Defaults]
}

// NewService creates a Service. It panics if cfg.Host is nil.
func NewService(cfg Config) *Service {
	if cfg.Host == nil {
		panic("window: NewService requires a Host")
	}
	s := &Service{
		host:      cfg.Host,
		decorator: cfg.Decorator,
		tracer:    cfg.Tracer,
		flags:     cfg.Flags,
	}
	if s.decorator == nil {
		s.decorator = DefaultDecorator()
	}
	s.SetDefaults(cfg.Defaults)
	return s
}

// SetDefaults replaces the creation defaults. Safe to call while commands are
// running; config hot reload uses it.
func (s *Service) SetDefaults(d Defaults) {
	d = d.normalized()
	s.defaults.Store(&d)
}

// Defaults returns the creation defaults currently in effect.
func (s *Service) Defaults() Defaults {
	return *s.defaults.Load()
}

// Decorator returns the platform decorator in use.
func (s *Service) Decorator() Decorator {
	return s.decorator
}

// lookup resolves label or returns the not-found error.
func (s *Service) lookup(ctx context.Context, label string) (Handle, error) {
	h, ok := s.host.Window(label)
	trace.SpanFromContext(ctx).AddEvent(tracing.EventWindowLookup)
	if !ok {
		return nil, notFound(label)
	}
	return h, nil
}

// finish ends the command span and returns the status and error unchanged.
func finish(span trace.Span, status Status, err error) (Status, error) {
	if err != nil {
		tracing.EndCommand(span, "", err, KindOf(err).String())
		return "", err
	}
	tracing.EndCommand(span, string(status), nil, "")
	return status, nil
}

// CreateOrShow reveals the window registered under opts.Label, or builds it
// when none exists.
func (s *Service) CreateOrShow(ctx context.Context, opts CreateOptions) (Status, error) {
	ctx, span := tracing.StartCommand(ctx, s.tracer, "create_or_show", opts.Label)

	if opts.Label == "" {
		return finish(span, "", missingParameter("label"))
	}
	if opts.URL == "" {
		return finish(span, "", missingParameter("url"))
	}

	if h, ok := s.host.Window(opts.Label); ok {
		if err := reveal(h); err != nil {
			log.ErrorErr(log.CatWindow, "Reveal failed", err, "label", opts.Label)
			return finish(span, "", hostFailure(opts.Label, err))
		}
		log.Info(log.CatWindow, "Window revealed", "label", opts.Label)
		return finish(span, StatusExisting, nil)
	}

	build := opts.buildOptions(s.Defaults())
	s.decorator.Decorate(&build)

	h, err := s.host.Build(build)
	if err != nil {
		log.ErrorErr(log.CatWindow, "Window build failed", err,
			"label", opts.Label, "url", opts.URL, "decorator", s.decorator.Name())
		return finish(span, "", hostFailure(opts.Label, err))
	}
	span.AddEvent(tracing.EventWindowBuilt)

	s.afterBuild(span, h)

	log.Info(log.CatWindow, "Window created",
		"label", opts.Label, "url", opts.URL, "title", build.Title,
		"width", build.Width, "height", build.Height, "decorator", s.decorator.Name())
	return finish(span, StatusCreated, nil)
}

// reveal brings an existing window forward. Order matters: a minimized
// window cannot take focus.
func reveal(h Handle) error {
	if err := h.Unminimize(); err != nil {
		return err
	}
	if err := h.SetFocus(); err != nil {
		return err
	}
	return h.Show()
}

// afterBuild runs the decorator's post-build step. Its error is logged and
// intentionally discarded: the backdrop is cosmetic and the window already
// exists, so CreateOrShow still reports created.
func (s *Service) afterBuild(span trace.Span, h Handle) {
	if s.flags != nil && !s.flags.Enabled(flags.FlagBackdropEffects) {
		span.AddEvent(tracing.EventBackdropSkipped)
		return
	}
	if err := s.decorator.AfterBuild(h); err != nil {
		span.AddEvent(tracing.EventBackdropFailed)
		log.Warn(log.CatWindow, "Post-build decoration failed",
			"label", h.Label(), "decorator", s.decorator.Name(), "error", err)
	}
}

// Close closes the window.
func (s *Service) Close(ctx context.Context, label string) (Status, error) {
	ctx, span := tracing.StartCommand(ctx, s.tracer, "close", label)
	h, err := s.lookup(ctx, label)
	if err != nil {
		return finish(span, "", err)
	}
	if err := h.Close(); err != nil {
		return finish(span, "", hostFailure(label, err))
	}
	log.Info(log.CatWindow, "Window closed", "label", label)
	return finish(span, StatusClosed, nil)
}

// Show makes the window visible and focuses it.
func (s *Service) Show(ctx context.Context, label string) (Status, error) {
	ctx, span := tracing.StartCommand(ctx, s.tracer, "show", label)
	h, err := s.lookup(ctx, label)
	if err != nil {
		return finish(span, "", err)
	}
	if err := h.Show(); err != nil {
		return finish(span, "", hostFailure(label, err))
	}
	if err := h.SetFocus(); err != nil {
		return finish(span, "", hostFailure(label, err))
	}
	log.Info(log.CatWindow, "Window shown", "label", label)
	return finish(span, StatusShown, nil)
}

// Hide hides the window without closing it.
func (s *Service) Hide(ctx context.Context, label string) (Status, error) {
	ctx, span := tracing.StartCommand(ctx, s.tracer, "hide", label)
	h, err := s.lookup(ctx, label)
	if err != nil {
		return finish(span, "", err)
	}
	if err := h.Hide(); err != nil {
		return finish(span, "", hostFailure(label, err))
	}
	log.Info(log.CatWindow, "Window hidden", "label", label)
	return finish(span, StatusHidden, nil)
}

// StartDrag begins an interactive move of the window. There is no default
// window: a nil or empty label is rejected before the registry is consulted.
func (s *Service) StartDrag(ctx context.Context, label *string) (Status, error) {
	var l string
	if label != nil {
		l = *label
	}
	ctx, span := tracing.StartCommand(ctx, s.tracer, "start_drag", l)
	if l == "" {
		return finish(span, "", missingParameter("label"))
	}
	h, err := s.lookup(ctx, l)
	if err != nil {
		return finish(span, "", err)
	}
	if err := h.StartDragging(); err != nil {
		log.ErrorErr(log.CatWindow, "Start dragging failed", err, "label", l)
		return finish(span, "", hostFailure(l, err))
	}
	log.Debug(log.CatWindow, "Window dragging", "label", l)
	return finish(span, StatusDragging, nil)
}

// Minimize minimizes the window.
func (s *Service) Minimize(ctx context.Context, label string) (Status, error) {
	return s.stateChange(ctx, "minimize", label, Handle.Minimize, StatusMinimized)
}

// Maximize maximizes the window.
func (s *Service) Maximize(ctx context.Context, label string) (Status, error) {
	return s.stateChange(ctx, "maximize", label, Handle.Maximize, StatusMaximized)
}

// Unmaximize restores a maximized window.
func (s *Service) Unmaximize(ctx context.Context, label string) (Status, error) {
	return s.stateChange(ctx, "unmaximize", label, Handle.Unmaximize, StatusUnmaximized)
}

func (s *Service) stateChange(ctx context.Context, command, label string, op func(Handle) error, status Status) (Status, error) {
	ctx, span := tracing.StartCommand(ctx, s.tracer, command, label)
	h, err := s.lookup(ctx, label)
	if err != nil {
		return finish(span, "", err)
	}
	if err := op(h); err != nil {
		return finish(span, "", hostFailure(label, err))
	}
	log.Debug(log.CatWindow, "Window state changed", "label", label, "status", status)
	return finish(span, status, nil)
}

// ToggleMaximize flips the maximized state. The read and the write are two
// separate host calls; a concurrent mutation between them is not detected.
func (s *Service) ToggleMaximize(ctx context.Context, label string) (Status, error) {
	ctx, span := tracing.StartCommand(ctx, s.tracer, "toggle_maximize", label)
	h, err := s.lookup(ctx, label)
	if err != nil {
		return finish(span, "", err)
	}
	maximized, err := h.IsMaximized()
	if err != nil {
		return finish(span, "", hostFailure(label, err))
	}

	status := StatusMaximized
	op := h.Maximize
	if maximized {
		status = StatusUnmaximized
		op = h.Unmaximize
	}
	if err := op(); err != nil {
		return finish(span, "", hostFailure(label, err))
	}
	log.Debug(log.CatWindow, "Window maximize toggled", "label", label, "status", status)
	return finish(span, status, nil)
}

// IsMaximized reports whether the window is maximized. It never mutates.
func (s *Service) IsMaximized(ctx context.Context, label string) (bool, error) {
	ctx, span := tracing.StartCommand(ctx, s.tracer, "is_maximized", label)
	h, err := s.lookup(ctx, label)
	if err != nil {
		_, err = finish(span, "", err)
		return false, err
	}
	maximized, err := h.IsMaximized()
	if err != nil {
		_, err = finish(span, "", hostFailure(label, err))
		return false, err
	}
	log.Debug(log.CatWindow, "Window maximized state", "label", label, "maximized", maximized)
	_, _ = finish(span, "", nil)
	return maximized, nil
}

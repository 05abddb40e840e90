// Package api exposes the window commands over HTTP. POST /invoke/{command}
// mirrors the front-end's invoke bridge; GET /windows and GET /events let
// tools observe the host.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/renflow/renflow/internal/flags"
	"github.com/renflow/renflow/internal/host"
	"github.com/renflow/renflow/internal/log"
	"github.com/renflow/renflow/internal/pubsub"
	"github.com/renflow/renflow/internal/window"
)

// Invoke command names.
const (
	CmdCreateWindow   = "win_create_window"
	CmdCloseWindow    = "win_close_window"
	CmdShowWindow     = "win_show_window"
	CmdHideWindow     = "win_hide_window"
	CmdStartDragging  = "win_start_dragging"
	CmdMinimize       = "win_minimize"
	CmdMaximize       = "win_maximize"
	CmdUnmaximize     = "win_unmaximize"
	CmdToggleMaximize = "win_toggle_maximize"
	CmdIsMaximized    = "win_is_maximized"
)

// Error kinds produced by the bridge itself rather than the façade.
const (
	KindUnknownCommand = "unknown_command"
	KindInvalidJSON    = "invalid_json"
)

// heartbeatInterval keeps idle SSE connections open through proxies.
const heartbeatInterval = 30 * time.Second

// Windows is the command surface the bridge dispatches to.
type Windows interface {
	CreateOrShow(ctx context.Context, opts window.CreateOptions) (window.Status, error)
	Close(ctx context.Context, label string) (window.Status, error)
	Show(ctx context.Context, label string) (window.Status, error)
	Hide(ctx context.Context, label string) (window.Status, error)
	StartDrag(ctx context.Context, label *string) (window.Status, error)
	Minimize(ctx context.Context, label string) (window.Status, error)
	Maximize(ctx context.Context, label string) (window.Status, error)
	Unmaximize(ctx context.Context, label string) (window.Status, error)
	ToggleMaximize(ctx context.Context, label string) (window.Status, error)
	IsMaximized(ctx context.Context, label string) (bool, error)
}

// Registry is the read side of the host.
type Registry interface {
	List() []host.Snapshot
	Len() int
	Subscribe(ctx context.Context) <-chan pubsub.Event[host.Event]
}

// Handler provides the HTTP endpoints.
type Handler struct {
	windows  Windows
	registry Registry
	flags    *flags.Registry
	commands map[string]command
}

// HandlerConfig configures the API handler.
type HandlerConfig struct {
	// Windows executes commands (required).
	Windows Windows
	// Registry backs /windows, /events and /health (required).
	Registry Registry
	// Flags gates optional endpoints. Nil leaves them enabled.
	Flags *flags.Registry
}

// NewHandler creates a handler.
func NewHandler(cfg HandlerConfig) *Handler {
	h := &Handler{
		windows:  cfg.Windows,
		registry: cfg.Registry,
		flags:    cfg.Flags,
	}
	h.commands = h.commandTable()
	return h
}

// Routes returns an http.Handler with all API routes registered.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /invoke/{command}", h.Invoke)
	mux.HandleFunc("GET /windows", h.ListWindows)
	mux.HandleFunc("GET /events", h.StreamEvents)
	mux.HandleFunc("GET /health", h.Health)

	return mux
}

// === Request/Response types ===

// InvokeArgs are the named arguments of an invoke call. For
// win_create_window the options may be nested under "options" or sent as
// the body itself.
type InvokeArgs struct {
	Label   *string               `json:"label,omitempty"`
	Options *window.CreateOptions `json:"options,omitempty"`
}

// createBody accepts both create shapes.
type createBody struct {
	Options *window.CreateOptions `json:"options"`
	window.CreateOptions
}

// InvokeResponse is the envelope of every invoke reply. Value is a status
// string or, for win_is_maximized, a boolean.
type InvokeResponse struct {
	OK    bool   `json:"ok"`
	Value any    `json:"value,omitempty"`
	Error string `json:"error,omitempty"`
	Kind  string `json:"kind,omitempty"`
}

// WindowsResponse is the body of GET /windows.
type WindowsResponse struct {
	Windows []host.Snapshot `json:"windows"`
	Total   int             `json:"total"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Windows int    `json:"windows"`
}

// ErrorResponse is the body of non-invoke errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

// EventMessage is the data line of one SSE event.
type EventMessage struct {
	ID        string        `json:"id"`
	Type      string        `json:"type"`
	Action    host.Action   `json:"action"`
	Window    host.Snapshot `json:"window"`
	Timestamp time.Time     `json:"timestamp"`
}

// === Handlers ===

type command func(ctx context.Context, body []byte) (any, error)

// errMissingLabel mirrors the façade's wording for an absent label argument.
var errMissingLabel = &window.Error{Kind: window.KindMissingParameter, Msg: "label is required"}

func (h *Handler) commandTable() map[string]command {
	byLabel := func(fn func(context.Context, string) (window.Status, error)) command {
		return func(ctx context.Context, body []byte) (any, error) {
			var args InvokeArgs
			if err := json.Unmarshal(body, &args); err != nil {
				return nil, err
			}
			if args.Label == nil {
				return nil, errMissingLabel
			}
			return fn(ctx, *args.Label)
		}
	}

	return map[string]command{
		CmdCreateWindow: func(ctx context.Context, body []byte) (any, error) {
			var req createBody
			if err := json.Unmarshal(body, &req); err != nil {
				return nil, err
			}
			opts := req.CreateOptions
			if req.Options != nil {
				opts = *req.Options
			}
			return h.windows.CreateOrShow(ctx, opts)
		},
		CmdStartDragging: func(ctx context.Context, body []byte) (any, error) {
			var args InvokeArgs
			if err := json.Unmarshal(body, &args); err != nil {
				return nil, err
			}
			return h.windows.StartDrag(ctx, args.Label)
		},
		CmdIsMaximized: func(ctx context.Context, body []byte) (any, error) {
			var args InvokeArgs
			if err := json.Unmarshal(body, &args); err != nil {
				return nil, err
			}
			if args.Label == nil {
				return nil, errMissingLabel
			}
			return h.windows.IsMaximized(ctx, *args.Label)
		},
		CmdCloseWindow:    byLabel(h.windows.Close),
		CmdShowWindow:     byLabel(h.windows.Show),
		CmdHideWindow:     byLabel(h.windows.Hide),
		CmdMinimize:       byLabel(h.windows.Minimize),
		CmdMaximize:       byLabel(h.windows.Maximize),
		CmdUnmaximize:     byLabel(h.windows.Unmaximize),
		CmdToggleMaximize: byLabel(h.windows.ToggleMaximize),
	}
}

// Invoke runs one window command.
// POST /invoke/{command}
func (h *Handler) Invoke(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("command")
	cmd, ok := h.commands[name]
	if !ok {
		h.writeJSON(w, http.StatusNotFound, InvokeResponse{
			Error: fmt.Sprintf("unknown command: %s", name),
			Kind:  KindUnknownCommand,
		})
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, InvokeResponse{Error: err.Error(), Kind: KindInvalidJSON})
		return
	}
	if len(body) == 0 {
		body = []byte("{}")
	}

	value, err := cmd(r.Context(), body)
	if err != nil {
		var werr *window.Error
		if !errors.As(err, &werr) {
			// Only json.Unmarshal errors reach here; the façade always
			// returns *window.Error.
			h.writeJSON(w, http.StatusBadRequest, InvokeResponse{Error: err.Error(), Kind: KindInvalidJSON})
			return
		}
		log.Debug(log.CatAPI, "Invoke failed", "command", name, "kind", werr.Kind, "error", werr.Msg)
		h.writeJSON(w, statusForKind(werr.Kind), InvokeResponse{Error: werr.Error(), Kind: werr.Kind.String()})
		return
	}

	h.writeJSON(w, http.StatusOK, InvokeResponse{OK: true, Value: value})
}

func statusForKind(k window.Kind) int {
	switch k {
	case window.KindNotFound:
		return http.StatusNotFound
	case window.KindMissingParameter:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ListWindows returns a snapshot of every live window.
// GET /windows
func (h *Handler) ListWindows(w http.ResponseWriter, r *http.Request) {
	list := h.registry.List()
	h.writeJSON(w, http.StatusOK, WindowsResponse{Windows: list, Total: len(list)})
}

// Health reports liveness and the window count.
// GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Windows: h.registry.Len()})
}

// StreamEvents streams host window events via SSE.
// GET /events
func (h *Handler) StreamEvents(w http.ResponseWriter, r *http.Request) {
	if h.flags != nil && !h.flags.Enabled(flags.FlagEventStream) {
		h.writeError(w, http.StatusServiceUnavailable, "disabled", "Event stream is disabled", flags.FlagEventStream)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		h.writeError(w, http.StatusInternalServerError, "streaming_unsupported", "Streaming not supported", "")
		return
	}

	ctx := r.Context()
	events := h.registry.Subscribe(ctx)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	_, _ = fmt.Fprintf(w, "event: connected\ndata: {}\n\n")
	flusher.Flush()

	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, _ = fmt.Fprintf(w, ": heartbeat\n\n")
			flusher.Flush()
		case ev, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(EventMessage{
				ID:        ev.ID,
				Type:      string(ev.Type),
				Action:    ev.Payload.Action,
				Window:    ev.Payload.Window,
				Timestamp: ev.Timestamp,
			})
			if err != nil {
				log.ErrorErr(log.CatAPI, "Failed to marshal event", err)
				continue
			}
			_, _ = fmt.Fprintf(w, "id: %s\nevent: %s\ndata: %s\n\n", ev.ID, ev.Payload.Action, data)
			flusher.Flush()
		}
	}
}

// === Helpers ===

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.ErrorErr(log.CatAPI, "Failed to encode JSON response", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, code, message, details string) {
	h.writeJSON(w, status, ErrorResponse{
		Error:   message,
		Code:    code,
		Details: details,
	})
}

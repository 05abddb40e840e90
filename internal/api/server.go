package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/renflow/renflow/internal/flags"
	"github.com/renflow/renflow/internal/log"
	"github.com/renflow/renflow/internal/tracing"
)

// Server wraps the Handler with an http.Server for lifecycle management.
type Server struct {
	handler  *Handler
	server   *http.Server
	listener net.Listener
	addr     string
	port     int // Actual port after binding (useful when using :0)
}

// ServerConfig configures the API server.
type ServerConfig struct {
	// Addr is the address to listen on (e.g., "localhost:17420" or ":0").
	Addr     string
	Windows  Windows
	Registry Registry
	Flags    *flags.Registry
	// Tracer wraps each request in a server span. Nil disables spans but
	// request IDs are still assigned.
	Tracer trace.Tracer
	// ReadTimeout is the maximum duration for reading the entire request.
	ReadTimeout time.Duration
}

// NewServer creates a new API server and binds its listener.
// If Addr uses port 0 the OS assigns a port; Port() reports it.
func NewServer(cfg ServerConfig) (*Server, error) {
	handler := NewHandler(HandlerConfig{
		Windows:  cfg.Windows,
		Registry: cfg.Registry,
		Flags:    cfg.Flags,
	})

	readTimeout := cfg.ReadTimeout
	if readTimeout == 0 {
		readTimeout = 30 * time.Second
	}

	listener, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", cfg.Addr, err)
	}

	port := 0
	if tcpAddr, ok := listener.Addr().(*net.TCPAddr); ok {
		port = tcpAddr.Port
	}

	return &Server{
		handler:  handler,
		addr:     cfg.Addr,
		port:     port,
		listener: listener,
		server: &http.Server{
			Handler:           Middleware(cfg.Tracer, handler.Routes()),
			ReadTimeout:       readTimeout,
			ReadHeaderTimeout: 10 * time.Second,
			// No WriteTimeout: /events streams indefinitely.
		},
	}, nil
}

// Middleware applies request IDs, tracing and access logging to next.
func Middleware(tracer trace.Tracer, next http.Handler) http.Handler {
	return tracing.HTTPMiddleware(tracer)(accessLog(next))
}

func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Debug(log.CatAPI, "Request",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", tracing.RequestIDFromContext(r.Context()),
			"duration", time.Since(start))
	})
}

// Start serves until the server is stopped or fails. It blocks.
func (s *Server) Start() error {
	log.Info(log.CatAPI, "Starting API server", "addr", s.listener.Addr().String(), "port", s.port)
	return s.server.Serve(s.listener)
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	log.Info(log.CatAPI, "Stopping API server")
	return s.server.Shutdown(ctx)
}

// Addr returns the bound listener address.
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Port returns the actual port the server is listening on.
func (s *Server) Port() int {
	return s.port
}

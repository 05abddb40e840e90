package api

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/renflow/renflow/internal/host"
	"github.com/renflow/renflow/internal/tracing"
)

// RemoteError is a failed invoke as reported by the server.
type RemoteError struct {
	Status int
	Kind   string
	Msg    string
}

func (e *RemoteError) Error() string { return e.Msg }

// Client talks to a running renflow serve.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for addr ("host:port" or a full URL).
func NewClient(addr string) *Client {
	base := addr
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "http://" + base
	}
	return &Client{
		baseURL: strings.TrimRight(base, "/"),
		http:    &http.Client{},
	}
}

// Invoke runs command with args and returns the reply value: a status
// string, or a bool for win_is_maximized. Failures come back as *RemoteError.
func (c *Client) Invoke(ctx context.Context, command string, args any) (any, error) {
	body, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("encoding args: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/invoke/"+command, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(tracing.RequestIDHeader, tracing.NewRequestID())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("invoking %s: %w", command, err)
	}
	defer func() { _ = resp.Body.Close() }()

	var out InvokeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding %s response (status %d): %w", command, resp.StatusCode, err)
	}
	if !out.OK {
		return nil, &RemoteError{Status: resp.StatusCode, Kind: out.Kind, Msg: out.Error}
	}
	return out.Value, nil
}

// Windows lists the live windows.
func (c *Client) Windows(ctx context.Context) ([]host.Snapshot, error) {
	var out WindowsResponse
	if err := c.getJSON(ctx, "/windows", &out); err != nil {
		return nil, err
	}
	return out.Windows, nil
}

// Health fetches the health endpoint.
func (c *Client) Health(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	err := c.getJSON(ctx, "/health", &out)
	return out, err
}

func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("GET %s: status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("GET %s: decoding: %w", path, err)
	}
	return nil
}

// Events streams window events until ctx is cancelled or the server closes
// the connection. The returned channel is closed when the stream ends.
func (c *Client) Events(ctx context.Context) (<-chan EventMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/events", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET /events: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("GET /events: status %d", resp.StatusCode)
	}

	out := make(chan EventMessage, 16)
	go func() {
		defer close(out)
		defer func() { _ = resp.Body.Close() }()
		readSSE(ctx, resp.Body, out)
	}()
	return out, nil
}

// readSSE parses "data:" lines of window events. The connected event, any
// comments and unknown payloads are skipped.
func readSSE(ctx context.Context, r io.Reader, out chan<- EventMessage) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var event, data string
	for sc.Scan() {
		line := sc.Text()
		switch {
		case line == "":
			if data != "" && event != "connected" {
				var msg EventMessage
				if json.Unmarshal([]byte(data), &msg) == nil && msg.Action != "" {
					select {
					case out <- msg:
					case <-ctx.Done():
						return
					}
				}
			}
			event, data = "", ""
		case strings.HasPrefix(line, "event:"):
			event = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			data += strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		}
	}
}

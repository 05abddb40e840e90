package monitor

import (
	"context"

	"github.com/renflow/renflow/internal/api"
	"github.com/renflow/renflow/internal/host"
	"github.com/renflow/renflow/internal/log"
	"github.com/renflow/renflow/internal/pubsub"
)

// Source is what the monitor watches: a window listing plus an event feed.
type Source interface {
	pubsub.Subscriber[host.Event]
	List(ctx context.Context) ([]host.Snapshot, error)
	Name() string
}

// LocalSource watches an in-process host.
type LocalSource struct {
	Host *host.Host
}

func (s LocalSource) Subscribe(ctx context.Context) <-chan pubsub.Event[host.Event] {
	return s.Host.Subscribe(ctx)
}

func (s LocalSource) List(context.Context) ([]host.Snapshot, error) {
	return s.Host.List(), nil
}

func (s LocalSource) Name() string { return "in-process" }

// RemoteSource watches a running serve over HTTP.
type RemoteSource struct {
	Client *api.Client
	Addr   string
}

// Subscribe relays the SSE stream as pubsub events. If the stream cannot be
// opened the returned channel is already closed.
func (s RemoteSource) Subscribe(ctx context.Context) <-chan pubsub.Event[host.Event] {
	out := make(chan pubsub.Event[host.Event], 16)

	msgs, err := s.Client.Events(ctx)
	if err != nil {
		log.ErrorErr(log.CatMonitor, "Event stream unavailable", err, "addr", s.Addr)
		close(out)
		return out
	}

	go func() {
		defer close(out)
		for msg := range msgs {
			ev := pubsub.Event[host.Event]{
				ID:        msg.ID,
				Type:      pubsub.EventType(msg.Type),
				Payload:   host.Event{Action: msg.Action, Window: msg.Window},
				Timestamp: msg.Timestamp,
			}
			select {
			case out <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

func (s RemoteSource) List(ctx context.Context) ([]host.Snapshot, error) {
	return s.Client.Windows(ctx)
}

func (s RemoteSource) Name() string { return s.Addr }

// Package pubsub provides a generic publish/subscribe event system used to
// fan window lifecycle events out to the HTTP event stream and the monitor.
package pubsub

import (
	"context"
	"time"
)

// EventType represents the type of event being published.
type EventType string

const (
	// CreatedEvent is published when a window is built.
	CreatedEvent EventType = "created"
	// UpdatedEvent is published when a live window changes visual state.
	UpdatedEvent EventType = "updated"
	// DeletedEvent is published when a window is closed and leaves the registry.
	DeletedEvent EventType = "deleted"
)

// Event represents a published event with a typed payload.
type Event[T any] struct {
	ID        string
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Subscriber provides a subscription channel for events.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

// Publisher allows publishing events with a typed payload.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T)
}

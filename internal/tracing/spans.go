package tracing

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Span attribute keys.
const (
	AttrWindowLabel    = "window.label"
	AttrWindowCommand  = "window.command"
	AttrWindowStatus   = "window.status"
	AttrWindowPlatform = "window.platform"
	AttrRequestID      = "request.id"
	AttrHTTPRoute      = "http.route"
	AttrHTTPStatus     = "http.status_code"
	AttrErrorKind      = "error.kind"
	AttrErrorMessage   = "error.message"
)

// Span name prefixes.
const (
	SpanPrefixWindow = "window."
	SpanPrefixHTTP   = "http."
)

// Span event names.
const (
	EventWindowLookup     = "window.lookup"
	EventWindowBuilt      = "window.built"
	EventBackdropSkipped  = "backdrop.skipped"
	EventBackdropFailed   = "backdrop.failed"
	EventRevealStepFailed = "reveal.step_failed"
)

// StartCommand opens the span for one façade command. A nil tracer yields a
// no-op span.
func StartCommand(ctx context.Context, tracer trace.Tracer, command, label string) (context.Context, trace.Span) {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("noop")
	}
	ctx, span := tracer.Start(ctx, SpanPrefixWindow+command,
		trace.WithSpanKind(trace.SpanKindInternal),
	)
	span.SetAttributes(
		attribute.String(AttrWindowCommand, command),
		attribute.String(AttrWindowLabel, label),
	)
	return ctx, span
}

// EndCommand records the outcome and ends the span.
func EndCommand(span trace.Span, status string, err error, kind string) {
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(
			attribute.String(AttrErrorKind, kind),
			attribute.String(AttrErrorMessage, err.Error()),
		)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(attribute.String(AttrWindowStatus, status))
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// Package tracer wraps each auth service call in a span.
//
// AuthClient talks to the Tracer interface only. NewNoop is the default;
// NewOTel forwards spans to OpenTelemetry.
package tracer

import (
	"context"
	"time"
)

// Span is one in-flight auth service call.
type Span interface {
	// End finishes the span and marks it failed when err is non-nil.
	End(err error)
	SetAttributes(attrs ...Attribute)
	AddEvent(name string, attrs ...Attribute)
}

// Tracer starts call spans. Implementations must be safe for concurrent use.
type Tracer interface {
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute is a span attribute. Values are either strings or integers.
type Attribute struct {
	Key   string
	Value any
}

// String creates a string attribute.
func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Int creates an integer attribute.
func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: value}
}

// Duration creates an attribute holding d in whole milliseconds.
func Duration(key string, d time.Duration) Attribute {
	return Attribute{Key: key, Value: d.Milliseconds()}
}

// Attribute keys set on call spans.
const (
	AttrHTTPMethod     = "http.request.method"
	AttrHTTPRoute      = "http.route"
	AttrHTTPStatusCode = "http.response.status_code"
	AttrRequestID      = "request_id"
	AttrDurationMs     = "duration_ms"
)

// EventResponseReceived marks the moment response headers arrive.
const EventResponseReceived = "response.received"

// SpanName returns the span name for a client operation, e.g.
// "authclient.login_tenant".
func SpanName(operation string) string {
	return "authclient." + operation
}

// CallAttributes returns the attributes a call span starts with. route is the
// path template, never the concrete path, so logins stay out of traces.
func CallAttributes(method, route, requestID string) []Attribute {
	attrs := []Attribute{
		String(AttrHTTPMethod, method),
		String(AttrHTTPRoute, route),
	}
	if requestID != "" {
		attrs = append(attrs, String(AttrRequestID, requestID))
	}
	return attrs
}

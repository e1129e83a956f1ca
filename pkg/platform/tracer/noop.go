package tracer

import "context"

// NoopTracer discards every span.
type NoopTracer struct{}

// NewNoop returns the tracer AuthClient uses when none is configured.
func NewNoop() *NoopTracer {
	return &NoopTracer{}
}

// Start returns ctx unchanged.
func (NoopTracer) Start(ctx context.Context, _ string, _ ...Attribute) (context.Context, Span) {
	return ctx, noopSpan{}
}

type noopSpan struct{}

func (noopSpan) End(error) {}

func (noopSpan) SetAttributes(...Attribute) {}

func (noopSpan) AddEvent(string, ...Attribute) {}

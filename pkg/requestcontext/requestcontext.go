// Package requestcontext carries per-request values through context.Context.
package requestcontext

import "context"

type ctxKey int

const requestIDKey ctxKey = iota

// WithRequestID returns a copy of ctx carrying the given request ID.
// An empty ID leaves ctx unchanged.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestID returns the request ID stored in ctx, or "" if none.
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	v, _ := ctx.Value(requestIDKey).(string)
	return v
}

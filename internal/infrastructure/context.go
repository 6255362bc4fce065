package infrastructure

import "context"

type contextKey string

// traceIDKey stores the request trace id used to correlate log lines.
const traceIDKey contextKey = "trace_id"

// WithTraceID returns a context carrying the trace id.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

// GetTraceID returns the trace id from the context, or "" when absent.
func GetTraceID(ctx context.Context) string {
	if id, ok := ctx.Value(traceIDKey).(string); ok {
		return id
	}
	return ""
}

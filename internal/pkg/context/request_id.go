// Package context carries per-request metadata across layers without the
// transport packages importing each other.
package context

import "context"

type requestIDKey struct{}

// WithRequestID returns a child context tagged with the request ID the HTTP
// middleware assigned (or echoed from the X-Request-Id header).
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// GetRequestID returns the request ID, or "" when the context has none.
// Log enrichment treats the empty string as "no request in flight".
func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

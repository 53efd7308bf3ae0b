package middleware

import (
	"net/http"

	"github.com/google/uuid"

	appctx "github.com/deptboard/board-service/internal/pkg/context"
)

const RequestIDHeader = "X-Request-Id"

// RequestID propagates an incoming request ID or mints a new one, and
// echoes it back on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(appctx.WithRequestID(r.Context(), id)))
	})
}

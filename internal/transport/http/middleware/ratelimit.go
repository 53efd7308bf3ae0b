package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/deptboard/board-service/internal/domain"
	"github.com/deptboard/board-service/internal/infrastructure/redis"
	"github.com/deptboard/board-service/internal/logger"
)

// RateLimit applies a per-IP fixed window to a route. The limiter fails
// open: a Redis outage logs and lets the request through.
func RateLimit(limiter *redis.FixedWindowLimiter, scope string, limit int, window time.Duration, writeErr WriteErrFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := fmt.Sprintf("rl:%s:%s", scope, clientIP(r))

			d, err := limiter.AllowFixedWindow(r.Context(), key, limit, window)
			if err != nil {
				logger.WithCtx(r.Context()).Warn().Err(err).Str("scope", scope).Msg("rate limiter unavailable, allowing request")
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(d.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))

			if !d.Allowed {
				w.Header().Set("Retry-After", strconv.Itoa(int(d.RetryAfter.Seconds())+1))
				writeErr(w, r, domain.ErrRateLimited(scope))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

package middleware

import (
	"net/http"

	"github.com/deptboard/board-service/internal/domain"
)

// RequireRole gates a route group to one role exactly. Admin and student
// areas are disjoint; there is no role hierarchy.
func RequireRole(role string, writeErr WriteErrFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u := UserFrom(r.Context())
			if u == nil {
				writeErr(w, r, domain.ErrTokenMissing())
				return
			}
			if u.Role != role {
				writeErr(w, r, domain.ErrRoleRequired(role))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

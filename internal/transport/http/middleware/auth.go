package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/deptboard/board-service/internal/domain"
)

// TokenVerifier resolves a bearer token to its current user.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*domain.User, error)
}

// WriteErrFunc renders a domain error; injected so middleware doesn't
// import the response package.
type WriteErrFunc func(w http.ResponseWriter, r *http.Request, err error)

// Auth requires a valid Bearer token and loads the user onto the context.
func Auth(verifier TokenVerifier, writeErr WriteErrFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				writeErr(w, r, domain.ErrTokenMissing())
				return
			}

			user, err := verifier.Verify(r.Context(), token)
			if err != nil {
				writeErr(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	if h == "" {
		return "", false
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

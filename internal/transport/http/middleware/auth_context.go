package middleware

import (
	"context"

	"github.com/deptboard/board-service/internal/domain"
)

type userKeyType struct{}

var userKey userKeyType

// WithUser stores the authenticated user on the context.
func WithUser(ctx context.Context, u *domain.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// UserFrom returns the authenticated user, or nil outside the auth chain.
func UserFrom(ctx context.Context) *domain.User {
	u, _ := ctx.Value(userKey).(*domain.User)
	return u
}

package auth

import (
	"context"
	"time"

	"github.com/deptboard/board-service/internal/domain"
)

// UserRepo is implemented by the persistence layer.
type UserRepo interface {
	// GetByEmailOrMatric returns the first user matching either the email or
	// the matric number. Email comparison is case-insensitive (stored
	// lowercase); matric numbers match exactly.
	GetByEmailOrMatric(ctx context.Context, email, matricNumber string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, name, email, phone string) (*domain.User, error)
	UpdateProfileImage(ctx context.Context, id string, imageURL string) (*domain.User, error)
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) error
}

// TokenClaims is the decoded payload of a verified token.
type TokenClaims struct {
	UserID string
	Exp    time.Time
}

type TokenSigner interface {
	Sign(userID string, ttl time.Duration) (string, error)
	Verify(token string) (*TokenClaims, error)
}

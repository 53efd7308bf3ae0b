package auth

import (
	"context"

	"github.com/deptboard/board-service/internal/domain"
)

// Verify validates a token and re-fetches the subject so the caller sees the
// user's current state, not a snapshot baked into the token. A token whose
// user has since been deleted is treated as invalid.
func (s *Service) Verify(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrTokenMissing()
	}

	claims, err := s.signer.Verify(token)
	if err != nil {
		return nil, domain.ErrTokenInvalid()
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrTokenInvalid()
	}

	return user, nil
}

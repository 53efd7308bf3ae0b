package auth

import (
	"context"

	"github.com/deptboard/board-service/internal/domain"
)

type LoginInput struct {
	Identifier   string
	Email        string
	MatricNumber string
	Password     string
}

// Login authenticates by any accepted identifier and returns the user with a
// fresh token. Every failure path that depends on what the client guessed
// returns the same ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	id, ok := ResolveIdentifier(in.Identifier, in.Email, in.MatricNumber)
	if !ok {
		return nil, domain.ErrMissingField("identifier")
	}
	if in.Password == "" {
		return nil, domain.ErrMissingField("password")
	}

	user, err := s.users.GetByEmailOrMatric(ctx, NormalizeEmail(id), id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials()
	}

	if err := s.hasher.Compare(user.PasswordHash, in.Password); err != nil {
		return nil, domain.ErrInvalidCredentials()
	}

	token, err := s.signer.Sign(user.ID, s.tokenTTL)
	if err != nil {
		return nil, domain.ErrTokenSignFailed(err)
	}

	return &AuthResult{User: user, Token: token}, nil
}

package auth

import (
	"context"
	"strings"

	"github.com/deptboard/board-service/internal/domain"
)

type SignupInput struct {
	Name         string
	Email        string
	MatricNumber string
	Level        int
	Password     string
	StudentType  string
	Phone        string
}

type AuthResult struct {
	User  *domain.User
	Token string
}

// Signup registers a new student and returns the created user with a fresh
// token, so the client is logged in immediately.
//
// Student type and matric number are free-form: faculties issue matric
// numbers in formats of their own choosing, so only presence is checked.
func (s *Service) Signup(ctx context.Context, in SignupInput) (*AuthResult, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = NormalizeEmail(in.Email)
	in.MatricNumber = strings.TrimSpace(in.MatricNumber)
	in.StudentType = strings.TrimSpace(in.StudentType)
	in.Phone = strings.TrimSpace(in.Phone)

	switch {
	case in.Name == "":
		return nil, domain.ErrMissingField("name")
	case in.Email == "":
		return nil, domain.ErrMissingField("email")
	case in.MatricNumber == "":
		return nil, domain.ErrMissingField("matricNumber")
	case in.Password == "":
		return nil, domain.ErrMissingField("password")
	case in.StudentType == "":
		return nil, domain.ErrMissingField("studentType")
	}
	if in.Level <= 0 {
		return nil, domain.ErrInvalidField("level", "must be a positive number")
	}
	if len(in.Password) < 6 {
		return nil, domain.ErrInvalidField("password", "must be at least 6 characters")
	}

	// Pre-check gives the common case a clean error. Concurrent signups that
	// slip past it are caught by the unique constraints in the repo.
	existing, err := s.users.GetByEmailOrMatric(ctx, in.Email, in.MatricNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateUser()
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, domain.ErrHashFailed(err)
	}

	created, err := s.users.Create(ctx, &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		MatricNumber: in.MatricNumber,
		PasswordHash: hash,
		Role:         string(domain.RoleStudent),
		Level:        in.Level,
		StudentType:  in.StudentType,
		Department:   s.department,
		Phone:        in.Phone,
	})
	if err != nil {
		return nil, err
	}

	token, err := s.signer.Sign(created.ID, s.tokenTTL)
	if err != nil {
		return nil, domain.ErrTokenSignFailed(err)
	}

	return &AuthResult{User: created, Token: token}, nil
}

package board

import (
	"context"
	"io"
	"strings"

	"github.com/deptboard/board-service/internal/domain"
)

type UpdateProfileInput struct {
	Name  string
	Email string
	Phone string
}

func (s *Service) Profile(ctx context.Context, userID string) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound()
	}
	return u, nil
}

// UpdateProfile changes the mutable profile fields. Empty inputs leave the
// stored value untouched. Email goes through the same canonicalization as
// signup so login keeps working after a change.
func (s *Service) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*domain.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)

	return s.users.UpdateProfile(ctx, userID, in.Name, in.Email, in.Phone)
}

// allowed content types for profile pictures
var imageContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// UpdateProfilePicture stores a new profile image and points the user at it.
func (s *Service) UpdateProfilePicture(ctx context.Context, userID, filename, contentType string, r io.Reader) (*domain.User, error) {
	if !imageContentTypes[contentType] {
		return nil, domain.ErrInvalidField("profilePicture", "only image files are allowed")
	}

	url, err := s.files.Save(ctx, "profiles", filename, r)
	if err != nil {
		return nil, domain.ErrUploadFailed(err)
	}

	return s.users.UpdateProfileImage(ctx, userID, url)
}

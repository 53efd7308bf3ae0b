package board

import (
	"context"
	"io"
	"strings"

	"github.com/deptboard/board-service/internal/domain"
	"github.com/deptboard/board-service/internal/logger"
)

type CreateAnnouncementInput struct {
	Title      string
	Content    string
	Category   string
	IsFeatured bool
	IsUrgent   bool
	AuthorID   string

	// Optional attachment; stored via the file store when Attachment != nil.
	Attachment     io.Reader
	AttachmentName string
}

func (s *Service) ListAnnouncements(ctx context.Context, f domain.AnnouncementFilter) ([]domain.Announcement, error) {
	f.Search = strings.TrimSpace(f.Search)
	f.Category = strings.TrimSpace(f.Category)
	return s.announcements.List(ctx, f)
}

func (s *Service) GetAnnouncement(ctx context.Context, id string) (*domain.Announcement, error) {
	a, err := s.announcements.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound("announcement")
	}
	return a, nil
}

func (s *Service) CreateAnnouncement(ctx context.Context, in CreateAnnouncementInput) (*domain.Announcement, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)
	if in.Title == "" {
		return nil, domain.ErrMissingField("title")
	}
	if in.Content == "" {
		return nil, domain.ErrMissingField("content")
	}
	if in.Category == "" {
		in.Category = "general"
	}

	var fileURL string
	if in.Attachment != nil {
		url, err := s.files.Save(ctx, "announcements", in.AttachmentName, in.Attachment)
		if err != nil {
			return nil, domain.ErrUploadFailed(err)
		}
		fileURL = url
	}

	created, err := s.announcements.Create(ctx, &domain.Announcement{
		Title:      in.Title,
		Content:    in.Content,
		Category:   in.Category,
		IsFeatured: in.IsFeatured,
		IsUrgent:   in.IsUrgent,
		FileURL:    fileURL,
		AuthorID:   in.AuthorID,
	})
	if err != nil {
		return nil, err
	}

	// Fan-out is best effort; a broker outage never fails the admin's write.
	if s.publisher != nil {
		if err := s.publisher.PublishAnnouncementCreated(ctx, created); err != nil {
			logger.WithCtx(ctx).Warn().Err(err).Str("announcement_id", created.ID).Msg("announcement event publish failed")
		}
	}

	return created, nil
}

type UpdateAnnouncementInput struct {
	Title      *string
	Content    *string
	Category   *string
	IsFeatured *bool
	IsUrgent   *bool
}

func (s *Service) UpdateAnnouncement(ctx context.Context, id string, in UpdateAnnouncementInput) (*domain.Announcement, error) {
	existing, err := s.GetAnnouncement(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return nil, domain.ErrMissingField("title")
		}
		existing.Title = strings.TrimSpace(*in.Title)
	}
	if in.Content != nil {
		if strings.TrimSpace(*in.Content) == "" {
			return nil, domain.ErrMissingField("content")
		}
		existing.Content = strings.TrimSpace(*in.Content)
	}
	if in.Category != nil {
		existing.Category = *in.Category
	}
	if in.IsFeatured != nil {
		existing.IsFeatured = *in.IsFeatured
	}
	if in.IsUrgent != nil {
		existing.IsUrgent = *in.IsUrgent
	}

	return s.announcements.Update(ctx, existing)
}

func (s *Service) DeleteAnnouncement(ctx context.Context, id string) error {
	if _, err := s.GetAnnouncement(ctx, id); err != nil {
		return err
	}
	return s.announcements.Delete(ctx, id)
}

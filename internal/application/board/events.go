package board

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/deptboard/board-service/internal/domain"
)

type CreateEventInput struct {
	Title       string
	Description string
	Date        time.Time
	Venue       string

	Attachment     io.Reader
	AttachmentName string
}

func (s *Service) ListEvents(ctx context.Context) ([]domain.Event, error) {
	return s.events.List(ctx)
}

func (s *Service) CreateEvent(ctx context.Context, in CreateEventInput) (*domain.Event, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return nil, domain.ErrMissingField("title")
	}
	if in.Date.IsZero() {
		return nil, domain.ErrMissingField("date")
	}

	var imageURL string
	if in.Attachment != nil {
		url, err := s.files.Save(ctx, "events", in.AttachmentName, in.Attachment)
		if err != nil {
			return nil, domain.ErrUploadFailed(err)
		}
		imageURL = url
	}

	return s.events.Create(ctx, &domain.Event{
		Title:       in.Title,
		Description: strings.TrimSpace(in.Description),
		Date:        in.Date,
		Venue:       strings.TrimSpace(in.Venue),
		ImageURL:    imageURL,
	})
}

func (s *Service) DeleteEvent(ctx context.Context, id string) error {
	return s.events.Delete(ctx, id)
}

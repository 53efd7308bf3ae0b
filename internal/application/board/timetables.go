package board

import (
	"context"
	"io"
	"strings"

	"github.com/deptboard/board-service/internal/domain"
)

type CreateTimetableInput struct {
	Title    string
	Level    int
	Semester string

	Attachment     io.Reader
	AttachmentName string
}

// TimetablesForLevel lists the timetables a student at the given level sees.
func (s *Service) TimetablesForLevel(ctx context.Context, level int) ([]domain.Timetable, error) {
	if level <= 0 {
		return nil, domain.ErrInvalidField("level", "must be a positive number")
	}
	return s.timetables.ListByLevel(ctx, level)
}

func (s *Service) ListTimetables(ctx context.Context) ([]domain.Timetable, error) {
	return s.timetables.ListAll(ctx)
}

func (s *Service) CreateTimetable(ctx context.Context, in CreateTimetableInput) (*domain.Timetable, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return nil, domain.ErrMissingField("title")
	}
	if in.Level <= 0 {
		return nil, domain.ErrInvalidField("level", "must be a positive number")
	}
	if in.Semester != "first" && in.Semester != "second" {
		return nil, domain.ErrInvalidField("semester", "must be first or second")
	}

	var fileURL string
	if in.Attachment != nil {
		url, err := s.files.Save(ctx, "timetables", in.AttachmentName, in.Attachment)
		if err != nil {
			return nil, domain.ErrUploadFailed(err)
		}
		fileURL = url
	}

	return s.timetables.Create(ctx, &domain.Timetable{
		Title:    in.Title,
		Level:    in.Level,
		Semester: in.Semester,
		FileURL:  fileURL,
	})
}

func (s *Service) DeleteTimetable(ctx context.Context, id string) error {
	return s.timetables.Delete(ctx, id)
}

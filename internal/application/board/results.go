package board

import (
	"context"
	"strings"

	"github.com/deptboard/board-service/internal/domain"
)

type CreateResultInput struct {
	StudentID   string
	CourseCode  string
	CourseTitle string
	Grade       string
	Semester    string
	Session     string
	Level       int
}

// ResultsForStudent lists a student's own results, newest session first.
func (s *Service) ResultsForStudent(ctx context.Context, studentID string) ([]domain.Result, error) {
	return s.results.ListByStudent(ctx, studentID)
}

func (s *Service) CreateResult(ctx context.Context, in CreateResultInput) (*domain.Result, error) {
	in.CourseCode = strings.TrimSpace(in.CourseCode)
	in.Grade = strings.ToUpper(strings.TrimSpace(in.Grade))

	switch {
	case in.StudentID == "":
		return nil, domain.ErrMissingField("studentId")
	case in.CourseCode == "":
		return nil, domain.ErrMissingField("courseCode")
	case in.Grade == "":
		return nil, domain.ErrMissingField("grade")
	case in.Session == "":
		return nil, domain.ErrMissingField("session")
	}
	if in.Level <= 0 {
		return nil, domain.ErrInvalidField("level", "must be a positive number")
	}

	return s.results.Create(ctx, &domain.Result{
		StudentID:   in.StudentID,
		CourseCode:  in.CourseCode,
		CourseTitle: strings.TrimSpace(in.CourseTitle),
		Grade:       in.Grade,
		Semester:    in.Semester,
		Session:     in.Session,
		Level:       in.Level,
	})
}

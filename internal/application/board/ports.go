package board

import (
	"context"
	"io"

	"github.com/deptboard/board-service/internal/domain"
)

type AnnouncementRepo interface {
	List(ctx context.Context, f domain.AnnouncementFilter) ([]domain.Announcement, error)
	GetByID(ctx context.Context, id string) (*domain.Announcement, error)
	Create(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error)
	Update(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error)
	Delete(ctx context.Context, id string) error
}

type TimetableRepo interface {
	ListByLevel(ctx context.Context, level int) ([]domain.Timetable, error)
	ListAll(ctx context.Context) ([]domain.Timetable, error)
	Create(ctx context.Context, tt *domain.Timetable) (*domain.Timetable, error)
	Delete(ctx context.Context, id string) error
}

type ResultRepo interface {
	ListByStudent(ctx context.Context, studentID string) ([]domain.Result, error)
	Create(ctx context.Context, r *domain.Result) (*domain.Result, error)
}

type EventRepo interface {
	List(ctx context.Context) ([]domain.Event, error)
	Create(ctx context.Context, e *domain.Event) (*domain.Event, error)
	Delete(ctx context.Context, id string) error
}

type ArchiveRepo interface {
	ListByStudent(ctx context.Context, studentID string) ([]domain.Archive, error)
	// Create returns ErrAlreadyArchived when the pair already exists.
	Create(ctx context.Context, studentID, announcementID string) (*domain.Archive, error)
	Delete(ctx context.Context, studentID, archiveID string) error
}

// UserRepo is the slice of the user store the board needs for profiles.
type UserRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, name, email, phone string) (*domain.User, error)
	UpdateProfileImage(ctx context.Context, id string, imageURL string) (*domain.User, error)
}

// FileStore persists an uploaded file and returns a public URL path.
type FileStore interface {
	Save(ctx context.Context, dir, filename string, r io.Reader) (string, error)
}

// EventPublisher fans announcement activity out to interested consumers.
// Implementations are best effort; publish failures never fail the request.
type EventPublisher interface {
	PublishAnnouncementCreated(ctx context.Context, a *domain.Announcement) error
}

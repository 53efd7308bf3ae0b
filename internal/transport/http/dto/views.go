package dto

import (
	"time"

	"github.com/deptboard/board-service/internal/domain"
)

// UserView is the public shape of a user. The password hash never leaves
// the domain layer.
type UserView struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	MatricNumber string    `json:"matricNumber,omitempty"`
	Level        int       `json:"level,omitempty"`
	StudentType  string    `json:"studentType,omitempty"`
	Role         string    `json:"role"`
	Department   string    `json:"department"`
	Phone        string    `json:"phone,omitempty"`
	ProfileImage string    `json:"profileImage,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func NewUserView(u *domain.User) UserView {
	return UserView{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		MatricNumber: u.MatricNumber,
		Level:        u.Level,
		StudentType:  u.StudentType,
		Role:         u.Role,
		Department:   u.Department,
		Phone:        u.Phone,
		ProfileImage: u.ProfileImage,
		CreatedAt:    u.CreatedAt,
	}
}

// AuthResponse is the flat signup/login payload legacy clients expect.
type AuthResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	User    UserView `json:"user"`
	Token   string   `json:"token"`
}

type VerifyResponse struct {
	Valid bool      `json:"valid"`
	User  *UserView `json:"user,omitempty"`
	Error string    `json:"error,omitempty"`
}

type AnnouncementView struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Category   string    `json:"category"`
	IsFeatured bool      `json:"isFeatured"`
	IsUrgent   bool      `json:"isUrgent"`
	FileURL    string    `json:"fileUrl,omitempty"`
	AuthorName string    `json:"authorName,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func NewAnnouncementView(a *domain.Announcement) AnnouncementView {
	return AnnouncementView{
		ID:         a.ID,
		Title:      a.Title,
		Content:    a.Content,
		Category:   a.Category,
		IsFeatured: a.IsFeatured,
		IsUrgent:   a.IsUrgent,
		FileURL:    a.FileURL,
		AuthorName: a.AuthorName,
		CreatedAt:  a.CreatedAt,
	}
}

func NewAnnouncementViews(list []domain.Announcement) []AnnouncementView {
	out := make([]AnnouncementView, 0, len(list))
	for i := range list {
		out = append(out, NewAnnouncementView(&list[i]))
	}
	return out
}

type TimetableView struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Level     int       `json:"level"`
	Semester  string    `json:"semester"`
	FileURL   string    `json:"fileUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewTimetableViews(list []domain.Timetable) []TimetableView {
	out := make([]TimetableView, 0, len(list))
	for _, tt := range list {
		out = append(out, TimetableView{
			ID: tt.ID, Title: tt.Title, Level: tt.Level, Semester: tt.Semester,
			FileURL: tt.FileURL, CreatedAt: tt.CreatedAt,
		})
	}
	return out
}

type ResultView struct {
	ID          string    `json:"id"`
	CourseCode  string    `json:"courseCode"`
	CourseTitle string    `json:"courseTitle,omitempty"`
	Grade       string    `json:"grade"`
	Semester    string    `json:"semester,omitempty"`
	Session     string    `json:"session"`
	Level       int       `json:"level"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewResultViews(list []domain.Result) []ResultView {
	out := make([]ResultView, 0, len(list))
	for _, r := range list {
		out = append(out, ResultView{
			ID: r.ID, CourseCode: r.CourseCode, CourseTitle: r.CourseTitle,
			Grade: r.Grade, Semester: r.Semester, Session: r.Session,
			Level: r.Level, CreatedAt: r.CreatedAt,
		})
	}
	return out
}

type EventView struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	Venue       string    `json:"venue,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewEventViews(list []domain.Event) []EventView {
	out := make([]EventView, 0, len(list))
	for _, e := range list {
		out = append(out, EventView{
			ID: e.ID, Title: e.Title, Description: e.Description, Date: e.Date,
			Venue: e.Venue, ImageURL: e.ImageURL, CreatedAt: e.CreatedAt,
		})
	}
	return out
}

type ArchiveView struct {
	ID           string           `json:"id"`
	Announcement AnnouncementView `json:"announcement"`
	ArchivedAt   time.Time        `json:"archivedAt"`
}

func NewArchiveViews(list []domain.Archive) []ArchiveView {
	out := make([]ArchiveView, 0, len(list))
	for i := range list {
		out = append(out, ArchiveView{
			ID:           list[i].ID,
			Announcement: NewAnnouncementView(&list[i].Announcement),
			ArchivedAt:   list[i].ArchivedAt,
		})
	}
	return out
}

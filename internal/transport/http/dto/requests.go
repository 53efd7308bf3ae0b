package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// SignupRequest deliberately leaves matricNumber and studentType free-form;
// institutions issue both in formats of their own choosing.
type SignupRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=120"`
	Email        string `json:"email" validate:"required,email"`
	MatricNumber string `json:"matricNumber" validate:"required,max=64"`
	Level        int    `json:"level" validate:"required,gt=0"`
	Password     string `json:"password" validate:"required,min=6,max=128"`
	StudentType  string `json:"studentType" validate:"required,max=64"`
	Phone        string `json:"phone" validate:"omitempty,max=32"`
}

// LoginRequest accepts the identifier under any of three keys. Cross-field
// presence is checked in the service, not here, so the error matches the
// missing-identifier taxonomy.
type LoginRequest struct {
	Identifier   string `json:"identifier"`
	Email        string `json:"email"`
	MatricNumber string `json:"matricNumber"`
	Password     string `json:"password" validate:"required"`
}

type VerifyRequest struct {
	Token string `json:"token"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name" validate:"omitempty,min=2,max=120"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"omitempty,max=32"`
}

type CreateAnnouncementRequest struct {
	Title      string `json:"title" validate:"required,min=2,max=200"`
	Content    string `json:"content" validate:"required"`
	Category   string `json:"category" validate:"omitempty,max=64"`
	IsFeatured bool   `json:"isFeatured"`
	IsUrgent   bool   `json:"isUrgent"`
}

type UpdateAnnouncementRequest struct {
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	Category   *string `json:"category"`
	IsFeatured *bool   `json:"isFeatured"`
	IsUrgent   *bool   `json:"isUrgent"`
}

type CreateTimetableRequest struct {
	Title    string `json:"title" validate:"required,min=2,max=200"`
	Level    int    `json:"level" validate:"required,gt=0"`
	Semester string `json:"semester" validate:"required,oneof=first second"`
}

type CreateResultRequest struct {
	StudentID   string `json:"studentId" validate:"required,uuid4"`
	CourseCode  string `json:"courseCode" validate:"required,max=16"`
	CourseTitle string `json:"courseTitle" validate:"omitempty,max=200"`
	Grade       string `json:"grade" validate:"required,max=2"`
	Semester    string `json:"semester" validate:"omitempty,oneof=first second"`
	Session     string `json:"session" validate:"required,max=16"`
	Level       int    `json:"level" validate:"required,gt=0"`
}

type CreateEventRequest struct {
	Title       string    `json:"title" validate:"required,min=2,max=200"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" validate:"required"`
	Venue       string    `json:"venue" validate:"omitempty,max=200"`
}

type ArchiveRequest struct {
	AnnouncementID string `json:"announcementId" validate:"required"`
}

// NewValidator returns the request validator.
func NewValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

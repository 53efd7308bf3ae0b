package domain

import "time"

// User is a department board account. MatricNumber and Level are only
// meaningful for students; admins are provisioned without them.
type User struct {
	ID           string
	Name         string
	Email        string
	MatricNumber string
	PasswordHash string
	Role         string
	Level        int
	StudentType  string
	Department   string
	Phone        string
	ProfileImage string
	CreatedAt    time.Time
}

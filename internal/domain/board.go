package domain

import "time"

// Announcement is a department notice published by an admin.
// AuthorName is denormalized on read for list/detail views.
type Announcement struct {
	ID         string
	Title      string
	Content    string
	Category   string
	IsFeatured bool
	IsUrgent   bool
	FileURL    string
	AuthorID   string
	AuthorName string
	CreatedAt  time.Time
}

// AnnouncementFilter narrows announcement listings. Zero values mean
// "no constraint"; Featured/Urgent use pointers so false is a real filter.
type AnnouncementFilter struct {
	Search   string
	Category string
	Featured *bool
	Urgent   *bool
}

type Timetable struct {
	ID        string
	Title     string
	Level     int
	Semester  string
	FileURL   string
	CreatedAt time.Time
}

type Result struct {
	ID          string
	StudentID   string
	CourseCode  string
	CourseTitle string
	Grade       string
	Semester    string
	Session     string
	Level       int
	CreatedAt   time.Time
}

type Event struct {
	ID          string
	Title       string
	Description string
	Date        time.Time
	Venue       string
	ImageURL    string
	CreatedAt   time.Time
}

// Archive is a student's bookmark of an announcement. At most one per
// (student, announcement) pair.
type Archive struct {
	ID             string
	StudentID      string
	AnnouncementID string
	Announcement   Announcement
	ArchivedAt     time.Time
}

package domain

type Role string

const (
	// Admin manages announcements, timetables, events and results.
	RoleAdmin Role = "admin"
	// Student owns a profile and reads board content.
	RoleStudent Role = "student"
)

func IsValidRole(r string) bool {
	return r == string(RoleAdmin) || r == string(RoleStudent)
}

const (
	StudentTypeRegular = "regular"
	// Direct entry students join at 200 level.
	StudentTypeDE = "DE"
)

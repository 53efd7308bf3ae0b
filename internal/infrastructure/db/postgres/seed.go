package postgres

import (
	"context"
	"database/sql"

	"github.com/deptboard/board-service/internal/domain"
	"github.com/deptboard/board-service/internal/logger"
)

type Hasher interface {
	Hash(plain string) (string, error)
}

// Seed inserts a demo admin, two students and some board content. Safe to
// run repeatedly; existing rows are left alone.
func Seed(ctx context.Context, db *sql.DB, hasher Hasher, department string) error {
	adminHash, err := hasher.Hash("admin123")
	if err != nil {
		return err
	}
	studentHash, err := hasher.Hash("student123")
	if err != nil {
		return err
	}

	users := []struct {
		name, email, matric, hash, role, studentType string
		level                                        int
	}{
		{"Dr. Adaeze Okonkwo", "hod@department.edu", "", adminHash, string(domain.RoleAdmin), "", 0},
		{"Chinedu Eze", "chinedu@student.edu", "CSC/2021/001", studentHash, string(domain.RoleStudent), domain.StudentTypeRegular, 200},
		{"Fatima Bello", "fatima@student.edu", "CSC/2022/045", studentHash, string(domain.RoleStudent), domain.StudentTypeDE, 200},
	}

	var adminID string
	for _, u := range users {
		var id string
		err := db.QueryRowContext(ctx,
			`INSERT INTO users (name, email, matric_number, password_hash, role, level, student_type, department)
			 VALUES ($1, lower($2), NULLIF($3, ''), $4, $5, $6, $7, $8)
			 ON CONFLICT (email) DO NOTHING
			 RETURNING id`,
			u.name, u.email, u.matric, u.hash, u.role, u.level, u.studentType, department,
		).Scan(&id)
		if err == sql.ErrNoRows {
			// already seeded; fetch the existing id for FK use below
			if err := db.QueryRowContext(ctx, `SELECT id FROM users WHERE email = lower($1)`, u.email).Scan(&id); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
		if u.role == string(domain.RoleAdmin) {
			adminID = id
		}
	}

	var count int
	if err := db.QueryRowContext(ctx, `SELECT count(*) FROM announcements`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		logger.Logger.Info().Msg("seed: board content already present, skipping")
		return nil
	}

	announcements := []struct {
		title, content, category string
		featured, urgent         bool
	}{
		{"Welcome to the new session", "Lectures begin Monday. Check your level timetable for venues.", "general", true, false},
		{"First semester exams", "Exams start in week 12. The timetable is on the board.", "academics", false, true},
		{"Departmental football trials", "Trials hold Friday 4pm at the sports complex.", "sports", false, false},
	}
	for _, a := range announcements {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO announcements (title, content, category, is_featured, is_urgent, author_id)
			 VALUES ($1, $2, $3, $4, $5, NULLIF($6, '')::uuid)`,
			a.title, a.content, a.category, a.featured, a.urgent, adminID,
		); err != nil {
			return err
		}
	}

	timetables := []struct {
		title    string
		level    int
		semester string
	}{
		{"100 Level First Semester", 100, "first"},
		{"200 Level First Semester", 200, "first"},
		{"300 Level First Semester", 300, "first"},
	}
	for _, tt := range timetables {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO timetables (title, level, semester) VALUES ($1, $2, $3)`,
			tt.title, tt.level, tt.semester,
		); err != nil {
			return err
		}
	}

	logger.Logger.Info().Msg("seed: demo users and board content created")
	return nil
}

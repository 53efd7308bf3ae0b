package postgres

import (
	"context"
	"database/sql"
)

// EnsureSchema creates the board tables if missing. Statements are
// idempotent so repeated startups are safe.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id             UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name           TEXT NOT NULL,
			email          TEXT NOT NULL,
			matric_number  TEXT,
			password_hash  TEXT NOT NULL,
			role           TEXT NOT NULL DEFAULT 'student',
			level          INT  NOT NULL DEFAULT 0,
			student_type   TEXT NOT NULL DEFAULT '',
			department     TEXT NOT NULL DEFAULT '',
			phone          TEXT NOT NULL DEFAULT '',
			profile_image  TEXT NOT NULL DEFAULT '',
			created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		// email is stored lowercase; the unique index is the last line of
		// defense against concurrent duplicate signups
		`CREATE UNIQUE INDEX IF NOT EXISTS users_email_key ON users (email)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS users_matric_key ON users (matric_number) WHERE matric_number IS NOT NULL AND matric_number <> ''`,

		`CREATE TABLE IF NOT EXISTS announcements (
			id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			title       TEXT NOT NULL,
			content     TEXT NOT NULL,
			category    TEXT NOT NULL DEFAULT 'general',
			is_featured BOOLEAN NOT NULL DEFAULT FALSE,
			is_urgent   BOOLEAN NOT NULL DEFAULT FALSE,
			file_url    TEXT NOT NULL DEFAULT '',
			author_id   UUID REFERENCES users(id) ON DELETE SET NULL,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS announcements_category_idx ON announcements (category)`,
		`CREATE INDEX IF NOT EXISTS announcements_created_idx ON announcements (created_at DESC)`,

		`CREATE TABLE IF NOT EXISTS timetables (
			id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			title      TEXT NOT NULL,
			level      INT  NOT NULL,
			semester   TEXT NOT NULL,
			file_url   TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS timetables_level_idx ON timetables (level)`,

		`CREATE TABLE IF NOT EXISTS results (
			id           UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id   UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			course_code  TEXT NOT NULL,
			course_title TEXT NOT NULL DEFAULT '',
			grade        TEXT NOT NULL,
			semester     TEXT NOT NULL DEFAULT '',
			session      TEXT NOT NULL,
			level        INT  NOT NULL,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS results_student_idx ON results (student_id)`,

		`CREATE TABLE IF NOT EXISTS events (
			id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			title       TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			date        TIMESTAMPTZ NOT NULL,
			venue       TEXT NOT NULL DEFAULT '',
			image_url   TEXT NOT NULL DEFAULT '',
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,

		`CREATE TABLE IF NOT EXISTS archives (
			id              UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id      UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			announcement_id UUID NOT NULL REFERENCES announcements(id) ON DELETE CASCADE,
			archived_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (student_id, announcement_id)
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

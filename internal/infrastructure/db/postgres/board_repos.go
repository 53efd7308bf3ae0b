package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/deptboard/board-service/internal/domain"
)

type TimetableRepo struct {
	db *sql.DB
}

func NewTimetableRepo(db *sql.DB) *TimetableRepo {
	return &TimetableRepo{db: db}
}

const timetableColumns = `id, title, level, semester, file_url, created_at`

func (r *TimetableRepo) listWhere(ctx context.Context, where string, args ...any) ([]domain.Timetable, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+timetableColumns+` FROM timetables `+where+` ORDER BY created_at DESC`, args...)
	if err != nil {
		return nil, domain.ErrStoreUnavailable(err)
	}
	defer rows.Close()

	var out []domain.Timetable
	for rows.Next() {
		var tt domain.Timetable
		if err := rows.Scan(&tt.ID, &tt.Title, &tt.Level, &tt.Semester, &tt.FileURL, &tt.CreatedAt); err != nil {
			return nil, domain.ErrStoreUnavailable(err)
		}
		out = append(out, tt)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrStoreUnavailable(err)
	}
	return out, nil
}

func (r *TimetableRepo) ListByLevel(ctx context.Context, level int) ([]domain.Timetable, error) {
	return r.listWhere(ctx, `WHERE level = $1`, level)
}

func (r *TimetableRepo) ListAll(ctx context.Context) ([]domain.Timetable, error) {
	return r.listWhere(ctx, ``)
}

func (r *TimetableRepo) Create(ctx context.Context, tt *domain.Timetable) (*domain.Timetable, error) {
	created := *tt
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO timetables (title, level, semester, file_url)
		 VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		tt.Title, tt.Level, tt.Semester, tt.FileURL,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, domain.ErrStoreUnavailable(err)
	}
	return &created, nil
}

func (r *TimetableRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM timetables WHERE id = $1`, id)
	if err != nil {
		return domain.ErrStoreUnavailable(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound("timetable")
	}
	return nil
}

type ResultRepo struct {
	db *sql.DB
}

func NewResultRepo(db *sql.DB) *ResultRepo {
	return &ResultRepo{db: db}
}

func (r *ResultRepo) ListByStudent(ctx context.Context, studentID string) ([]domain.Result, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, student_id, course_code, course_title, grade, semester, session, level, created_at
		 FROM results WHERE student_id = $1
		 ORDER BY session DESC, semester, course_code`, studentID)
	if err != nil {
		return nil, domain.ErrStoreUnavailable(err)
	}
	defer rows.Close()

	var out []domain.Result
	for rows.Next() {
		var res domain.Result
		if err := rows.Scan(&res.ID, &res.StudentID, &res.CourseCode, &res.CourseTitle,
			&res.Grade, &res.Semester, &res.Session, &res.Level, &res.CreatedAt); err != nil {
			return nil, domain.ErrStoreUnavailable(err)
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrStoreUnavailable(err)
	}
	return out, nil
}

func (r *ResultRepo) Create(ctx context.Context, res *domain.Result) (*domain.Result, error) {
	created := *res
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO results (student_id, course_code, course_title, grade, semester, session, level)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`,
		res.StudentID, res.CourseCode, res.CourseTitle, res.Grade, res.Semester, res.Session, res.Level,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, domain.ErrStoreUnavailable(err)
	}
	return &created, nil
}

type EventRepo struct {
	db *sql.DB
}

func NewEventRepo(db *sql.DB) *EventRepo {
	return &EventRepo{db: db}
}

func (r *EventRepo) List(ctx context.Context) ([]domain.Event, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, description, date, venue, image_url, created_at
		 FROM events ORDER BY date ASC`)
	if err != nil {
		return nil, domain.ErrStoreUnavailable(err)
	}
	defer rows.Close()

	var out []domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.Venue, &e.ImageURL, &e.CreatedAt); err != nil {
			return nil, domain.ErrStoreUnavailable(err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrStoreUnavailable(err)
	}
	return out, nil
}

func (r *EventRepo) Create(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	created := *e
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO events (title, description, date, venue, image_url)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`,
		e.Title, e.Description, e.Date, e.Venue, e.ImageURL,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, domain.ErrStoreUnavailable(err)
	}
	return &created, nil
}

func (r *EventRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return domain.ErrStoreUnavailable(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound("event")
	}
	return nil
}

type ArchiveRepo struct {
	db *sql.DB
}

func NewArchiveRepo(db *sql.DB) *ArchiveRepo {
	return &ArchiveRepo{db: db}
}

func (r *ArchiveRepo) ListByStudent(ctx context.Context, studentID string) ([]domain.Archive, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT ar.id, ar.student_id, ar.announcement_id, ar.archived_at, `+announcementColumns+`
		 FROM archives ar
		 JOIN announcements a ON a.id = ar.announcement_id
		 LEFT JOIN users u ON u.id = a.author_id
		 WHERE ar.student_id = $1
		 ORDER BY ar.archived_at DESC`, studentID)
	if err != nil {
		return nil, domain.ErrStoreUnavailable(err)
	}
	defer rows.Close()

	var out []domain.Archive
	for rows.Next() {
		var ar domain.Archive
		if err := rows.Scan(
			&ar.ID, &ar.StudentID, &ar.AnnouncementID, &ar.ArchivedAt,
			&ar.Announcement.ID, &ar.Announcement.Title, &ar.Announcement.Content,
			&ar.Announcement.Category, &ar.Announcement.IsFeatured, &ar.Announcement.IsUrgent,
			&ar.Announcement.FileURL, &ar.Announcement.AuthorID, &ar.Announcement.AuthorName,
			&ar.Announcement.CreatedAt,
		); err != nil {
			return nil, domain.ErrStoreUnavailable(err)
		}
		out = append(out, ar)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrStoreUnavailable(err)
	}
	return out, nil
}

func (r *ArchiveRepo) Create(ctx context.Context, studentID, announcementID string) (*domain.Archive, error) {
	var ar domain.Archive
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO archives (student_id, announcement_id)
		 VALUES ($1, $2) RETURNING id, student_id, announcement_id, archived_at`,
		studentID, announcementID,
	).Scan(&ar.ID, &ar.StudentID, &ar.AnnouncementID, &ar.ArchivedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrAlreadyArchived()
		}
		return nil, domain.ErrStoreUnavailable(err)
	}
	return &ar, nil
}

func (r *ArchiveRepo) Delete(ctx context.Context, studentID, archiveID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM archives WHERE id = $1 AND student_id = $2`, archiveID, studentID)
	if err != nil {
		return domain.ErrStoreUnavailable(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound("archive")
	}
	return nil
}

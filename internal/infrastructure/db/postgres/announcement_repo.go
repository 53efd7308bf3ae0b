package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/deptboard/board-service/internal/domain"
)

type AnnouncementRepo struct {
	db *sql.DB
}

func NewAnnouncementRepo(db *sql.DB) *AnnouncementRepo {
	return &AnnouncementRepo{db: db}
}

const announcementColumns = `a.id, a.title, a.content, a.category, a.is_featured, a.is_urgent, a.file_url,
	COALESCE(a.author_id::text, ''), COALESCE(u.name, ''), a.created_at`

func scanAnnouncement(row interface{ Scan(...any) error }) (*domain.Announcement, error) {
	var a domain.Announcement
	err := row.Scan(
		&a.ID, &a.Title, &a.Content, &a.Category, &a.IsFeatured, &a.IsUrgent,
		&a.FileURL, &a.AuthorID, &a.AuthorName, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// List returns announcements newest first. Filters are ANDed; search matches
// title or content case-insensitively.
func (r *AnnouncementRepo) List(ctx context.Context, f domain.AnnouncementFilter) ([]domain.Announcement, error) {
	query := `SELECT ` + announcementColumns + `
		FROM announcements a
		LEFT JOIN users u ON u.id = a.author_id
		WHERE 1=1`
	var args []any

	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		query += fmt.Sprintf(" AND (a.title ILIKE $%d OR a.content ILIKE $%d)", n, n)
	}
	if f.Category != "" {
		args = append(args, f.Category)
		query += fmt.Sprintf(" AND a.category = $%d", len(args))
	}
	if f.Featured != nil {
		args = append(args, *f.Featured)
		query += fmt.Sprintf(" AND a.is_featured = $%d", len(args))
	}
	if f.Urgent != nil {
		args = append(args, *f.Urgent)
		query += fmt.Sprintf(" AND a.is_urgent = $%d", len(args))
	}
	query += " ORDER BY a.created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, domain.ErrStoreUnavailable(err)
	}
	defer rows.Close()

	var out []domain.Announcement
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, domain.ErrStoreUnavailable(err)
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrStoreUnavailable(err)
	}
	return out, nil
}

func (r *AnnouncementRepo) GetByID(ctx context.Context, id string) (*domain.Announcement, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+announcementColumns+`
		 FROM announcements a
		 LEFT JOIN users u ON u.id = a.author_id
		 WHERE a.id = $1`, id,
	)
	a, err := scanAnnouncement(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.ErrStoreUnavailable(err)
	}
	return a, nil
}

func (r *AnnouncementRepo) Create(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error) {
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO announcements (title, content, category, is_featured, is_urgent, file_url, author_id)
		 VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, '')::uuid)
		 RETURNING id, created_at`,
		a.Title, a.Content, a.Category, a.IsFeatured, a.IsUrgent, a.FileURL, a.AuthorID,
	)
	created := *a
	if err := row.Scan(&created.ID, &created.CreatedAt); err != nil {
		return nil, domain.ErrStoreUnavailable(err)
	}
	// re-read for the denormalized author name
	return r.GetByID(ctx, created.ID)
}

func (r *AnnouncementRepo) Update(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE announcements SET title = $2, content = $3, category = $4, is_featured = $5, is_urgent = $6
		 WHERE id = $1`,
		a.ID, a.Title, a.Content, a.Category, a.IsFeatured, a.IsUrgent,
	)
	if err != nil {
		return nil, domain.ErrStoreUnavailable(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, domain.ErrNotFound("announcement")
	}
	return r.GetByID(ctx, a.ID)
}

func (r *AnnouncementRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return domain.ErrStoreUnavailable(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound("announcement")
	}
	return nil
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/deptboard/board-service/internal/domain"
)

const uniqueViolation = "23505"

// UserRepo is the Postgres implementation of the user store.
type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `id, name, email, COALESCE(matric_number, ''), password_hash, role, level, student_type, department, phone, profile_image, created_at`

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.MatricNumber, &u.PasswordHash,
		&u.Role, &u.Level, &u.StudentType, &u.Department, &u.Phone,
		&u.ProfileImage, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmailOrMatric looks up a user by either column in one round trip.
// Email is compared against its stored lowercase form; matric numbers are
// exact.
func (r *UserRepo) GetByEmailOrMatric(ctx context.Context, email, matricNumber string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	matricNumber = strings.TrimSpace(matricNumber)

	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1 OR matric_number = $2 LIMIT 1`,
		email, matricNumber,
	)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.ErrStoreUnavailable(err)
	}
	return u, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id,
	)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.ErrStoreUnavailable(err)
	}
	return u, nil
}

func (r *UserRepo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO users (name, email, matric_number, password_hash, role, level, student_type, department, phone)
		 VALUES ($1, lower($2), NULLIF($3, ''), $4, $5, $6, $7, $8, $9)
		 RETURNING `+userColumns,
		u.Name, u.Email, u.MatricNumber, u.PasswordHash, u.Role, u.Level, u.StudentType, u.Department, u.Phone,
	)
	created, err := scanUser(row)
	if err != nil {
		// Unique indexes settle signup races the pre-check missed.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrDuplicateUser()
		}
		return nil, domain.ErrStoreUnavailable(err)
	}
	return created, nil
}

func (r *UserRepo) UpdateProfile(ctx context.Context, id string, name, email, phone string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`UPDATE users SET
			name  = COALESCE(NULLIF($2, ''), name),
			email = COALESCE(NULLIF(lower($3), ''), email),
			phone = COALESCE(NULLIF($4, ''), phone)
		 WHERE id = $1
		 RETURNING `+userColumns,
		id, name, email, phone,
	)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound()
	}
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrDuplicateUser()
		}
		return nil, domain.ErrStoreUnavailable(err)
	}
	return u, nil
}

func (r *UserRepo) UpdateProfileImage(ctx context.Context, id string, imageURL string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`UPDATE users SET profile_image = $2 WHERE id = $1 RETURNING `+userColumns,
		id, imageURL,
	)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound()
	}
	if err != nil {
		return nil, domain.ErrStoreUnavailable(err)
	}
	return u, nil
}

package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/finsight/server/internal/model"
)

// UserRepo defines the interface for user repository operations
type UserRepo interface {
	Create(ctx context.Context, name, email, passwordHash, location, phone string) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

type userRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new UserRepo instance
func NewUserRepo(db *sql.DB) UserRepo {
	return &userRepo{db: db}
}

// pqUniqueViolation is the Postgres error code for unique constraint violations.
const pqUniqueViolation = "23505"

// Create inserts a new user row. The unique index on email surfaces as
// ErrDuplicateEmail; the caller is expected to have lowercased the email.
func (r *userRepo) Create(ctx context.Context, name, email, passwordHash, location, phone string) (model.User, error) {
	query := `
		INSERT INTO users (name, email, password_hash, location, phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, email, password_hash, location, phone, role, created_at
	`
	user, err := scanUser(r.db.QueryRowContext(ctx, query, name, email, passwordHash, location, phone))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return model.User{}, ErrDuplicateEmail
		}
		return model.User{}, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

// GetByEmail retrieves a user by lowercased email
func (r *userRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	query := `
		SELECT id, name, email, password_hash, location, phone, role, created_at
		FROM users
		WHERE email = $1
	`
	user, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, ErrNotFound
		}
		return model.User{}, fmt.Errorf("query user by email: %w", err)
	}
	return user, nil
}

// GetByID retrieves a user by ID
func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `
		SELECT id, name, email, password_hash, location, phone, role, created_at
		FROM users
		WHERE id = $1
	`
	user, err := scanUser(r.db.QueryRowContext(ctx, query, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, ErrNotFound
		}
		return model.User{}, fmt.Errorf("query user by id: %w", err)
	}
	return user, nil
}

// UpdatePassword replaces the stored password hash for the user.
func (r *userRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE users SET password_hash = $1 WHERE id = $2
	`, passwordHash, id.String())
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanUser(row *sql.Row) (model.User, error) {
	var user model.User
	var idStr string
	err := row.Scan(
		&idStr,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Location,
		&user.Phone,
		&user.Role,
		&user.CreatedAt,
	)
	if err != nil {
		return model.User{}, err
	}
	user.ID, err = uuid.Parse(idStr)
	if err != nil {
		return model.User{}, fmt.Errorf("parse user ID: %w", err)
	}
	return user, nil
}

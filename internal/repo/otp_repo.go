package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finsight/server/internal/model"
)

// OtpRepo defines the interface for OTP record repository operations
type OtpRepo interface {
	Insert(ctx context.Context, email, code, expiresAt string) (uuid.UUID, error)
	LatestUnused(ctx context.Context, email string) (model.OtpRecord, error)
	MarkUsed(ctx context.Context, id uuid.UUID) error
}

type otpRepo struct {
	db *sql.DB
}

// NewOtpRepo creates a new OtpRepo instance
func NewOtpRepo(db *sql.DB) OtpRepo {
	return &otpRepo{db: db}
}

// Insert appends a new unused OTP record. Prior outstanding records for the
// same email are left untouched; issuance never deduplicates.
func (r *otpRepo) Insert(ctx context.Context, email, code, expiresAt string) (uuid.UUID, error) {
	var idStr string
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO otps (email, otp, expires_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, email, code, expiresAt).Scan(&idStr)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert otp: %w", err)
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse otp ID: %w", err)
	}
	return id, nil
}

// LatestUnused returns the most recently created unused record for the email.
// Older unused records are intentionally not considered: repeated issuance
// supersedes them (newest-wins) without ever marking them used.
func (r *otpRepo) LatestUnused(ctx context.Context, email string) (model.OtpRecord, error) {
	query := `
		SELECT id, email, otp, expires_at, used, created_at
		FROM otps
		WHERE email = $1 AND used = false
		ORDER BY created_at DESC
		LIMIT 1
	`
	var rec model.OtpRecord
	var idStr string
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&idStr,
		&rec.Email,
		&rec.Code,
		&rec.ExpiresAt,
		&rec.Used,
		&rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.OtpRecord{}, ErrNotFound
		}
		return model.OtpRecord{}, fmt.Errorf("query otp: %w", err)
	}
	rec.ID, err = uuid.Parse(idStr)
	if err != nil {
		return model.OtpRecord{}, fmt.Errorf("parse otp ID: %w", err)
	}
	return rec, nil
}

// MarkUsed sets used = true for the record. Used records are permanently inert.
func (r *otpRepo) MarkUsed(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE otps SET used = true WHERE id = $1
	`, id.String())
	if err != nil {
		return fmt.Errorf("mark used: %w", err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

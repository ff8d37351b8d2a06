package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pharmahub/backend/internal/domain"
)

type emailVerificationRepository struct {
	db *sqlx.DB
}

func newEmailVerificationRepository(db *sqlx.DB) *emailVerificationRepository {
	return &emailVerificationRepository{
		db: db,
	}
}

func (r *emailVerificationRepository) Create(ctx context.Context, verification *domain.EmailVerification) error {
	const op = "repository.emailVerification.Create"

	const query = `
    INSERT INTO email_verification (id, user_id, email, code, expires_at)
    VALUES (uuid_to_bin(:id), uuid_to_bin(:user_id), :email, :code, :expires_at)
    `

	res, err := r.db.NamedExecContext(ctx, query, verification)
	if err != nil {
		return fmt.Errorf("%s: insert email verification failed: %w", op, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: get rows affected failed: %w", op, err)
	}

	if rows != 1 {
		return fmt.Errorf("%s: expected 1 row affected, got %d", op, rows)
	}

	return nil
}

// GetLatestByEmail returns the most recently issued code for email.
func (r *emailVerificationRepository) GetLatestByEmail(ctx context.Context, email string) (*domain.EmailVerification, error) {
	const op = "repository.emailVerification.GetLatestByEmail"

	const query = `
    SELECT id, user_id, email, code, attempts, confirmed, confirmed_at, expires_at, created_at, updated_at
    FROM email_verification
    WHERE email = ?
    ORDER BY created_at DESC
    LIMIT 1
    `

	var verification domain.EmailVerification
	if err := r.db.GetContext(ctx, &verification, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%s: select email verification failed: %w", op, err)
	}

	return &verification, nil
}

func (r *emailVerificationRepository) IncrementAttempts(ctx context.Context, id uuid.UUID) error {
	const op = "repository.emailVerification.IncrementAttempts"

	const query = `
    UPDATE email_verification
    SET attempts = attempts + 1
    WHERE id = uuid_to_bin(?)
    `

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("%s: update email_verification failed: %w", op, err)
	}
	return nil
}

func (r *emailVerificationRepository) Confirm(ctx context.Context, id uuid.UUID, at time.Time) error {
	const op = "repository.emailVerification.Confirm"

	const query = `
    UPDATE email_verification
    SET confirmed = TRUE, confirmed_at = ?
    WHERE id = uuid_to_bin(?) AND confirmed = FALSE
    `

	res, err := r.db.ExecContext(ctx, query, at, id)
	if err != nil {
		return fmt.Errorf("%s: update email_verification failed: %w", op, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: get rows affected failed: %w", op, err)
	}

	if rows != 1 {
		return domain.ErrNoRowsAffected
	}

	return nil
}

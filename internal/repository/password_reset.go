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

type passwordResetRepository struct {
	db *sqlx.DB
}

func newPasswordResetRepository(db *sqlx.DB) *passwordResetRepository {
	return &passwordResetRepository{
		db: db,
	}
}

func (r *passwordResetRepository) Create(ctx context.Context, reset *domain.PasswordReset) error {
	const op = "repository.passwordReset.Create"

	const query = `
    INSERT INTO password_reset (id, user_id, token_hash, expires_at)
    VALUES (uuid_to_bin(:id), uuid_to_bin(:user_id), :token_hash, :expires_at)
    `

	if _, err := r.db.NamedExecContext(ctx, query, reset); err != nil {
		return fmt.Errorf("%s: insert password reset failed: %w", op, err)
	}
	return nil
}

func (r *passwordResetRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*domain.PasswordReset, error) {
	const op = "repository.passwordReset.GetByTokenHash"

	const query = `
    SELECT id, user_id, token_hash, expires_at, used_at, created_at
    FROM password_reset
    WHERE token_hash = ?
    `

	var reset domain.PasswordReset
	if err := r.db.GetContext(ctx, &reset, query, tokenHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%s: select password reset failed: %w", op, err)
	}
	return &reset, nil
}

// MarkUsed consumes the token. A token that was already used yields
// domain.ErrNoRowsAffected.
func (r *passwordResetRepository) MarkUsed(ctx context.Context, id uuid.UUID, at time.Time) error {
	const op = "repository.passwordReset.MarkUsed"

	const query = `
    UPDATE password_reset SET used_at = ? WHERE id = uuid_to_bin(?) AND used_at IS NULL
    `

	res, err := r.db.ExecContext(ctx, query, at, id)
	if err != nil {
		return fmt.Errorf("%s: update password reset failed: %w", op, err)
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

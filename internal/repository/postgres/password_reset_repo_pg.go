package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/artistdesk/artistdesk-api/internal/domain"
)

type PasswordResetRepository struct {
	db *sqlx.DB
}

func NewPasswordResetRepo(db *sqlx.DB) *PasswordResetRepository {
	return &PasswordResetRepository{db: db}
}

func (r *PasswordResetRepository) Create(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) (*domain.PasswordResetToken, error) {
	const query = `
        INSERT INTO password_reset_tokens (user_id, token_hash, expires_at)
        VALUES ($1, $2, $3)
        RETURNING id, user_id, token_hash, expires_at, created_at
    `
	row := r.db.QueryRowxContext(ctx, query, userID, tokenHash, expiresAt)
	var token domain.PasswordResetToken
	if err := row.StructScan(&token); err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *PasswordResetRepository) ListUnexpired(ctx context.Context, now time.Time) ([]domain.PasswordResetToken, error) {
	const query = `
        SELECT id, user_id, token_hash, expires_at, created_at
        FROM password_reset_tokens
        WHERE expires_at > $1
        ORDER BY created_at
    `
	var tokens []domain.PasswordResetToken
	if err := r.db.SelectContext(ctx, &tokens, query, now); err != nil {
		return nil, err
	}
	return tokens, nil
}

func (r *PasswordResetRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM password_reset_tokens WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

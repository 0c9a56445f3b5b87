package domain

import (
	"time"
)

// PasswordResetToken stores only the bcrypt fingerprint of the opaque
// reset secret. The plaintext is emailed to the account holder and never
// persisted.
type PasswordResetToken struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	TokenHash string    `db:"token_hash" json:"-"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

func (t *PasswordResetToken) Expired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}

package ports

import (
	"context"
	"time"

	"github.com/artistdesk/artistdesk-api/internal/domain"
)

type PasswordResetRepository interface {
	Create(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) (*domain.PasswordResetToken, error)
	// ListUnexpired returns every token whose expiry is still in the
	// future. The set stays small because rows are deleted on consumption
	// and on detected expiry.
	ListUnexpired(ctx context.Context, now time.Time) ([]domain.PasswordResetToken, error)
	Delete(ctx context.Context, id int64) error
}

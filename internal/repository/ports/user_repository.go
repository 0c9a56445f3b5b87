package ports

import (
	"context"
	"time"

	"github.com/artistdesk/artistdesk-api/internal/domain"
)

type UserCreate struct {
	Username     string
	PasswordHash string
	TypeOfEntity string
	Name         string
	Surname      string
	EmailAddress string
	PhoneNumber  string
	VatID        *string
	BankAccount  *string
}

type UserUpdate struct {
	Username     *string
	TypeOfEntity *string
	Name         *string
	Surname      *string
	EmailAddress *string
	PhoneNumber  *string
	VatID        *string
	BankAccount  *string
}

type UserRepository interface {
	Create(ctx context.Context, input UserCreate) (int64, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, id int64, input UserUpdate) (*domain.User, error)
	// UpdatePassword reports whether a row was actually updated so callers
	// can detect an account that vanished mid-flight.
	UpdatePassword(ctx context.Context, id int64, passwordHash string) (bool, error)
	Deactivate(ctx context.Context, id int64, at time.Time) (*domain.User, error)
}

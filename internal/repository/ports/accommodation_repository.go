package ports

import (
	"context"
	"time"

	"github.com/artistdesk/artistdesk-api/internal/domain"
)

type AccommodationCreate struct {
	Name            string
	ContactPerson   *string
	Address         string
	TelephoneNumber string
	Email           *string
	Website         *string
	URL             *string
	CheckIn         time.Time
	CheckOut        time.Time
}

type AccommodationUpdate struct {
	Name            *string
	ContactPerson   *string
	Address         *string
	TelephoneNumber *string
	Email           *string
	Website         *string
	URL             *string
	CheckIn         *time.Time
	CheckOut        *time.Time
}

type AccommodationRepository interface {
	Create(ctx context.Context, userID int64, input AccommodationCreate) (int64, error)
	FindByID(ctx context.Context, id int64) (*domain.Accommodation, error)
	Update(ctx context.Context, id int64, input AccommodationUpdate) (*domain.Accommodation, error)
	Delete(ctx context.Context, id int64) error
}

package ports

import (
	"context"
	"time"

	"github.com/artistdesk/artistdesk-api/internal/domain"
)

type EventCreate struct {
	Name                string
	ContractID          int64
	ProfileOfferorID    int64
	ProfileOffereeID    int64
	ContactPerson       *string
	ContactPhone        *string
	Date                time.Time
	DurationMinutes     int64
	Start               string
	End                 *string
	Arrive              time.Time
	StageSet            string
	StageCheck          string
	CateringOpen        *string
	CateringClose       *string
	MealTime            *string
	MealLocationName    *string
	MealLocationAddress *string
	AccommodationID     *int64
}

type EventUpdate struct {
	Name                *string
	ContactPerson       *string
	ContactPhone        *string
	Date                *time.Time
	DurationMinutes     *int64
	Start               *string
	End                 *string
	Arrive              *time.Time
	StageSet            *string
	StageCheck          *string
	CateringOpen        *string
	CateringClose       *string
	MealTime            *string
	MealLocationName    *string
	MealLocationAddress *string
	AccommodationID     *int64
}

type EventRepository interface {
	Create(ctx context.Context, input EventCreate) (int64, error)
	FindByID(ctx context.Context, id int64) (*domain.Event, error)
	Update(ctx context.Context, id int64, input EventUpdate) (*domain.Event, error)
	Delete(ctx context.Context, id int64) error
}

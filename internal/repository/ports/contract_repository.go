package ports

import (
	"context"
	"time"

	"github.com/artistdesk/artistdesk-api/internal/domain"
)

type ContractCreate struct {
	Name                  string
	OffereeID             int64
	CurrencyCode          string
	UponSigning           int
	UponCompletion        int
	PaymentMethod         string
	PerformanceFee        float64
	TravelExpenses        float64
	AccommodationExpenses float64
	OtherExpenses         float64
	TotalFee              float64
	SignedAt              *time.Time
}

type ContractUpdate struct {
	Name                  *string
	CurrencyCode          *string
	UponSigning           *int
	UponCompletion        *int
	PaymentMethod         *string
	PerformanceFee        *float64
	TravelExpenses        *float64
	AccommodationExpenses *float64
	OtherExpenses         *float64
	TotalFee              *float64
	SignedAt              *time.Time
}

type ContractRepository interface {
	Create(ctx context.Context, offerorID int64, input ContractCreate) (int64, error)
	FindByID(ctx context.Context, id int64) (*domain.Contract, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.ContractRef, error)
	Update(ctx context.Context, id int64, input ContractUpdate) (*domain.Contract, error)
	Disable(ctx context.Context, id int64, at time.Time) error
	ListEvents(ctx context.Context, contractID int64) ([]domain.EventRef, error)
}

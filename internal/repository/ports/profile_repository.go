package ports

import (
	"context"

	"github.com/artistdesk/artistdesk-api/internal/domain"
)

type ProfileCreate struct {
	Name            string
	PerformanceType string
	Description     *string
	Bio             *string
	Website         *string
	SocialMedia     []string
	StagePlan       *string
	TechRider       *string
	Photos          []string
	Videos          []string
	Audios          []string
	OnlinePress     domain.PressLinks
}

type ProfileUpdate struct {
	Name            *string
	PerformanceType *string
	Description     *string
	Bio             *string
	Website         *string
	SocialMedia     []string
	StagePlan       *string
	TechRider       *string
	Photos          []string
	Videos          []string
	Audios          []string
	OnlinePress     domain.PressLinks
}

type ProfileRepository interface {
	Create(ctx context.Context, userID int64, input ProfileCreate) (int64, error)
	FindByID(ctx context.Context, id int64) (*domain.Profile, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Profile, error)
	Update(ctx context.Context, id int64, input ProfileUpdate) (*domain.Profile, error)
	Delete(ctx context.Context, id int64) error
}

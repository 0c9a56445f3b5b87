package service

import (
	"context"

	"github.com/artistdesk/artistdesk-api/internal/domain"
	"github.com/artistdesk/artistdesk-api/internal/repository/ports"
)

type AccommodationService struct {
	accommodations ports.AccommodationRepository
}

func NewAccommodationService(accommodations ports.AccommodationRepository) *AccommodationService {
	return &AccommodationService{accommodations: accommodations}
}

func (s *AccommodationService) Create(ctx context.Context, userID int64, input ports.AccommodationCreate) (int64, error) {
	return s.accommodations.Create(ctx, userID, input)
}

func (s *AccommodationService) Get(ctx context.Context, id, userID int64) (*domain.Accommodation, error) {
	return s.findGuarded(ctx, id, userID)
}

func (s *AccommodationService) Update(ctx context.Context, id, userID int64, input ports.AccommodationUpdate) (*domain.Accommodation, error) {
	if _, err := s.findGuarded(ctx, id, userID); err != nil {
		return nil, err
	}
	updated, err := s.accommodations.Update(ctx, id, input)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrAccommodationNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *AccommodationService) Delete(ctx context.Context, id, userID int64) error {
	if _, err := s.findGuarded(ctx, id, userID); err != nil {
		return err
	}
	return s.accommodations.Delete(ctx, id)
}

func (s *AccommodationService) findGuarded(ctx context.Context, id, userID int64) (*domain.Accommodation, error) {
	accommodation, err := s.accommodations.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrAccommodationNotFound
		}
		return nil, err
	}
	if err := assertOwner(accommodation, userID); err != nil {
		return nil, err
	}
	return accommodation, nil
}

package service

import (
	"context"

	"github.com/artistdesk/artistdesk-api/internal/domain"
	"github.com/artistdesk/artistdesk-api/internal/repository/ports"
)

type ProfileService struct {
	profiles ports.ProfileRepository
}

func NewProfileService(profiles ports.ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

func (s *ProfileService) Create(ctx context.Context, userID int64, input ports.ProfileCreate) (int64, error) {
	return s.profiles.Create(ctx, userID, input)
}

func (s *ProfileService) Get(ctx context.Context, id, userID int64) (*domain.Profile, error) {
	return s.findGuarded(ctx, id, userID)
}

func (s *ProfileService) Update(ctx context.Context, id, userID int64, input ports.ProfileUpdate) (*domain.Profile, error) {
	if _, err := s.findGuarded(ctx, id, userID); err != nil {
		return nil, err
	}
	updated, err := s.profiles.Update(ctx, id, input)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *ProfileService) Delete(ctx context.Context, id, userID int64) error {
	if _, err := s.findGuarded(ctx, id, userID); err != nil {
		return err
	}
	return s.profiles.Delete(ctx, id)
}

// findGuarded resolves a profile and checks the caller owns it. The
// existence check runs first so a missing profile never reports a
// permission error.
func (s *ProfileService) findGuarded(ctx context.Context, id, userID int64) (*domain.Profile, error) {
	profile, err := s.profiles.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	if err := assertOwner(profile, userID); err != nil {
		return nil, err
	}
	return profile, nil
}

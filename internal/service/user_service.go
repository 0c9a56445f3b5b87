package service

import (
	"context"
	"time"

	"github.com/artistdesk/artistdesk-api/internal/domain"
	"github.com/artistdesk/artistdesk-api/internal/repository/ports"
)

type UserService struct {
	users     ports.UserRepository
	profiles  ports.ProfileRepository
	contracts ports.ContractRepository
}

func NewUserService(users ports.UserRepository, profiles ports.ProfileRepository, contracts ports.ContractRepository) *UserService {
	return &UserService{
		users:     users,
		profiles:  profiles,
		contracts: contracts,
	}
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, userID int64, input ports.UserUpdate) (*domain.User, error) {
	user, err := s.users.Update(ctx, userID, input)
	if err != nil {
		switch {
		case isNotFound(err):
			return nil, ErrUserNotFound
		case isUniqueViolation(err):
			return nil, ErrDuplicateUser
		default:
			return nil, err
		}
	}
	return user, nil
}

// Deactivate soft-deletes the account: clears the active flag and stamps
// the deactivation time. Rows are never hard-deleted here.
func (s *UserService) Deactivate(ctx context.Context, userID int64, at *time.Time) (*domain.User, error) {
	when := time.Now()
	if at != nil {
		when = *at
	}
	user, err := s.users.Deactivate(ctx, userID, when)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) ListProfiles(ctx context.Context, userID int64) ([]domain.Profile, error) {
	return s.profiles.ListByUser(ctx, userID)
}

func (s *UserService) ListContracts(ctx context.Context, userID int64) ([]domain.ContractRef, error) {
	return s.contracts.ListByUser(ctx, userID)
}

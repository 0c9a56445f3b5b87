package service

import (
	"context"
	"time"

	"github.com/artistdesk/artistdesk-api/internal/domain"
	"github.com/artistdesk/artistdesk-api/internal/repository/ports"
)

type ContractService struct {
	contracts ports.ContractRepository
	users     ports.UserRepository
}

func NewContractService(contracts ports.ContractRepository, users ports.UserRepository) *ContractService {
	return &ContractService{contracts: contracts, users: users}
}

// Create drafts a contract with the caller as offeror. The offeree must
// exist and must not be the caller.
func (s *ContractService) Create(ctx context.Context, offerorID int64, input ports.ContractCreate) (int64, error) {
	if input.OffereeID == offerorID {
		return 0, ErrSelfContract
	}
	if _, err := s.users.FindByID(ctx, input.OffereeID); err != nil {
		if isNotFound(err) {
			return 0, ErrOffereeNotFound
		}
		return 0, err
	}
	return s.contracts.Create(ctx, offerorID, input)
}

// Get grants read access to either party of the contract.
func (s *ContractService) Get(ctx context.Context, id, userID int64) (*domain.Contract, error) {
	contract, err := s.contracts.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrContractNotFound
		}
		return nil, err
	}
	if !contract.IsParty(userID) {
		return nil, ErrOwnershipMismatch
	}
	return contract, nil
}

// Update is restricted to the offeror.
func (s *ContractService) Update(ctx context.Context, id, userID int64, input ports.ContractUpdate) (*domain.Contract, error) {
	contract, err := s.findForModify(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	updated, err := s.contracts.Update(ctx, contract.ID, input)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrContractNotFound
		}
		return nil, err
	}
	return updated, nil
}

// Disable soft-disables the contract, offeror only.
func (s *ContractService) Disable(ctx context.Context, id, userID int64, at *time.Time) (*domain.Contract, error) {
	contract, err := s.findForModify(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	when := time.Now()
	if at != nil {
		when = *at
	}
	if err := s.contracts.Disable(ctx, contract.ID, when); err != nil {
		return nil, err
	}
	contract.Disabled = true
	contract.DisabledAt = &when
	return contract, nil
}

// ListEvents returns id+name refs for the contract's events; read access
// follows the two-party rule.
func (s *ContractService) ListEvents(ctx context.Context, id, userID int64) ([]domain.EventRef, error) {
	if _, err := s.Get(ctx, id, userID); err != nil {
		return nil, err
	}
	return s.contracts.ListEvents(ctx, id)
}

func (s *ContractService) findForModify(ctx context.Context, id, userID int64) (*domain.Contract, error) {
	contract, err := s.contracts.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrContractNotFound
		}
		return nil, err
	}
	if err := assertOwner(contract, userID); err != nil {
		return nil, err
	}
	return contract, nil
}

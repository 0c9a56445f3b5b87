package service

import (
	"context"

	"github.com/artistdesk/artistdesk-api/internal/domain"
	"github.com/artistdesk/artistdesk-api/internal/repository/ports"
)

// EventService guards every event operation through the owning
// contract's offeror.
type EventService struct {
	events    ports.EventRepository
	contracts ports.ContractRepository
}

func NewEventService(events ports.EventRepository, contracts ports.ContractRepository) *EventService {
	return &EventService{events: events, contracts: contracts}
}

func (s *EventService) Create(ctx context.Context, userID int64, input ports.EventCreate) (int64, error) {
	if err := s.assertContractOfferor(ctx, input.ContractID, userID); err != nil {
		return 0, err
	}
	return s.events.Create(ctx, input)
}

func (s *EventService) Get(ctx context.Context, id, userID int64) (*domain.Event, error) {
	event, err := s.findGuarded(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) Update(ctx context.Context, id, userID int64, input ports.EventUpdate) (*domain.Event, error) {
	if _, err := s.findGuarded(ctx, id, userID); err != nil {
		return nil, err
	}
	updated, err := s.events.Update(ctx, id, input)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *EventService) Delete(ctx context.Context, id, userID int64) error {
	if _, err := s.findGuarded(ctx, id, userID); err != nil {
		return err
	}
	return s.events.Delete(ctx, id)
}

func (s *EventService) findGuarded(ctx context.Context, id, userID int64) (*domain.Event, error) {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	if err := s.assertContractOfferor(ctx, event.ContractID, userID); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) assertContractOfferor(ctx context.Context, contractID, userID int64) error {
	contract, err := s.contracts.FindByID(ctx, contractID)
	if err != nil {
		if isNotFound(err) {
			return ErrContractNotFound
		}
		return err
	}
	return assertOwner(contract, userID)
}

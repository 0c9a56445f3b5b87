package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/artistdesk/artistdesk-api/internal/repository/ports"
)

func TestAccommodationOwnerOnlyAccess(t *testing.T) {
	ctx := context.Background()
	svc := NewAccommodationService(newMemAccommodationRepo())

	const ownerID, strangerID = int64(1), int64(2)

	id, err := svc.Create(ctx, ownerID, ports.AccommodationCreate{
		Name:            "Hotel Lux",
		Address:         "1 Main St",
		TelephoneNumber: "+30 210 000 0000",
		CheckIn:         time.Date(2026, time.September, 11, 14, 0, 0, 0, time.UTC),
		CheckOut:        time.Date(2026, time.September, 13, 11, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := svc.Get(ctx, id, strangerID); !errors.Is(err, ErrOwnershipMismatch) {
		t.Fatalf("expected ErrOwnershipMismatch for stranger read, got %v", err)
	}
	got, err := svc.Get(ctx, id, ownerID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Name != "Hotel Lux" {
		t.Fatalf("unexpected name %q", got.Name)
	}

	newAddr := "2 Harbour Rd"
	if _, err := svc.Update(ctx, id, strangerID, ports.AccommodationUpdate{Address: &newAddr}); !errors.Is(err, ErrOwnershipMismatch) {
		t.Fatalf("expected ErrOwnershipMismatch for stranger update, got %v", err)
	}
	updated, err := svc.Update(ctx, id, ownerID, ports.AccommodationUpdate{Address: &newAddr})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Address != "2 Harbour Rd" {
		t.Fatalf("expected updated address, got %q", updated.Address)
	}

	if err := svc.Delete(ctx, id, strangerID); !errors.Is(err, ErrOwnershipMismatch) {
		t.Fatalf("expected ErrOwnershipMismatch for stranger delete, got %v", err)
	}
	if err := svc.Delete(ctx, id, ownerID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := svc.Get(ctx, id, ownerID); !errors.Is(err, ErrAccommodationNotFound) {
		t.Fatalf("expected ErrAccommodationNotFound after delete, got %v", err)
	}
}

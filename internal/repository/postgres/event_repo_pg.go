package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/artistdesk/artistdesk-api/internal/domain"
	"github.com/artistdesk/artistdesk-api/internal/repository/ports"
)

const eventColumns = `id, name, contract_id, profile_offeror_id, profile_offeree_id, contact_person, contact_phone, date, duration_minutes, start_time, end_time, arrive, stage_set, stage_check, catering_open, catering_close, meal_time, meal_location_name, meal_location_address, accommodation_id, created_at, updated_at`

type EventRepository struct {
	db *sqlx.DB
}

func NewEventRepo(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, input ports.EventCreate) (int64, error) {
	const query = `
        INSERT INTO event (name, contract_id, profile_offeror_id, profile_offeree_id, contact_person, contact_phone, date, duration_minutes, start_time, end_time, arrive, stage_set, stage_check, catering_open, catering_close, meal_time, meal_location_name, meal_location_address, accommodation_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
        RETURNING id
    `
	var id int64
	err := r.db.QueryRowxContext(ctx, query,
		input.Name,
		input.ContractID,
		input.ProfileOfferorID,
		input.ProfileOffereeID,
		input.ContactPerson,
		input.ContactPhone,
		input.Date,
		input.DurationMinutes,
		input.Start,
		input.End,
		input.Arrive,
		input.StageSet,
		input.StageCheck,
		input.CateringOpen,
		input.CateringClose,
		input.MealTime,
		input.MealLocationName,
		input.MealLocationAddress,
		input.AccommodationID,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id int64) (*domain.Event, error) {
	const query = `SELECT ` + eventColumns + ` FROM event WHERE id = $1`
	var event domain.Event
	if err := r.db.GetContext(ctx, &event, query, id); err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) Update(ctx context.Context, id int64, input ports.EventUpdate) (*domain.Event, error) {
	const query = `
        UPDATE event
        SET name = COALESCE($2, name),
            contact_person = COALESCE($3, contact_person),
            contact_phone = COALESCE($4, contact_phone),
            date = COALESCE($5, date),
            duration_minutes = COALESCE($6, duration_minutes),
            start_time = COALESCE($7, start_time),
            end_time = COALESCE($8, end_time),
            arrive = COALESCE($9, arrive),
            stage_set = COALESCE($10, stage_set),
            stage_check = COALESCE($11, stage_check),
            catering_open = COALESCE($12, catering_open),
            catering_close = COALESCE($13, catering_close),
            meal_time = COALESCE($14, meal_time),
            meal_location_name = COALESCE($15, meal_location_name),
            meal_location_address = COALESCE($16, meal_location_address),
            accommodation_id = COALESCE($17, accommodation_id),
            updated_at = NOW()
        WHERE id = $1
        RETURNING ` + eventColumns + `
    `
	row := r.db.QueryRowxContext(ctx, query, id,
		input.Name,
		input.ContactPerson,
		input.ContactPhone,
		input.Date,
		input.DurationMinutes,
		input.Start,
		input.End,
		input.Arrive,
		input.StageSet,
		input.StageCheck,
		input.CateringOpen,
		input.CateringClose,
		input.MealTime,
		input.MealLocationName,
		input.MealLocationAddress,
		input.AccommodationID,
	)
	var event domain.Event
	if err := row.StructScan(&event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM event WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

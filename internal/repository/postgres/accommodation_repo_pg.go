package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/artistdesk/artistdesk-api/internal/domain"
	"github.com/artistdesk/artistdesk-api/internal/repository/ports"
)

const accommodationColumns = `id, user_id, name, contact_person, address, telephone_number, email, website, url, check_in, check_out, created_at, updated_at`

type AccommodationRepository struct {
	db *sqlx.DB
}

func NewAccommodationRepo(db *sqlx.DB) *AccommodationRepository {
	return &AccommodationRepository{db: db}
}

func (r *AccommodationRepository) Create(ctx context.Context, userID int64, input ports.AccommodationCreate) (int64, error) {
	const query = `
        INSERT INTO accommodation (user_id, name, contact_person, address, telephone_number, email, website, url, check_in, check_out)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id
    `
	var id int64
	err := r.db.QueryRowxContext(ctx, query,
		userID,
		input.Name,
		input.ContactPerson,
		input.Address,
		input.TelephoneNumber,
		input.Email,
		input.Website,
		input.URL,
		input.CheckIn,
		input.CheckOut,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *AccommodationRepository) FindByID(ctx context.Context, id int64) (*domain.Accommodation, error) {
	const query = `SELECT ` + accommodationColumns + ` FROM accommodation WHERE id = $1`
	var accommodation domain.Accommodation
	if err := r.db.GetContext(ctx, &accommodation, query, id); err != nil {
		return nil, err
	}
	return &accommodation, nil
}

func (r *AccommodationRepository) Update(ctx context.Context, id int64, input ports.AccommodationUpdate) (*domain.Accommodation, error) {
	const query = `
        UPDATE accommodation
        SET name = COALESCE($2, name),
            contact_person = COALESCE($3, contact_person),
            address = COALESCE($4, address),
            telephone_number = COALESCE($5, telephone_number),
            email = COALESCE($6, email),
            website = COALESCE($7, website),
            url = COALESCE($8, url),
            check_in = COALESCE($9, check_in),
            check_out = COALESCE($10, check_out),
            updated_at = NOW()
        WHERE id = $1
        RETURNING ` + accommodationColumns + `
    `
	row := r.db.QueryRowxContext(ctx, query, id,
		input.Name,
		input.ContactPerson,
		input.Address,
		input.TelephoneNumber,
		input.Email,
		input.Website,
		input.URL,
		input.CheckIn,
		input.CheckOut,
	)
	var accommodation domain.Accommodation
	if err := row.StructScan(&accommodation); err != nil {
		return nil, err
	}
	return &accommodation, nil
}

func (r *AccommodationRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM accommodation WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

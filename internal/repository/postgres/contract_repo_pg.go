package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/artistdesk/artistdesk-api/internal/domain"
	"github.com/artistdesk/artistdesk-api/internal/repository/ports"
)

const contractColumns = `id, name, offeror_id, offeree_id, currency_code, upon_signing, upon_completion, payment_method, performance_fee, travel_expenses, accommodation_expenses, other_expenses, total_fee, disabled, disabled_at, signed_at, delete_date, created_at, updated_at`

type ContractRepository struct {
	db *sqlx.DB
}

func NewContractRepo(db *sqlx.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

func (r *ContractRepository) Create(ctx context.Context, offerorID int64, input ports.ContractCreate) (int64, error) {
	const query = `
        INSERT INTO contract (name, offeror_id, offeree_id, currency_code, upon_signing, upon_completion, payment_method, performance_fee, travel_expenses, accommodation_expenses, other_expenses, total_fee, signed_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING id
    `
	var id int64
	err := r.db.QueryRowxContext(ctx, query,
		input.Name,
		offerorID,
		input.OffereeID,
		input.CurrencyCode,
		input.UponSigning,
		input.UponCompletion,
		input.PaymentMethod,
		input.PerformanceFee,
		input.TravelExpenses,
		input.AccommodationExpenses,
		input.OtherExpenses,
		input.TotalFee,
		input.SignedAt,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *ContractRepository) FindByID(ctx context.Context, id int64) (*domain.Contract, error) {
	const query = `SELECT ` + contractColumns + ` FROM contract WHERE id = $1`
	var contract domain.Contract
	if err := r.db.GetContext(ctx, &contract, query, id); err != nil {
		return nil, err
	}
	return &contract, nil
}

func (r *ContractRepository) ListByUser(ctx context.Context, userID int64) ([]domain.ContractRef, error) {
	const query = `
        SELECT id, name
        FROM contract
        WHERE offeror_id = $1 OR offeree_id = $1
        ORDER BY id
    `
	var refs []domain.ContractRef
	if err := r.db.SelectContext(ctx, &refs, query, userID); err != nil {
		return nil, err
	}
	return refs, nil
}

func (r *ContractRepository) Update(ctx context.Context, id int64, input ports.ContractUpdate) (*domain.Contract, error) {
	const query = `
        UPDATE contract
        SET name = COALESCE($2, name),
            currency_code = COALESCE($3, currency_code),
            upon_signing = COALESCE($4, upon_signing),
            upon_completion = COALESCE($5, upon_completion),
            payment_method = COALESCE($6, payment_method),
            performance_fee = COALESCE($7, performance_fee),
            travel_expenses = COALESCE($8, travel_expenses),
            accommodation_expenses = COALESCE($9, accommodation_expenses),
            other_expenses = COALESCE($10, other_expenses),
            total_fee = COALESCE($11, total_fee),
            signed_at = COALESCE($12, signed_at),
            updated_at = NOW()
        WHERE id = $1
        RETURNING ` + contractColumns + `
    `
	row := r.db.QueryRowxContext(ctx, query, id,
		input.Name,
		input.CurrencyCode,
		input.UponSigning,
		input.UponCompletion,
		input.PaymentMethod,
		input.PerformanceFee,
		input.TravelExpenses,
		input.AccommodationExpenses,
		input.OtherExpenses,
		input.TotalFee,
		input.SignedAt,
	)
	var contract domain.Contract
	if err := row.StructScan(&contract); err != nil {
		return nil, err
	}
	return &contract, nil
}

func (r *ContractRepository) Disable(ctx context.Context, id int64, at time.Time) error {
	const query = `
        UPDATE contract
        SET disabled = TRUE,
            disabled_at = $2,
            updated_at = NOW()
        WHERE id = $1
    `
	_, err := r.db.ExecContext(ctx, query, id, at)
	return err
}

func (r *ContractRepository) ListEvents(ctx context.Context, contractID int64) ([]domain.EventRef, error) {
	const query = `SELECT id, name FROM event WHERE contract_id = $1 ORDER BY id`
	var refs []domain.EventRef
	if err := r.db.SelectContext(ctx, &refs, query, contractID); err != nil {
		return nil, err
	}
	return refs, nil
}

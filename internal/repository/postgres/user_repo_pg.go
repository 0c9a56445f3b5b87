package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/artistdesk/artistdesk-api/internal/domain"
	"github.com/artistdesk/artistdesk-api/internal/repository/ports"
)

const userColumns = `id, username, password, type_of_entity, name, surname, email_address, phone_number, vat_id, bank_account, is_active, deactivation_date, delete_date, created_at, updated_at`

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, input ports.UserCreate) (int64, error) {
	const query = `
        INSERT INTO user_account (username, password, type_of_entity, name, surname, email_address, phone_number, vat_id, bank_account)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id
    `
	var id int64
	err := r.db.QueryRowxContext(ctx, query,
		input.Username,
		input.PasswordHash,
		input.TypeOfEntity,
		input.Name,
		input.Surname,
		input.EmailAddress,
		input.PhoneNumber,
		input.VatID,
		input.BankAccount,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM user_account WHERE id = $1`
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM user_account WHERE username = $1`
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, username); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM user_account WHERE email_address = $1`
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Update(ctx context.Context, id int64, input ports.UserUpdate) (*domain.User, error) {
	const query = `
        UPDATE user_account
        SET username = COALESCE($2, username),
            type_of_entity = COALESCE($3, type_of_entity),
            name = COALESCE($4, name),
            surname = COALESCE($5, surname),
            email_address = COALESCE($6, email_address),
            phone_number = COALESCE($7, phone_number),
            vat_id = COALESCE($8, vat_id),
            bank_account = COALESCE($9, bank_account),
            updated_at = NOW()
        WHERE id = $1
        RETURNING ` + userColumns + `
    `
	row := r.db.QueryRowxContext(ctx, query, id,
		input.Username,
		input.TypeOfEntity,
		input.Name,
		input.Surname,
		input.EmailAddress,
		input.PhoneNumber,
		input.VatID,
		input.BankAccount,
	)
	var user domain.User
	if err := row.StructScan(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) (bool, error) {
	const query = `
        UPDATE user_account
        SET password = $2,
            updated_at = NOW()
        WHERE id = $1
    `
	res, err := r.db.ExecContext(ctx, query, id, passwordHash)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *UserRepository) Deactivate(ctx context.Context, id int64, at time.Time) (*domain.User, error) {
	const query = `
        UPDATE user_account
        SET is_active = FALSE,
            deactivation_date = $2,
            updated_at = NOW()
        WHERE id = $1
        RETURNING ` + userColumns + `
    `
	row := r.db.QueryRowxContext(ctx, query, id, at)
	var user domain.User
	if err := row.StructScan(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

package domain

import (
	"time"
)

type User struct {
	ID               int64      `db:"id" json:"id"`
	Username         string     `db:"username" json:"username"`
	Password         string     `db:"password" json:"-"`
	TypeOfEntity     string     `db:"type_of_entity" json:"type_of_entity"`
	Name             string     `db:"name" json:"name"`
	Surname          string     `db:"surname" json:"surname"`
	EmailAddress     string     `db:"email_address" json:"email_address"`
	PhoneNumber      string     `db:"phone_number" json:"phone_number"`
	VatID            *string    `db:"vat_id" json:"vat_id,omitempty"`
	BankAccount      *string    `db:"bank_account" json:"bank_account,omitempty"`
	IsActive         bool       `db:"is_active" json:"is_active"`
	DeactivationDate *time.Time `db:"deactivation_date" json:"deactivation_date,omitempty"`
	DeleteDate       *time.Time `db:"delete_date" json:"delete_date,omitempty"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
}

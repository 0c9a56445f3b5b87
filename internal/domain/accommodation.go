package domain

import (
	"time"
)

type Accommodation struct {
	ID              int64     `db:"id" json:"id"`
	UserID          int64     `db:"user_id" json:"user_id"`
	Name            string    `db:"name" json:"name"`
	ContactPerson   *string   `db:"contact_person" json:"contact_person,omitempty"`
	Address         string    `db:"address" json:"address"`
	TelephoneNumber string    `db:"telephone_number" json:"telephone_number"`
	Email           *string   `db:"email" json:"email,omitempty"`
	Website         *string   `db:"website" json:"website,omitempty"`
	URL             *string   `db:"url" json:"url,omitempty"`
	CheckIn         time.Time `db:"check_in" json:"check_in"`
	CheckOut        time.Time `db:"check_out" json:"check_out"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

func (a *Accommodation) OwnerID() int64 {
	return a.UserID
}

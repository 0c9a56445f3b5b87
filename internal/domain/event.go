package domain

import (
	"time"
)

type Event struct {
	ID                  int64     `db:"id" json:"id"`
	Name                string    `db:"name" json:"name"`
	ContractID          int64     `db:"contract_id" json:"contract_id"`
	ProfileOfferorID    int64     `db:"profile_offeror_id" json:"profile_offeror_id"`
	ProfileOffereeID    int64     `db:"profile_offeree_id" json:"profile_offeree_id"`
	ContactPerson       *string   `db:"contact_person" json:"contact_person,omitempty"`
	ContactPhone        *string   `db:"contact_phone" json:"contact_phone,omitempty"`
	Date                time.Time `db:"date" json:"date"`
	DurationMinutes     int64     `db:"duration_minutes" json:"duration_minutes"`
	Start               string    `db:"start_time" json:"start"`
	End                 *string   `db:"end_time" json:"end,omitempty"`
	Arrive              time.Time `db:"arrive" json:"arrive"`
	StageSet            string    `db:"stage_set" json:"stage_set"`
	StageCheck          string    `db:"stage_check" json:"stage_check"`
	CateringOpen        *string   `db:"catering_open" json:"catering_open,omitempty"`
	CateringClose       *string   `db:"catering_close" json:"catering_close,omitempty"`
	MealTime            *string   `db:"meal_time" json:"meal_time,omitempty"`
	MealLocationName    *string   `db:"meal_location_name" json:"meal_location_name,omitempty"`
	MealLocationAddress *string   `db:"meal_location_address" json:"meal_location_address,omitempty"`
	AccommodationID     *int64    `db:"accommodation_id" json:"accommodation_id,omitempty"`
	CreatedAt           time.Time `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time `db:"updated_at" json:"updated_at"`
}

// EventRef is the id+name projection returned by contract event listings.
type EventRef struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

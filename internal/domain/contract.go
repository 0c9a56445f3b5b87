package domain

import (
	"time"
)

// Contract binds two accounts: the offeror who drafted it and the offeree
// who performs. Both parties may read the contract; only the offeror may
// change it.
type Contract struct {
	ID                    int64      `db:"id" json:"id"`
	Name                  string     `db:"name" json:"name"`
	OfferorID             int64      `db:"offeror_id" json:"offeror_id"`
	OffereeID             int64      `db:"offeree_id" json:"offeree_id"`
	CurrencyCode          string     `db:"currency_code" json:"currency_code"`
	UponSigning           int        `db:"upon_signing" json:"upon_signing"`
	UponCompletion        int        `db:"upon_completion" json:"upon_completion"`
	PaymentMethod         string     `db:"payment_method" json:"payment_method"`
	PerformanceFee        float64    `db:"performance_fee" json:"performance_fee"`
	TravelExpenses        float64    `db:"travel_expenses" json:"travel_expenses"`
	AccommodationExpenses float64    `db:"accommodation_expenses" json:"accommodation_expenses"`
	OtherExpenses         float64    `db:"other_expenses" json:"other_expenses"`
	TotalFee              float64    `db:"total_fee" json:"total_fee"`
	Disabled              bool       `db:"disabled" json:"disabled"`
	DisabledAt            *time.Time `db:"disabled_at" json:"disabled_at,omitempty"`
	SignedAt              *time.Time `db:"signed_at" json:"signed_at,omitempty"`
	DeleteDate            *time.Time `db:"delete_date" json:"delete_date,omitempty"`
	CreatedAt             time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt             time.Time  `db:"updated_at" json:"updated_at"`
}

func (c *Contract) IsParty(userID int64) bool {
	return c.OfferorID == userID || c.OffereeID == userID
}

func (c *Contract) OwnerID() int64 {
	return c.OfferorID
}

// ContractRef is the id+name projection used by listing endpoints.
type ContractRef struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

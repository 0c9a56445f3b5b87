package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/lib/pq"
)

type PressLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type PressLinks []PressLink

func (p PressLinks) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (p *PressLinks) Scan(value any) error {
	if value == nil {
		*p = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("press links must be []byte")
	}
	return json.Unmarshal(bytes, p)
}

type Profile struct {
	ID              int64          `db:"id" json:"id"`
	UserID          int64          `db:"user_id" json:"user_id"`
	Name            string         `db:"name" json:"name"`
	PerformanceType string         `db:"performance_type" json:"performance_type"`
	Description     *string        `db:"description" json:"description,omitempty"`
	Bio             *string        `db:"bio" json:"bio,omitempty"`
	Website         *string        `db:"website" json:"website,omitempty"`
	SocialMedia     pq.StringArray `db:"social_media" json:"social_media,omitempty"`
	StagePlan       *string        `db:"stage_plan" json:"stage_plan,omitempty"`
	TechRider       *string        `db:"tech_rider" json:"tech_rider,omitempty"`
	Photos          pq.StringArray `db:"photos" json:"photos,omitempty"`
	Videos          pq.StringArray `db:"videos" json:"videos,omitempty"`
	Audios          pq.StringArray `db:"audios" json:"audios,omitempty"`
	OnlinePress     PressLinks     `db:"online_press" json:"online_press,omitempty"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at" json:"updated_at"`
}

func (p *Profile) OwnerID() int64 {
	return p.UserID
}

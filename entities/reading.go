package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reading is one measurement sample: instantaneous power in watts,
// energy in watt-hours and the computed cost. The capture timestamp is
// server-assigned; rows are immutable once written, so there is no
// UpdatedAt and no soft delete.
type Reading struct {
	ID        string    `gorm:"type:text;primaryKey" json:"id"`
	UserID    string    `gorm:"index;not null" json:"user_id"`
	Power     float64   `json:"power"`
	Energy    float64   `json:"energy"`
	Cost      float64   `json:"cost"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *Reading) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return
}

package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an account on the energy dashboard. The password hash never
// leaves the store: json:"-" keeps it out of every response body.
type User struct {
	ID           string         `gorm:"type:text;primaryKey" json:"id"`
	Email        string         `gorm:"unique;not null" json:"email"`
	FirstName    string         `gorm:"not null" json:"first_name"`
	LastName     string         `gorm:"not null" json:"last_name"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Settings     map[string]any `gorm:"serializer:json" json:"settings"`
	CreatedAt    time.Time      `json:"created_at"`
	LastLogin    *time.Time     `json:"last_login"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return
}

package repositories

import (
	"energy-server/entities"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when the users table unique
	// constraint rejects an insert. Registration is never pre-checked;
	// the constraint is the arbiter so concurrent attempts race safely.
	ErrDuplicateEmail = errors.New("email already registered")
)

type UserRepository interface {
	Create(user *entities.User) error
	GetByID(id string) (*entities.User, error)
	GetByEmail(email string) (*entities.User, error)
	UpdateLastLogin(id string, at time.Time) error
}

// ReadingRepository has no update or delete: readings are immutable.
type ReadingRepository interface {
	Create(reading *entities.Reading) error
	GetByUserID(userID string, limit int) ([]entities.Reading, error)
	GetLatestByUserID(userID string) (*entities.Reading, error)
}

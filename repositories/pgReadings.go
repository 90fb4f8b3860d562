package repositories

import (
	"energy-server/db"
	"energy-server/entities"
	"errors"

	"gorm.io/gorm"
)

type readingPgRepository struct {
	db db.Database
}

func NewReadingPgRepository(database db.Database) ReadingRepository {
	return &readingPgRepository{db: database}
}

func (r *readingPgRepository) Create(reading *entities.Reading) error {
	return r.db.GetDB().Create(reading).Error
}

func (r *readingPgRepository) GetByUserID(userID string, limit int) ([]entities.Reading, error) {
	var readings []entities.Reading
	err := r.db.GetDB().
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&readings).Error
	return readings, err
}

func (r *readingPgRepository) GetLatestByUserID(userID string) (*entities.Reading, error) {
	var reading entities.Reading
	err := r.db.GetDB().
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&reading).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &reading, nil
}

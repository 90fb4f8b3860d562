package usecases

import (
	"energy-server/cache"
	"energy-server/entities"
	"energy-server/repositories"
	"errors"
)

// listLimit caps how many rows a list returns; there is no pagination
// beyond this.
const listLimit = 100

type ReadingUseCase struct {
	Readings repositories.ReadingRepository
	Cache    *cache.LatestReadingCache
}

func NewReadingUseCase(readingRepo repositories.ReadingRepository, latest *cache.LatestReadingCache) *ReadingUseCase {
	return &ReadingUseCase{
		Readings: readingRepo,
		Cache:    latest,
	}
}

// Add inserts one immutable reading with a server-assigned timestamp and
// writes it through the latest-reading cache.
func (uc *ReadingUseCase) Add(userID string, power, energy, cost float64) (*entities.Reading, error) {
	if userID == "" {
		return nil, errors.New("user id is required")
	}

	reading := &entities.Reading{
		UserID: userID,
		Power:  power,
		Energy: energy,
		Cost:   cost,
	}
	if err := uc.Readings.Create(reading); err != nil {
		return nil, err
	}

	uc.Cache.Put(*reading)
	return reading, nil
}

// List returns the user's readings, most recent first, capped at 100.
func (uc *ReadingUseCase) List(userID string) ([]entities.Reading, error) {
	if userID == "" {
		return nil, errors.New("user id is required")
	}
	return uc.Readings.GetByUserID(userID, listLimit)
}

// Latest serves the most recent reading from the cache, falling back to
// the store when the cache is cold and backfilling it on the way out.
func (uc *ReadingUseCase) Latest(userID string) (*entities.Reading, error) {
	if userID == "" {
		return nil, errors.New("user id is required")
	}

	if reading, ok := uc.Cache.Get(userID); ok {
		return &reading, nil
	}

	reading, err := uc.Readings.GetLatestByUserID(userID)
	if err != nil {
		return nil, err
	}

	uc.Cache.Put(*reading)
	return reading, nil
}

// CacheStats exposes latest-reading cache counters.
func (uc *ReadingUseCase) CacheStats() map[string]interface{} {
	return uc.Cache.Stats()
}

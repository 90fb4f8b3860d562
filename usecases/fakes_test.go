package usecases

import (
	"energy-server/entities"
	"energy-server/repositories"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"
)

// fakeUserRepo mimics the store: the uniqueness constraint lives here, a
// registration is never pre-checked.
type fakeUserRepo struct {
	mu            sync.Mutex
	byEmail       map[string]*entities.User
	nextID        int
	failLastLogin bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entities.User{}}
}

func (r *fakeUserRepo) Create(user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return repositories.ErrDuplicateEmail
	}

	r.nextID++
	user.ID = fmt.Sprintf("user-%d", r.nextID)
	user.CreatedAt = time.Now()

	stored := *user
	r.byEmail[user.Email] = &stored
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.byEmail {
		if user.ID == id {
			found := *user
			return &found, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeUserRepo) GetByEmail(email string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byEmail[email]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	found := *user
	return &found, nil
}

func (r *fakeUserRepo) UpdateLastLogin(id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failLastLogin {
		return errors.New("store unavailable")
	}
	for _, user := range r.byEmail {
		if user.ID == id {
			user.LastLogin = &at
			return nil
		}
	}
	return repositories.ErrNotFound
}

type fakeReadingRepo struct {
	mu       sync.Mutex
	readings []entities.Reading
	nextID   int
	clock    time.Time
	failing  bool
}

func newFakeReadingRepo() *fakeReadingRepo {
	return &fakeReadingRepo{clock: time.Now()}
}

func (r *fakeReadingRepo) Create(reading *entities.Reading) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failing {
		return errors.New("store unavailable")
	}

	r.nextID++
	r.clock = r.clock.Add(time.Millisecond)
	reading.ID = fmt.Sprintf("reading-%d", r.nextID)
	reading.CreatedAt = r.clock

	r.readings = append(r.readings, *reading)
	return nil
}

func (r *fakeReadingRepo) GetByUserID(userID string, limit int) ([]entities.Reading, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []entities.Reading
	for _, reading := range r.readings {
		if reading.UserID == userID {
			out = append(out, reading)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeReadingRepo) GetLatestByUserID(userID string) (*entities.Reading, error) {
	all, err := r.GetByUserID(userID, 1)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, repositories.ErrNotFound
	}
	return &all[0], nil
}

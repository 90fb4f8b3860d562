package httpHandler

import (
	"bytes"
	"encoding/json"
	"energy-server/auth"
	"energy-server/cache"
	"energy-server/entities"
	"energy-server/repositories"
	"energy-server/usecases"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

// newTestRouter wires the real handlers and middleware over in-memory
// repositories, mirroring server.Start.
func newTestRouter() (*gin.Engine, *auth.TokenService) {
	router, tokens, _ := newTestRouterWithUserRepo()
	return router, tokens
}

func newTestRouterWithUserRepo() (*gin.Engine, *auth.TokenService, *memUserRepo) {
	gin.SetMode(gin.TestMode)

	userRepo := &memUserRepo{byEmail: map[string]*entities.User{}}
	readingRepo := &memReadingRepo{clock: time.Now()}

	userUseCase := usecases.NewUserUseCase(userRepo)
	readingUseCase := usecases.NewReadingUseCase(readingRepo, cache.NewLatestReadingCache())

	tokens := auth.NewTokenService(testSecret)
	authHandler := NewAuthHandler(userUseCase, tokens)
	profileHandler := NewProfileHandler(userUseCase)
	readingHandler := NewReadingHandler(readingUseCase)

	router := gin.New()
	router.GET("/health", Health)
	router.GET("/", Index)

	api := router.Group("/api")
	{
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		protected := api.Group("", auth.RequireAuth(tokens))
		{
			protected.GET("/profile", profileHandler.GetProfile)
			protected.POST("/readings", readingHandler.AddReading)
			protected.GET("/readings", readingHandler.ListReadings)
			protected.GET("/readings/latest", readingHandler.LatestReading)
			protected.GET("/cache/stats", readingHandler.CacheStats)
		}
	}

	return router, tokens, userRepo
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, payload any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	result := map[string]any{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	return w, result
}

func registerUser(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()

	w, result := doJSON(t, router, http.MethodPost, "/api/register", "", map[string]string{
		"email":     email,
		"firstName": "A",
		"lastName":  "B",
		"password":  "pw123456",
	})
	require.Equal(t, http.StatusOK, w.Code)

	token, _ := result["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// In-memory repositories backing the test router.

type memUserRepo struct {
	mu        sync.Mutex
	byEmail   map[string]*entities.User
	nextID    int
	createErr error
}

func (r *memUserRepo) Create(user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createErr != nil {
		return r.createErr
	}
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

func (r *memUserRepo) GetByID(id string) (*entities.User, error) {
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

func (r *memUserRepo) GetByEmail(email string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byEmail[email]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	found := *user
	return &found, nil
}

func (r *memUserRepo) UpdateLastLogin(id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.byEmail {
		if user.ID == id {
			user.LastLogin = &at
			return nil
		}
	}
	return repositories.ErrNotFound
}

type memReadingRepo struct {
	mu       sync.Mutex
	readings []entities.Reading
	nextID   int
	clock    time.Time
}

func (r *memReadingRepo) Create(reading *entities.Reading) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	r.clock = r.clock.Add(time.Millisecond)
	reading.ID = fmt.Sprintf("reading-%d", r.nextID)
	reading.CreatedAt = r.clock

	r.readings = append(r.readings, *reading)
	return nil
}

func (r *memReadingRepo) GetByUserID(userID string, limit int) ([]entities.Reading, error) {
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

func (r *memReadingRepo) GetLatestByUserID(userID string) (*entities.Reading, error) {
	all, err := r.GetByUserID(userID, 1)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, repositories.ErrNotFound
	}
	return &all[0], nil
}

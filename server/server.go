package server

import (
	"energy-server/auth"
	"energy-server/cache"
	"energy-server/confs"
	"energy-server/db"
	httpHandler "energy-server/handlers/http"
	"energy-server/repositories"
	"energy-server/usecases"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app *gin.Engine
	db  db.Database
	cfg *confs.Config
}

func NewServer(cfg *confs.Config, database db.Database) *Server {
	return &Server{
		app: gin.Default(),
		db:  database,
		cfg: cfg,
	}
}

func (s *Server) Start() error {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true // the dashboard frontend is served elsewhere
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	s.app.Use(cors.New(config))

	s.app.GET("/health", httpHandler.Health)
	s.app.GET("/", httpHandler.Index)

	// Initialize repositories
	userRepo := repositories.NewUserPgRepository(s.db)
	readingRepo := repositories.NewReadingPgRepository(s.db)

	// Initialize use cases
	latest := cache.NewLatestReadingCache()
	userUseCase := usecases.NewUserUseCase(userRepo)
	readingUseCase := usecases.NewReadingUseCase(readingRepo, latest)

	// Token service and handlers
	tokens := auth.NewTokenService(s.cfg.JWTSecret)
	authHandler := httpHandler.NewAuthHandler(userUseCase, tokens)
	profileHandler := httpHandler.NewProfileHandler(userUseCase)
	readingHandler := httpHandler.NewReadingHandler(readingUseCase)

	// Setup API routes
	api := s.app.Group("/api")
	{
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		// Everything below requires a valid bearer token
		protected := api.Group("", auth.RequireAuth(tokens))
		{
			protected.GET("/profile", profileHandler.GetProfile)
			protected.POST("/readings", readingHandler.AddReading)
			protected.GET("/readings", readingHandler.ListReadings)
			protected.GET("/readings/latest", readingHandler.LatestReading)
			protected.GET("/cache/stats", readingHandler.CacheStats)
		}
	}

	return s.app.Run("0.0.0.0:" + s.cfg.Port)
}

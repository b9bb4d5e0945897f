package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kmwhite/dinner-recipes/backend/config"
	"github.com/kmwhite/dinner-recipes/backend/internal/api"
	"github.com/kmwhite/dinner-recipes/backend/internal/database"
	"github.com/kmwhite/dinner-recipes/backend/internal/middleware"
	"github.com/kmwhite/dinner-recipes/backend/internal/router"
	"github.com/kmwhite/dinner-recipes/backend/internal/service"
)

// Server wires the services together and owns the HTTP listener.
type Server struct {
	http *http.Server
	db   *gorm.DB
}

// New builds a fully wired server from configuration: database, Redis
// session store, S3 storage, services, handlers and routes.
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	switch {
	case config.IsProduction():
		gin.SetMode(gin.ReleaseMode)
	case config.IsTest():
		gin.SetMode(gin.TestMode)
	}

	db, err := database.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}

	s3Config, err := config.NewS3Config(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("s3: %w", err)
	}

	// Services
	tokenStore := service.NewRedisTokenStore(redisClient)
	authService := service.NewAuthService(db, cfg.JWTSecret, tokenStore)
	recipeService := service.NewRecipeService(db)
	photoService := service.NewPhotoRecipeService(db)
	storageService := service.NewStorageService(s3Config.Client, s3Config.BucketName)

	// Handlers
	authHandler := api.NewAuthHandler(authService)
	recipeHandler := api.NewRecipeHandler(recipeService)
	photoHandler := api.NewPhotoHandler(photoService, storageService)

	limiter := middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
		Window:    time.Minute,
		Limit:     cfg.RateLimitPerMinute,
		KeyPrefix: "ratelimit",
	})

	engine := router.SetupRouter(authHandler, recipeHandler, photoHandler, authService, limiter, cfg.AllowedOrigins)

	return &Server{
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: engine,
		},
		db: db,
	}, nil
}

// Start starts the server
func (s *Server) Start() error {
	return s.http.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

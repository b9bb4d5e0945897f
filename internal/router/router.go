package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/kmwhite/dinner-recipes/backend/internal/api"
	"github.com/kmwhite/dinner-recipes/backend/internal/middleware"
)

// SetupRouter configures the application routes. The rate limiter is
// optional; passing nil disables it (tests, or running without Redis).
func SetupRouter(
	authHandler *api.AuthHandler,
	recipeHandler *api.RecipeHandler,
	photoHandler *api.PhotoHandler,
	validator middleware.TokenValidator,
	limiter *middleware.RateLimiter,
	allowedOrigins []string,
) *gin.Engine {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	if len(allowedOrigins) > 0 {
		corsConfig.AllowOrigins = allowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	corsConfig.MaxAge = 24 * time.Hour
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public auth routes
	authHandler.RegisterRoutes(v1)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(validator))
	if limiter != nil {
		protected.Use(limiter.RateLimitMiddleware())
	}
	authHandler.RegisterProtectedRoutes(protected)
	recipeHandler.RegisterRoutes(protected)
	photoHandler.RegisterRoutes(protected)

	return router
}

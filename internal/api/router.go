package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/avolkov/spendview/internal/middleware"
)

// NewRouter creates a Gin engine with all view routes configured.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, RequestLogger, Recovery,
//     ErrorHandler, RateLimiter).
//   - Adds a 10 second request timeout.
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures API v1 routes (/api/v1).
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in
//     app.InitializeApp().
func NewRouter(handler *Handler) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.Recovery(),
		middleware.ErrorHandler,
		middleware.RateLimiter(),
	)

	// Request timeout
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/home", handler.GetHome)
		v1.GET("/search", handler.GetSearch)
		v1.GET("/spending", handler.GetSpending)
	}

	return router
}

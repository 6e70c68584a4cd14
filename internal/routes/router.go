package routes

import (
	"github.com/pedroloango/futboss/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes initializes all application routes.
func SetupRoutes(r *gin.Engine) {
	// Public routes first: login does not require a session.
	RegisterAuthRoutes(r)

	// Everything else requires a valid JWT.
	authRequired := r.Group("/")
	authRequired.Use(middleware.AuthMiddleware())
	{
		RegisterAPIRoutes(authRequired)
	}
}

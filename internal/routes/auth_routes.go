package routes

import (
	"github.com/pedroloango/futboss/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the routes that are reachable without a session.
func RegisterAuthRoutes(r *gin.Engine) {
	r.POST("/login", handlers.LoginHandler)
}

package routes

import (
	"github.com/gin-gonic/gin"

	"vehicle_rental/internal/controllers"
)

func AuthRoutes(r *gin.Engine, h *controllers.Handler) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}
}

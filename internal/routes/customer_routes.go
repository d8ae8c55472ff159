package routes

import (
	"github.com/gin-gonic/gin"

	"vehicle_rental/internal/controllers"
	"vehicle_rental/internal/middleware"
	"vehicle_rental/internal/models"
)

func CustomerRoutes(r *gin.Engine, h *controllers.Handler, tokens *middleware.TokenIssuer) {
	customer := r.Group("/customer")
	customer.Use(tokens.RequireAuthWithRole(models.RoleCustomer))
	{
		customer.GET("/dashboard", h.CustomerDashboard)
	}
}

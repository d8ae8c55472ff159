package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vehicle_rental/internal/middleware"
)

// CustomerDashboard shows the logged-in customer their record and the
// rental chain hanging off it.
func (h *Handler) CustomerDashboard(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	bundle, err := h.svc.Resolver.ResolveCustomerBundle(c.Request.Context(), sess.CustomerEmail())
	if err != nil {
		respondError(c, err)
		return
	}
	if bundle.Customer == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found."})
		return
	}

	body := gin.H{"data": bundle}
	if bundle.RentalCount > 1 {
		body["warning"] = "More than one rental is recorded for this customer; showing one of them."
	}
	c.JSON(http.StatusOK, body)
}

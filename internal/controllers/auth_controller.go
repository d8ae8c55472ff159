package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vehicle_rental/internal/middleware"
	"vehicle_rental/internal/services"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates an admin or customer account.
func (h *Handler) Register(c *gin.Context) {
	var in services.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}

	user, err := h.svc.Auth.Register(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    services.SessionFor(user),
	})
}

// Login checks the credentials and returns a signed session token.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, err := h.svc.Auth.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if services.Outcome(err) == "not_found" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		respondError(c, err)
		return
	}

	sess := services.SessionFor(user)
	token, err := h.tokens.GenerateToken(sess)
	if err != nil {
		middleware.Logger(c).WithError(err).Error("failed to sign token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	middleware.Logger(c).WithField("username", sess.Username).Info("user logged in")
	c.JSON(http.StatusOK, gin.H{"token": token, "user": sess})
}

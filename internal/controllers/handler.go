package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"vehicle_rental/internal/middleware"
	"vehicle_rental/internal/services"
)

type Handler struct {
	svc    *services.Services
	tokens *middleware.TokenIssuer
}

func New(svc *services.Services, tokens *middleware.TokenIssuer) *Handler {
	return &Handler{svc: svc, tokens: tokens}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError maps domain errors to status codes. Joined errors (payment
// add) are listed individually under "errors".
func respondError(c *gin.Context, err error) {
	var (
		validation *services.ValidationError
		conflict   *services.ConflictError
		notFound   *services.NotFoundError
		reference  *services.ReferenceError
	)

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &conflict):
		status = http.StatusConflict
	case errors.As(err, &validation):
		status = http.StatusBadRequest
	case errors.As(err, &notFound):
		status = http.StatusNotFound
	case errors.As(err, &reference):
		status = http.StatusUnprocessableEntity
	}

	if status == http.StatusInternalServerError {
		middleware.Logger(c).WithError(err).Error("request failed")
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}

	body := gin.H{"error": err.Error()}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		msgs := []string{}
		for _, e := range joined.Unwrap() {
			msgs = append(msgs, e.Error())
		}
		body["errors"] = msgs
	}
	c.JSON(status, body)
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
}

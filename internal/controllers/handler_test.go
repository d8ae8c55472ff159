package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"vehicle_rental/internal/services"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", &services.ValidationError{Fields: []string{"name"}}, http.StatusBadRequest},
		{"conflict", &services.ConflictError{Collection: "customer", Key: "C1"}, http.StatusConflict},
		{"not found", &services.NotFoundError{Collection: "rental", Key: "R1"}, http.StatusNotFound},
		{"reference", &services.ReferenceError{Collection: "vehicle", Key: "V1"}, http.StatusUnprocessableEntity},
		{"conflict wins over reference", errors.Join(
			&services.ConflictError{Collection: "payment", Key: "P1"},
			&services.ReferenceError{Collection: "rental", Key: "R1"},
		), http.StatusConflict},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondError(c, tc.err)
			require.Equal(t, tc.status, w.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			require.NotEmpty(t, body["error"])
		})
	}
}

func TestRespondError_ListsJoinedErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondError(c, errors.Join(
		&services.ConflictError{Collection: "payment", Key: "P1"},
		&services.ReferenceError{Collection: "customer", Key: "C9"},
	))

	var body struct {
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, []string{
		`payment "P1" already exists`,
		`referenced customer "C9" does not exist`,
	}, body.Errors)
}

package services

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func TestMustRegister_PanicsOnBadTag(t *testing.T) {
	v := validator.New()
	require.Panics(t, func() {
		mustRegister(v, "", func(validator.FieldLevel) bool { return true })
	})
	require.NotPanics(t, func() { NewValidator() })
}

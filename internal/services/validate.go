package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"

	"vehicle_rental/internal/models"
)

// NewValidator returns a validator that knows the enum tags used on the models.
func NewValidator() *validator.Validate {
	v := validator.New()

	// Report json field names, not Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// notblank matches the whitespace rule patches are checked with.
	mustRegister(v, "notblank", validators.NotBlank)
	mustRegister(v, "availability", func(fl validator.FieldLevel) bool {
		return models.AvailabilityStatus(fl.Field().String()).Valid()
	})
	mustRegister(v, "payment_method", func(fl validator.FieldLevel) bool {
		return models.PaymentMethod(fl.Field().String()).Valid()
	})
	mustRegister(v, "payment_status", func(fl validator.FieldLevel) bool {
		return models.PaymentStatus(fl.Field().String()).Valid()
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %q validation: %v", tag, err))
	}
}

// validateStruct converts validator failures into a ValidationError.
func validateStruct(v *validator.Validate, doc any) error {
	err := v.Struct(doc)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return &ValidationError{Fields: fields}
}

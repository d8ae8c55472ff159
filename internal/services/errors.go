package services

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError reports required input that is blank or outside its domain.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid or missing fields: " + strings.Join(e.Fields, ", ")
}

// ConflictError reports a business key that is already taken.
type ConflictError struct {
	Collection string
	Key        string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Collection, e.Key)
}

// NotFoundError reports a lookup value with no matching record.
type NotFoundError struct {
	Collection string
	Key        string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Collection, e.Key)
}

// ReferenceError reports a soft reference to a record that does not exist.
type ReferenceError struct {
	Collection string
	Key        string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("referenced %s %q does not exist", e.Collection, e.Key)
}

// ParseError lists payments whose date could not be parsed during
// aggregation.
type ParseError struct {
	PaymentIDs []string
}

func (e *ParseError) Error() string {
	return "unparseable payment_date on payments: " + strings.Join(e.PaymentIDs, ", ")
}

// Outcome classifies err for metrics and logs.
func Outcome(err error) string {
	var (
		validation *ValidationError
		conflict   *ConflictError
		notFound   *NotFoundError
		reference  *ReferenceError
		parse      *ParseError
	)
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &conflict):
		return "conflict"
	case errors.As(err, &validation):
		return "validation"
	case errors.As(err, &notFound):
		return "not_found"
	case errors.As(err, &reference):
		return "reference"
	case errors.As(err, &parse):
		return "parse"
	default:
		return "error"
	}
}

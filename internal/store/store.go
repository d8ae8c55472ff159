// Package store defines the record store the rest of the application talks
// to. Every collection is a flat set of records addressed by business
// fields; backends live in the sqlstore and mongostore subpackages.
package store

import (
	"context"
	"errors"

	"vehicle_rental/internal/models"
)

// ErrDuplicate is returned by Insert when a storage-level unique index
// rejects the record.
var ErrDuplicate = errors.New("store: duplicate key")

// Filter is an equality match on field names (see models.Field*). An empty
// Filter matches every record.
type Filter map[string]any

// Collection is the set of operations issued against one collection.
type Collection[T any] interface {
	// FindOne returns an arbitrary matching record, or nil, nil when nothing
	// matches.
	FindOne(ctx context.Context, f Filter) (*T, error)
	Find(ctx context.Context, f Filter) ([]T, error)
	Insert(ctx context.Context, doc *T) error
	// UpdateFields sets fields on one matching record and reports how many
	// records matched (0 or 1).
	UpdateFields(ctx context.Context, f Filter, fields map[string]any) (int64, error)
	// DeleteOne removes one matching record and reports how many were
	// removed (0 or 1).
	DeleteOne(ctx context.Context, f Filter) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type IStore interface {
	Users() Collection[models.User]
	Customers() Collection[models.Customer]
	Vehicles() Collection[models.Vehicle]
	Rentals() Collection[models.Rental]
	Suppliers() Collection[models.Supplier]
	Payments() Collection[models.Payment]
	Close(ctx context.Context) error
}

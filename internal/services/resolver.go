package services

import (
	"context"

	"github.com/shopspring/decimal"

	"vehicle_rental/internal/metrics"
	"vehicle_rental/internal/models"
	"vehicle_rental/internal/store"
)

// CustomerBundle is the chain shown on the customer dashboard. Any link
// after Customer may be nil when its record is missing. RentalCount tells
// the caller how many rentals matched; Rental is an arbitrary one of them.
type CustomerBundle struct {
	Customer    *models.Customer `json:"customer"`
	Rental      *models.Rental   `json:"rental"`
	Payment     *models.Payment  `json:"payment"`
	Vehicle     *models.Vehicle  `json:"vehicle"`
	Supplier    *models.Supplier `json:"supplier"`
	RentalCount int              `json:"rental_count"`
}

type PendingPayment struct {
	PaymentID     string               `json:"payment_id"`
	CustomerName  string               `json:"customer_name"`
	CustomerEmail string               `json:"customer_email"`
	VehicleName   string               `json:"vehicle_name"`
	Amount        decimal.Decimal      `json:"amount"`
	PaymentDate   string               `json:"payment_date"`
	Status        models.PaymentStatus `json:"status"`
}

type VehicleCustomer struct {
	CustomerName  string               `json:"customer_name"`
	CustomerEmail string               `json:"customer_email"`
	RentalID      string               `json:"rental_id"`
	Amount        decimal.Decimal      `json:"amount"`
	Status        models.PaymentStatus `json:"status"`
	PaymentDate   string               `json:"payment_date"`
}

// RentalDetails carries the vehicle of a rental and that vehicle's
// supplier. The supplier is found through the vehicle, not the rental.
type RentalDetails struct {
	Rental   models.Rental    `json:"rental"`
	Vehicle  *models.Vehicle  `json:"vehicle"`
	Supplier *models.Supplier `json:"supplier"`
}

// Resolver follows soft references across collections. A reference that
// does not resolve is reported as absent, never as an error.
type Resolver struct {
	stg store.IStore
}

func NewResolver(stg store.IStore) *Resolver {
	return &Resolver{stg: stg}
}

func (r *Resolver) ResolveCustomerBundle(ctx context.Context, email string) (b CustomerBundle, err error) {
	defer func() { metrics.RecordOperation("resolver", "customer_bundle", Outcome(err)) }()

	b.Customer, err = r.stg.Customers().FindOne(ctx, store.Filter{models.FieldEmail: email})
	if err != nil || b.Customer == nil {
		return b, err
	}

	rentals, err := r.stg.Rentals().Find(ctx, store.Filter{models.FieldCustomerID: b.Customer.CustomerID})
	if err != nil {
		return b, err
	}
	b.RentalCount = len(rentals)
	if len(rentals) == 0 {
		return b, nil
	}
	b.Rental = &rentals[0]

	b.Payment, err = r.stg.Payments().FindOne(ctx, store.Filter{models.FieldRentalID: b.Rental.RentalID})
	if err != nil {
		return b, err
	}

	b.Vehicle, err = r.stg.Vehicles().FindOne(ctx, store.Filter{models.FieldVehicleID: b.Rental.VehicleID})
	if err != nil || b.Vehicle == nil {
		return b, err
	}

	b.Supplier, err = r.stg.Suppliers().FindOne(ctx, store.Filter{models.FieldVehicleID: b.Vehicle.VehicleID})
	return b, err
}

// ResolvePendingPayments drops payments whose customer or vehicle (via the
// rental) cannot be found.
func (r *Resolver) ResolvePendingPayments(ctx context.Context) (rows []PendingPayment, err error) {
	defer func() { metrics.RecordOperation("resolver", "pending_payments", Outcome(err)) }()

	pending, err := r.stg.Payments().Find(ctx, store.Filter{models.FieldStatus: models.Pending})
	if err != nil {
		return nil, err
	}

	rows = []PendingPayment{}
	for _, p := range pending {
		customer, err := r.stg.Customers().FindOne(ctx, store.Filter{models.FieldCustomerID: p.CustomerID})
		if err != nil {
			return nil, err
		}
		vehicle, err := r.vehicleOfRental(ctx, p.RentalID)
		if err != nil {
			return nil, err
		}
		if customer == nil || vehicle == nil {
			continue
		}
		rows = append(rows, PendingPayment{
			PaymentID:     p.PaymentID,
			CustomerName:  customer.Name,
			CustomerEmail: customer.Email,
			VehicleName:   vehicle.VehicleName,
			Amount:        p.Amount,
			PaymentDate:   p.PaymentDate,
			Status:        p.Status,
		})
	}
	return rows, nil
}

func (r *Resolver) vehicleOfRental(ctx context.Context, rentalID string) (*models.Vehicle, error) {
	rental, err := r.stg.Rentals().FindOne(ctx, store.Filter{models.FieldRentalID: rentalID})
	if err != nil || rental == nil {
		return nil, err
	}
	return r.stg.Vehicles().FindOne(ctx, store.Filter{models.FieldVehicleID: rental.VehicleID})
}

// ResolveCustomersForVehicle returns one row per (rental, payment) pair of
// the vehicle whose payment names a known customer.
func (r *Resolver) ResolveCustomersForVehicle(ctx context.Context, vehicleID string) (rows []VehicleCustomer, err error) {
	defer func() { metrics.RecordOperation("resolver", "customers_for_vehicle", Outcome(err)) }()

	rentals, err := r.stg.Rentals().Find(ctx, store.Filter{models.FieldVehicleID: vehicleID})
	if err != nil {
		return nil, err
	}

	rows = []VehicleCustomer{}
	for _, rental := range rentals {
		payments, err := r.stg.Payments().Find(ctx, store.Filter{models.FieldRentalID: rental.RentalID})
		if err != nil {
			return nil, err
		}
		for _, p := range payments {
			customer, err := r.stg.Customers().FindOne(ctx, store.Filter{models.FieldCustomerID: p.CustomerID})
			if err != nil {
				return nil, err
			}
			if customer == nil {
				continue
			}
			rows = append(rows, VehicleCustomer{
				CustomerName:  customer.Name,
				CustomerEmail: customer.Email,
				RentalID:      rental.RentalID,
				Amount:        p.Amount,
				Status:        p.Status,
				PaymentDate:   p.PaymentDate,
			})
		}
	}
	return rows, nil
}

// ResolveVehicleAndSupplierForRental fails with NotFoundError only when the
// rental itself is unknown.
func (r *Resolver) ResolveVehicleAndSupplierForRental(ctx context.Context, rentalID string) (d RentalDetails, err error) {
	defer func() { metrics.RecordOperation("resolver", "rental_details", Outcome(err)) }()

	rental, err := r.stg.Rentals().FindOne(ctx, store.Filter{models.FieldRentalID: rentalID})
	if err != nil {
		return d, err
	}
	if rental == nil {
		return d, &NotFoundError{Collection: "rental", Key: rentalID}
	}
	d.Rental = *rental

	d.Vehicle, err = r.stg.Vehicles().FindOne(ctx, store.Filter{models.FieldVehicleID: rental.VehicleID})
	if err != nil {
		return d, err
	}
	d.Supplier, err = r.stg.Suppliers().FindOne(ctx, store.Filter{models.FieldVehicleID: rental.VehicleID})
	return d, err
}

package services

import (
	"context"

	"github.com/go-playground/validator/v10"

	"vehicle_rental/internal/models"
	"vehicle_rental/internal/store"
)

type RentalPatch struct {
	CustomerID     *string `json:"customer_id"`
	VehicleID      *string `json:"vehicle_id"`
	NoOfDaysRented *int    `json:"no_of_days_rented"`
}

// RentalService checks the customer and vehicle references on Add only.
// Updates may point a rental at records that do not exist.
type RentalService struct {
	op  operator[models.Rental]
	stg store.IStore
}

func NewRentalService(stg store.IStore, v *validator.Validate) *RentalService {
	return &RentalService{
		stg: stg,
		op: operator[models.Rental]{
			collection:  "rental",
			coll:        stg.Rentals,
			keyField:    models.FieldRentalID,
			key:         func(r *models.Rental) string { return r.RentalID },
			lookupField: models.FieldRentalID,
			v:           v,
		},
	}
}

func (s *RentalService) Add(ctx context.Context, r *models.Rental) error {
	return s.op.add(ctx, r, []reference{
		refTo(s.stg.Customers(), "customer", models.FieldCustomerID, r.CustomerID),
		refTo(s.stg.Vehicles(), "vehicle", models.FieldVehicleID, r.VehicleID),
	})
}

func (s *RentalService) Update(ctx context.Context, rentalID string, p RentalPatch) (bool, error) {
	return s.op.update(ctx, rentalID, func(cur *models.Rental) (changeSet, error) {
		var chk patchChecker
		chk.notBlank(models.FieldCustomerID, p.CustomerID)
		chk.notBlank(models.FieldVehicleID, p.VehicleID)
		if p.NoOfDaysRented != nil {
			chk.check(models.FieldNoOfDaysRented, *p.NoOfDaysRented > 0)
		}
		if err := chk.err(); err != nil {
			return nil, err
		}

		c := changeSet{}
		setIfChanged(c, models.FieldCustomerID, p.CustomerID, cur.CustomerID)
		setIfChanged(c, models.FieldVehicleID, p.VehicleID, cur.VehicleID)
		setIfChanged(c, models.FieldNoOfDaysRented, p.NoOfDaysRented, cur.NoOfDaysRented)
		return c, nil
	})
}

func (s *RentalService) Delete(ctx context.Context, rentalID string) error {
	return s.op.delete(ctx, rentalID)
}

func (s *RentalService) List(ctx context.Context) ([]models.Rental, error) {
	return s.op.list(ctx)
}

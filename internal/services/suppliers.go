package services

import (
	"context"

	"github.com/go-playground/validator/v10"

	"vehicle_rental/internal/models"
	"vehicle_rental/internal/store"
)

type SupplierPatch struct {
	SupplierName *string `json:"supplier_name"`
	ContactInfo  *string `json:"contact_info"`
	Email        *string `json:"email"`
	VehicleID    *string `json:"vehicle_id"`
}

// SupplierService enforces one supplier per vehicle on Add. The vehicle
// itself is not required to exist.
type SupplierService struct {
	op  operator[models.Supplier]
	stg store.IStore
}

func NewSupplierService(stg store.IStore, v *validator.Validate) *SupplierService {
	return &SupplierService{
		stg: stg,
		op: operator[models.Supplier]{
			collection:  "supplier",
			coll:        stg.Suppliers,
			keyField:    models.FieldSupplierID,
			key:         func(s *models.Supplier) string { return s.SupplierID },
			lookupField: models.FieldSupplierID,
			v:           v,
		},
	}
}

func (s *SupplierService) Add(ctx context.Context, sup *models.Supplier) error {
	return s.op.add(ctx, sup, nil, s.onePerVehicle)
}

func (s *SupplierService) onePerVehicle(ctx context.Context, sup *models.Supplier) error {
	other, err := s.stg.Suppliers().FindOne(ctx, store.Filter{models.FieldVehicleID: sup.VehicleID})
	if err != nil {
		return err
	}
	if other != nil {
		return &ConflictError{Collection: "supplier for vehicle", Key: sup.VehicleID}
	}
	return nil
}

func (s *SupplierService) Update(ctx context.Context, supplierID string, p SupplierPatch) (bool, error) {
	return s.op.update(ctx, supplierID, func(cur *models.Supplier) (changeSet, error) {
		var chk patchChecker
		chk.notBlank(models.FieldSupplierName, p.SupplierName)
		chk.notBlank(models.FieldContactInfo, p.ContactInfo)
		chk.notBlank(models.FieldEmail, p.Email)
		chk.notBlank(models.FieldVehicleID, p.VehicleID)
		if err := chk.err(); err != nil {
			return nil, err
		}

		c := changeSet{}
		setIfChanged(c, models.FieldSupplierName, p.SupplierName, cur.SupplierName)
		setIfChanged(c, models.FieldContactInfo, p.ContactInfo, cur.ContactInfo)
		setIfChanged(c, models.FieldEmail, p.Email, cur.Email)
		setIfChanged(c, models.FieldVehicleID, p.VehicleID, cur.VehicleID)
		return c, nil
	})
}

func (s *SupplierService) Delete(ctx context.Context, supplierID string) error {
	return s.op.delete(ctx, supplierID)
}

func (s *SupplierService) List(ctx context.Context) ([]models.Supplier, error) {
	return s.op.list(ctx)
}

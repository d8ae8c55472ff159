package services

import (
	"context"

	"github.com/go-playground/validator/v10"

	"vehicle_rental/internal/models"
	"vehicle_rental/internal/store"
)

// VehiclePatch also covers the availability toggle the dashboard exposes
// on its own: a patch carrying only AvailabilityStatus.
type VehiclePatch struct {
	VehicleName        *string                    `json:"vehicle_name"`
	Type               *string                    `json:"type"`
	Brand              *string                    `json:"brand"`
	AvailabilityStatus *models.AvailabilityStatus `json:"availability_status"`
}

type VehicleService struct {
	op operator[models.Vehicle]
}

func NewVehicleService(stg store.IStore, v *validator.Validate) *VehicleService {
	return &VehicleService{op: operator[models.Vehicle]{
		collection:  "vehicle",
		coll:        stg.Vehicles,
		keyField:    models.FieldVehicleID,
		key:         func(v *models.Vehicle) string { return v.VehicleID },
		lookupField: models.FieldVehicleID,
		v:           v,
	}}
}

func (s *VehicleService) Add(ctx context.Context, v *models.Vehicle) error {
	return s.op.add(ctx, v, nil)
}

func (s *VehicleService) Update(ctx context.Context, vehicleID string, p VehiclePatch) (bool, error) {
	return s.op.update(ctx, vehicleID, func(cur *models.Vehicle) (changeSet, error) {
		var chk patchChecker
		chk.notBlank(models.FieldVehicleName, p.VehicleName)
		chk.notBlank(models.FieldType, p.Type)
		chk.notBlank(models.FieldBrand, p.Brand)
		if p.AvailabilityStatus != nil {
			chk.check(models.FieldAvailabilityStatus, p.AvailabilityStatus.Valid())
		}
		if err := chk.err(); err != nil {
			return nil, err
		}

		c := changeSet{}
		setIfChanged(c, models.FieldVehicleName, p.VehicleName, cur.VehicleName)
		setIfChanged(c, models.FieldType, p.Type, cur.Type)
		setIfChanged(c, models.FieldBrand, p.Brand, cur.Brand)
		setIfChanged(c, models.FieldAvailabilityStatus, p.AvailabilityStatus, cur.AvailabilityStatus)
		return c, nil
	})
}

func (s *VehicleService) Delete(ctx context.Context, vehicleID string) error {
	return s.op.delete(ctx, vehicleID)
}

func (s *VehicleService) List(ctx context.Context) ([]models.Vehicle, error) {
	return s.op.list(ctx)
}

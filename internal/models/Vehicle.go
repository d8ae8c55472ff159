package models

type AvailabilityStatus string

const (
	Available   AvailabilityStatus = "Available"
	Unavailable AvailabilityStatus = "Unavailable"
)

func (s AvailabilityStatus) Valid() bool {
	return s == Available || s == Unavailable
}

type Vehicle struct {
	ID                 uint               `gorm:"primaryKey" json:"-" bson:"-"`
	VehicleID          string             `gorm:"index" json:"vehicle_id" bson:"vehicle_id" validate:"required,notblank"`
	VehicleName        string             `json:"vehicle_name" bson:"vehicle_name" validate:"required,notblank"`
	Type               string             `json:"type" bson:"type" validate:"required,notblank"`
	Brand              string             `json:"brand" bson:"brand" validate:"required,notblank"`
	AvailabilityStatus AvailabilityStatus `json:"availability_status" bson:"availability_status" validate:"required,availability"`
}

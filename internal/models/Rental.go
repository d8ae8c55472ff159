package models

// Rental links a customer to a vehicle by business key. Neither reference
// is enforced by storage.
type Rental struct {
	ID             uint   `gorm:"primaryKey" json:"-" bson:"-"`
	RentalID       string `gorm:"index" json:"rental_id" bson:"rental_id" validate:"required,notblank"`
	CustomerID     string `gorm:"index" json:"customer_id" bson:"customer_id" validate:"required,notblank"`
	VehicleID      string `gorm:"index" json:"vehicle_id" bson:"vehicle_id" validate:"required,notblank"`
	NoOfDaysRented int    `json:"no_of_days_rented" bson:"no_of_days_rented" validate:"gt=0"`
}

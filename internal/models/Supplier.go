package models

// Supplier provides exactly one vehicle; a vehicle has at most one supplier.
type Supplier struct {
	ID           uint   `gorm:"primaryKey" json:"-" bson:"-"`
	SupplierID   string `gorm:"index" json:"supplier_id" bson:"supplier_id" validate:"required,notblank"`
	SupplierName string `json:"supplier_name" bson:"supplier_name" validate:"required,notblank"`
	ContactInfo  string `json:"contact_info" bson:"contact_info" validate:"required,notblank"`
	Email        string `json:"email" bson:"email" validate:"required,notblank"`
	VehicleID    string `gorm:"index" json:"vehicle_id" bson:"vehicle_id" validate:"required,notblank"`
}

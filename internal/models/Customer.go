package models

type Customer struct {
	ID         uint   `gorm:"primaryKey" json:"-" bson:"-"`
	CustomerID string `gorm:"index" json:"customer_id" bson:"customer_id" validate:"required,notblank"`
	Name       string `json:"name" bson:"name" validate:"required,notblank"`
	Email      string `gorm:"index" json:"email" bson:"email" validate:"required,notblank"`
	Phone      string `json:"phone" bson:"phone" validate:"required,notblank"`
}

package models

import "github.com/shopspring/decimal"

type PaymentMethod string

const (
	CreditCard PaymentMethod = "Credit Card"
	DebitCard  PaymentMethod = "Debit Card"
	PayPal     PaymentMethod = "PayPal"
	Cash       PaymentMethod = "Cash"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case CreditCard, DebitCard, PayPal, Cash:
		return true
	}
	return false
}

type PaymentStatus string

const (
	Paid    PaymentStatus = "Paid"
	Pending PaymentStatus = "Pending"
)

func (s PaymentStatus) Valid() bool {
	return s == Paid || s == Pending
}

// Payment.PaymentDate is kept as the string the client sent (normally
// YYYY-MM-DD); it is only parsed when aggregating.
type Payment struct {
	ID            uint            `gorm:"primaryKey" json:"-" bson:"-"`
	PaymentID     string          `gorm:"index" json:"payment_id" bson:"payment_id" validate:"required,notblank"`
	RentalID      string          `gorm:"index" json:"rental_id" bson:"rental_id" validate:"required,notblank"`
	CustomerID    string          `gorm:"index" json:"customer_id" bson:"customer_id" validate:"required,notblank"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2)" json:"amount" bson:"amount" validate:"gte=0"`
	PaymentDate   string          `json:"payment_date" bson:"payment_date" validate:"required,notblank"`
	PaymentMethod PaymentMethod   `json:"payment_method" bson:"payment_method" validate:"required,payment_method"`
	Status        PaymentStatus   `gorm:"index" json:"status" bson:"status" validate:"required,payment_status"`
}

package services

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"vehicle_rental/internal/models"
	"vehicle_rental/internal/store"
)

// PaymentPatch with only Status set is the dashboard's "mark as paid".
type PaymentPatch struct {
	RentalID      *string               `json:"rental_id"`
	CustomerID    *string               `json:"customer_id"`
	Amount        *decimal.Decimal      `json:"amount"`
	PaymentDate   *string               `json:"payment_date"`
	PaymentMethod *models.PaymentMethod `json:"payment_method"`
	Status        *models.PaymentStatus `json:"status"`
}

// amountPlaces is the scale of the amount column; amounts are rounded to it
// before they are compared or stored.
const amountPlaces = 2

type PaymentService struct {
	op  operator[models.Payment]
	stg store.IStore
}

func NewPaymentService(stg store.IStore, v *validator.Validate) *PaymentService {
	return &PaymentService{
		stg: stg,
		op: operator[models.Payment]{
			collection:          "payment",
			coll:                stg.Payments,
			keyField:            models.FieldPaymentID,
			key:                 func(p *models.Payment) string { return p.PaymentID },
			lookupField:         models.FieldPaymentID,
			v:                   v,
			checkRefsOnConflict: true,
		},
	}
}

// Add reports a duplicate payment_id together with the first missing
// reference, if any. Nothing is written unless every check passes.
func (s *PaymentService) Add(ctx context.Context, p *models.Payment) error {
	p.Amount = p.Amount.Round(amountPlaces)
	return s.op.add(ctx, p, []reference{
		refTo(s.stg.Customers(), "customer", models.FieldCustomerID, p.CustomerID),
		refTo(s.stg.Rentals(), "rental", models.FieldRentalID, p.RentalID),
	})
}

func (s *PaymentService) Update(ctx context.Context, paymentID string, p PaymentPatch) (bool, error) {
	if p.Amount != nil {
		rounded := p.Amount.Round(amountPlaces)
		p.Amount = &rounded
	}
	return s.op.update(ctx, paymentID, func(cur *models.Payment) (changeSet, error) {
		var chk patchChecker
		chk.notBlank(models.FieldRentalID, p.RentalID)
		chk.notBlank(models.FieldCustomerID, p.CustomerID)
		chk.notBlank(models.FieldPaymentDate, p.PaymentDate)
		if p.Amount != nil {
			chk.check(models.FieldAmount, !p.Amount.IsNegative())
		}
		if p.PaymentMethod != nil {
			chk.check(models.FieldPaymentMethod, p.PaymentMethod.Valid())
		}
		if p.Status != nil {
			chk.check(models.FieldStatus, p.Status.Valid())
		}
		if err := chk.err(); err != nil {
			return nil, err
		}

		c := changeSet{}
		setIfChanged(c, models.FieldRentalID, p.RentalID, cur.RentalID)
		setIfChanged(c, models.FieldCustomerID, p.CustomerID, cur.CustomerID)
		setDecimalIfChanged(c, models.FieldAmount, p.Amount, cur.Amount)
		setIfChanged(c, models.FieldPaymentDate, p.PaymentDate, cur.PaymentDate)
		setIfChanged(c, models.FieldPaymentMethod, p.PaymentMethod, cur.PaymentMethod)
		setIfChanged(c, models.FieldStatus, p.Status, cur.Status)
		return c, nil
	})
}

func (s *PaymentService) Delete(ctx context.Context, paymentID string) error {
	return s.op.delete(ctx, paymentID)
}

func (s *PaymentService) List(ctx context.Context) ([]models.Payment, error) {
	return s.op.list(ctx)
}

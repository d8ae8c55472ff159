package services

import (
	"context"

	"github.com/go-playground/validator/v10"

	"vehicle_rental/internal/models"
	"vehicle_rental/internal/store"
)

type CustomerPatch struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// CustomerService manages customers. Update and Delete are addressed by
// email, the key customers log in with.
type CustomerService struct {
	op operator[models.Customer]
}

func NewCustomerService(stg store.IStore, v *validator.Validate) *CustomerService {
	return &CustomerService{op: operator[models.Customer]{
		collection:  "customer",
		coll:        stg.Customers,
		keyField:    models.FieldCustomerID,
		key:         func(c *models.Customer) string { return c.CustomerID },
		lookupField: models.FieldEmail,
		v:           v,
	}}
}

func (s *CustomerService) Add(ctx context.Context, c *models.Customer) error {
	return s.op.add(ctx, c, nil)
}

func (s *CustomerService) Update(ctx context.Context, email string, p CustomerPatch) (bool, error) {
	return s.op.update(ctx, email, func(cur *models.Customer) (changeSet, error) {
		var chk patchChecker
		chk.notBlank(models.FieldName, p.Name)
		chk.notBlank(models.FieldEmail, p.Email)
		chk.notBlank(models.FieldPhone, p.Phone)
		if err := chk.err(); err != nil {
			return nil, err
		}

		c := changeSet{}
		setIfChanged(c, models.FieldName, p.Name, cur.Name)
		setIfChanged(c, models.FieldEmail, p.Email, cur.Email)
		setIfChanged(c, models.FieldPhone, p.Phone, cur.Phone)
		return c, nil
	})
}

func (s *CustomerService) Delete(ctx context.Context, email string) error {
	return s.op.delete(ctx, email)
}

func (s *CustomerService) List(ctx context.Context) ([]models.Customer, error) {
	return s.op.list(ctx)
}

package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"vehicle_rental/internal/models"
	"vehicle_rental/internal/services"
)

func TestAdd_ThenListContainsOnce(t *testing.T) {
	ctx := context.Background()
	svc, _ := newServices(t)

	require.NoError(t, svc.Customers.Add(ctx, customer("C1", "a@x.com")))

	list, err := svc.Customers.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "C1", list[0].CustomerID)
}

func TestList_EmptyIsNotNil(t *testing.T) {
	svc, _ := newServices(t)

	list, err := svc.Vehicles.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)
}

func TestAdd_DuplicateKeyConflicts(t *testing.T) {
	ctx := context.Background()
	svc, _ := newServices(t)

	require.NoError(t, svc.Vehicles.Add(ctx, vehicle("V1", "Civic")))
	err := svc.Vehicles.Add(ctx, vehicle("V1", "Corolla"))

	var conflict *services.ConflictError
	require.ErrorAs(t, err, &conflict)
	require.Equal(t, "V1", conflict.Key)

	list, err := svc.Vehicles.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Civic", list[0].VehicleName)
}

func TestAdd_MissingFields(t *testing.T) {
	svc, _ := newServices(t)

	err := svc.Customers.Add(context.Background(), &models.Customer{CustomerID: "C1"})

	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)
	require.ElementsMatch(t, []string{"name", "email", "phone"}, verr.Fields)
}

func TestAdd_InvalidEnums(t *testing.T) {
	ctx := context.Background()
	svc, _ := newServices(t)

	v := vehicle("V1", "Civic")
	v.AvailabilityStatus = "Sometimes"
	var verr *services.ValidationError
	require.ErrorAs(t, svc.Vehicles.Add(ctx, v), &verr)
	require.Equal(t, []string{"availability_status"}, verr.Fields)

	r := rental("R1", "C1", "V1")
	r.NoOfDaysRented = 0
	require.ErrorAs(t, svc.Rentals.Add(ctx, r), &verr)
	require.Equal(t, []string{"no_of_days_rented"}, verr.Fields)

	p := payment("P1", "R1", "C1", "-1", "2024-01-01", models.Paid)
	p.PaymentMethod = "Cheque"
	require.ErrorAs(t, svc.Payments.Add(ctx, p), &verr)
	require.ElementsMatch(t, []string{"amount", "payment_method"}, verr.Fields)
}

func TestRentalAdd_UnknownCustomerIsReferenceError(t *testing.T) {
	ctx := context.Background()
	svc, _ := newServices(t)
	require.NoError(t, svc.Vehicles.Add(ctx, vehicle("V1", "Civic")))

	err := svc.Rentals.Add(ctx, rental("R1", "C404", "V1"))

	var ref *services.ReferenceError
	require.ErrorAs(t, err, &ref)
	require.Equal(t, "customer", ref.Collection)

	list, err := svc.Rentals.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestPaymentAdd_ReportsConflictAndMissingReference(t *testing.T) {
	ctx := context.Background()
	svc, _ := newServices(t)
	seedChain(t, svc)

	err := svc.Payments.Add(ctx, payment("P1", "R404", "C1", "10.00", "2024-01-02", models.Pending))

	var conflict *services.ConflictError
	var ref *services.ReferenceError
	require.ErrorAs(t, err, &conflict)
	require.ErrorAs(t, err, &ref)
	require.Equal(t, "rental", ref.Collection)

	list, err := svc.Payments.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.True(t, list[0].Amount.Equal(decimal.RequireFromString("90")))
}

func TestSupplierAdd_OnePerVehicle(t *testing.T) {
	ctx := context.Background()
	svc, _ := newServices(t)

	require.NoError(t, svc.Suppliers.Add(ctx, supplier("S1", "V1")))
	err := svc.Suppliers.Add(ctx, supplier("S2", "V1"))

	var conflict *services.ConflictError
	require.ErrorAs(t, err, &conflict)
	require.Equal(t, "V1", conflict.Key)

	list, err := svc.Suppliers.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestUpdate_OnlyPresentFieldsChange(t *testing.T) {
	ctx := context.Background()
	svc, _ := newServices(t)
	require.NoError(t, svc.Customers.Add(ctx, customer("C1", "a@x.com")))

	changed, err := svc.Customers.Update(ctx, "a@x.com", services.CustomerPatch{Phone: ptr("555-0002")})
	require.NoError(t, err)
	require.True(t, changed)

	list, err := svc.Customers.List(ctx)
	require.NoError(t, err)
	require.Equal(t, "555-0002", list[0].Phone)
	require.Equal(t, "Alice", list[0].Name)
	require.Equal(t, "a@x.com", list[0].Email)
}

func TestUpdate_SameValuesIsNoChange(t *testing.T) {
	ctx := context.Background()
	svc, _ := newServices(t)
	seedChain(t, svc)

	changed, err := svc.Payments.Update(ctx, "P1", services.PaymentPatch{
		Amount: ptr(decimal.RequireFromString("90")),
		Status: ptr(models.Paid),
	})
	require.NoError(t, err)
	require.False(t, changed)

	changed, err = svc.Vehicles.Update(ctx, "V1", services.VehiclePatch{})
	require.NoError(t, err)
	require.False(t, changed)
}

func TestUpdate_MarkPaid(t *testing.T) {
	ctx := context.Background()
	svc, _ := newServices(t)
	seedChain(t, svc)
	require.NoError(t, svc.Payments.Add(ctx, payment("P2", "R1", "C1", "5", "2024-01-03", models.Pending)))

	changed, err := svc.Payments.Update(ctx, "P2", services.PaymentPatch{Status: ptr(models.Paid)})
	require.NoError(t, err)
	require.True(t, changed)

	pending, err := svc.Resolver.ResolvePendingPayments(ctx)
	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestUpdate_RejectsBlankAndInvalid(t *testing.T) {
	ctx := context.Background()
	svc, _ := newServices(t)
	seedChain(t, svc)

	_, err := svc.Rentals.Update(ctx, "R1", services.RentalPatch{CustomerID: ptr("  ")})
	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = svc.Payments.Update(ctx, "P1", services.PaymentPatch{Status: ptr(models.PaymentStatus("Refunded"))})
	require.ErrorAs(t, err, &verr)
	require.Equal(t, []string{"status"}, verr.Fields)
}

func TestUpdate_UnknownKeyIsNotFound(t *testing.T) {
	svc, _ := newServices(t)

	_, err := svc.Suppliers.Update(context.Background(), "S404", services.SupplierPatch{SupplierName: ptr("x")})
	var nf *services.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newServices(t)
	require.NoError(t, svc.Customers.Add(ctx, customer("C1", "a@x.com")))
	require.NoError(t, svc.Customers.Add(ctx, customer("C2", "b@x.com")))

	require.NoError(t, svc.Customers.Delete(ctx, "a@x.com"))

	err := svc.Customers.Delete(ctx, "a@x.com")
	var nf *services.NotFoundError
	require.True(t, errors.As(err, &nf))

	list, err := svc.Customers.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "C2", list[0].CustomerID)
}

func TestAdd_WhitespaceIsBlank(t *testing.T) {
	ctx := context.Background()
	svc, _ := newServices(t)

	err := svc.Customers.Add(ctx, &models.Customer{CustomerID: "C1", Name: "   ", Email: " ", Phone: "\t"})
	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)
	require.ElementsMatch(t, []string{"name", "email", "phone"}, verr.Fields)

	// the same value is rejected by Update
	require.NoError(t, svc.Customers.Add(ctx, customer("C1", "a@x.com")))
	_, err = svc.Customers.Update(ctx, "a@x.com", services.CustomerPatch{Name: ptr("   ")})
	require.ErrorAs(t, err, &verr)
	require.Equal(t, []string{"name"}, verr.Fields)
}

func TestRentalUpdate_AllowsDanglingReferences(t *testing.T) {
	ctx := context.Background()
	svc, _ := newServices(t)
	seedChain(t, svc)
	require.NoError(t, svc.Suppliers.Add(ctx, supplier("S1", "V1")))

	changed, err := svc.Rentals.Update(ctx, "R1", services.RentalPatch{CustomerID: ptr("C404"), VehicleID: ptr("V404")})
	require.NoError(t, err)
	require.True(t, changed)

	d, err := svc.Resolver.ResolveVehicleAndSupplierForRental(ctx, "R1")
	require.NoError(t, err)
	require.Equal(t, "C404", d.Rental.CustomerID)
	require.Nil(t, d.Vehicle)
	require.Nil(t, d.Supplier)
}

func TestPaymentAmount_RoundedToCents(t *testing.T) {
	ctx := context.Background()
	svc, _ := newServices(t)
	seedChain(t, svc)

	require.NoError(t, svc.Payments.Add(ctx, payment("P2", "R1", "C1", "90.005", "2024-01-02", models.Pending)))

	list, err := svc.Payments.List(ctx)
	require.NoError(t, err)
	var stored decimal.Decimal
	for _, p := range list {
		if p.PaymentID == "P2" {
			stored = p.Amount
		}
	}
	require.True(t, stored.Equal(decimal.RequireFromString("90.01")), stored.String())

	changed, err := svc.Payments.Update(ctx, "P2", services.PaymentPatch{Amount: ptr(decimal.RequireFromString("90.005"))})
	require.NoError(t, err)
	require.False(t, changed)
}

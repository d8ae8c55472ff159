package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"vehicle_rental/internal/models"
	"vehicle_rental/internal/services"
	"vehicle_rental/internal/store/sqlstore"
	"vehicle_rental/internal/store/storetest"
)

func newServices(t *testing.T) (*services.Services, *sqlstore.Store) {
	t.Helper()
	stg := storetest.NewSQLite(t)
	return services.New(stg), stg
}

func customer(id, email string) *models.Customer {
	return &models.Customer{CustomerID: id, Name: "Alice", Email: email, Phone: "555-0001"}
}

func vehicle(id, name string) *models.Vehicle {
	return &models.Vehicle{VehicleID: id, VehicleName: name, Type: "car", Brand: "Honda", AvailabilityStatus: models.Available}
}

func rental(id, customerID, vehicleID string) *models.Rental {
	return &models.Rental{RentalID: id, CustomerID: customerID, VehicleID: vehicleID, NoOfDaysRented: 3}
}

func payment(id, rentalID, customerID, amount, date string, status models.PaymentStatus) *models.Payment {
	return &models.Payment{
		PaymentID:     id,
		RentalID:      rentalID,
		CustomerID:    customerID,
		Amount:        decimal.RequireFromString(amount),
		PaymentDate:   date,
		PaymentMethod: models.Cash,
		Status:        status,
	}
}

func supplier(id, vehicleID string) *models.Supplier {
	return &models.Supplier{SupplierID: id, SupplierName: "Acme", ContactInfo: "555-9000", Email: "acme@x.com", VehicleID: vehicleID}
}

// seedChain inserts C1 -> R1 -> P1 on V1, the chain the dashboard shows.
func seedChain(t *testing.T, svc *services.Services) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, svc.Customers.Add(ctx, customer("C1", "a@x.com")))
	require.NoError(t, svc.Vehicles.Add(ctx, vehicle("V1", "Civic")))
	require.NoError(t, svc.Rentals.Add(ctx, rental("R1", "C1", "V1")))
	require.NoError(t, svc.Payments.Add(ctx, payment("P1", "R1", "C1", "90.00", "2024-01-01", models.Paid)))
}

func ptr[V any](v V) *V { return &v }

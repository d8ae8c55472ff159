package services

import (
	"golang.org/x/crypto/bcrypt"

	"vehicle_rental/internal/store"
)

// Services bundles every operation the HTTP and CLI layers call.
type Services struct {
	Auth      *AuthService
	Customers *CustomerService
	Vehicles  *VehicleService
	Rentals   *RentalService
	Suppliers *SupplierService
	Payments  *PaymentService
	Resolver  *Resolver
	Reports   *Reports
}

func New(stg store.IStore) *Services {
	v := NewValidator()
	return &Services{
		Auth:      NewAuthService(stg, bcrypt.DefaultCost),
		Customers: NewCustomerService(stg, v),
		Vehicles:  NewVehicleService(stg, v),
		Rentals:   NewRentalService(stg, v),
		Suppliers: NewSupplierService(stg, v),
		Payments:  NewPaymentService(stg, v),
		Resolver:  NewResolver(stg),
		Reports:   NewReports(stg),
	}
}

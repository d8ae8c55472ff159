package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"vehicle_rental/internal/middleware"
	"vehicle_rental/internal/models"
	"vehicle_rental/internal/services"
)

// The five collections share one request shape, so their handlers are
// built from these helpers. noun is used in response messages.

type adder[T any] interface {
	Add(ctx context.Context, doc *T) error
}

type updater[P any] interface {
	Update(ctx context.Context, lookup string, patch P) (bool, error)
}

type deleter interface {
	Delete(ctx context.Context, lookup string) error
}

type lister[T any] interface {
	List(ctx context.Context) ([]T, error)
}

func addRecord[T any](svc adder[T], noun string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var doc T
		if err := c.ShouldBindJSON(&doc); err != nil {
			badRequest(c, err)
			return
		}
		if err := svc.Add(c.Request.Context(), &doc); err != nil {
			respondError(c, err)
			return
		}
		middleware.Logger(c).WithField("collection", noun).Info("record added")
		c.JSON(http.StatusCreated, gin.H{"message": noun + " added successfully!", "data": doc})
	}
}

func updateRecord[P any](svc updater[P], noun, param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch P
		if err := c.ShouldBindJSON(&patch); err != nil {
			badRequest(c, err)
			return
		}
		changed, err := svc.Update(c.Request.Context(), c.Param(param), patch)
		if err != nil {
			respondError(c, err)
			return
		}
		if !changed {
			c.JSON(http.StatusOK, gin.H{"changed": false, "message": "No changes were made."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"changed": true, "message": noun + " information updated successfully!"})
	}
}

func deleteRecord(svc deleter, noun, param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param(param)); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": noun + " deleted successfully!"})
	}
}

func listRecords[T any](svc lister[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		docs, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": docs})
	}
}

func (h *Handler) AddCustomer() gin.HandlerFunc    { return addRecord[models.Customer](h.svc.Customers, "Customer") }
func (h *Handler) UpdateCustomer() gin.HandlerFunc { return updateRecord[services.CustomerPatch](h.svc.Customers, "Customer", "email") }
func (h *Handler) DeleteCustomer() gin.HandlerFunc { return deleteRecord(h.svc.Customers, "Customer", "email") }
func (h *Handler) ListCustomers() gin.HandlerFunc  { return listRecords[models.Customer](h.svc.Customers) }

func (h *Handler) AddVehicle() gin.HandlerFunc    { return addRecord[models.Vehicle](h.svc.Vehicles, "Vehicle") }
func (h *Handler) UpdateVehicle() gin.HandlerFunc { return updateRecord[services.VehiclePatch](h.svc.Vehicles, "Vehicle", "vehicle_id") }
func (h *Handler) DeleteVehicle() gin.HandlerFunc { return deleteRecord(h.svc.Vehicles, "Vehicle", "vehicle_id") }
func (h *Handler) ListVehicles() gin.HandlerFunc  { return listRecords[models.Vehicle](h.svc.Vehicles) }

func (h *Handler) AddRental() gin.HandlerFunc    { return addRecord[models.Rental](h.svc.Rentals, "Rental") }
func (h *Handler) UpdateRental() gin.HandlerFunc { return updateRecord[services.RentalPatch](h.svc.Rentals, "Rental", "rental_id") }
func (h *Handler) DeleteRental() gin.HandlerFunc { return deleteRecord(h.svc.Rentals, "Rental", "rental_id") }
func (h *Handler) ListRentals() gin.HandlerFunc  { return listRecords[models.Rental](h.svc.Rentals) }

func (h *Handler) AddSupplier() gin.HandlerFunc    { return addRecord[models.Supplier](h.svc.Suppliers, "Supplier") }
func (h *Handler) UpdateSupplier() gin.HandlerFunc { return updateRecord[services.SupplierPatch](h.svc.Suppliers, "Supplier", "supplier_id") }
func (h *Handler) DeleteSupplier() gin.HandlerFunc { return deleteRecord(h.svc.Suppliers, "Supplier", "supplier_id") }
func (h *Handler) ListSuppliers() gin.HandlerFunc  { return listRecords[models.Supplier](h.svc.Suppliers) }

func (h *Handler) AddPayment() gin.HandlerFunc    { return addRecord[models.Payment](h.svc.Payments, "Payment") }
func (h *Handler) UpdatePayment() gin.HandlerFunc { return updateRecord[services.PaymentPatch](h.svc.Payments, "Payment", "payment_id") }
func (h *Handler) DeletePayment() gin.HandlerFunc { return deleteRecord(h.svc.Payments, "Payment", "payment_id") }
func (h *Handler) ListPayments() gin.HandlerFunc  { return listRecords[models.Payment](h.svc.Payments) }

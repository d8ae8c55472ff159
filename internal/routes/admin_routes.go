package routes

import (
	"github.com/gin-gonic/gin"

	"vehicle_rental/internal/controllers"
	"vehicle_rental/internal/middleware"
	"vehicle_rental/internal/models"
)

func AdminRoutes(r *gin.Engine, h *controllers.Handler, tokens *middleware.TokenIssuer) {
	admin := r.Group("/admin")
	admin.Use(tokens.RequireAuthWithRole(models.RoleAdmin))
	{
		admin.GET("/customers", h.ListCustomers())
		admin.POST("/customers", h.AddCustomer())
		admin.PATCH("/customers/:email", h.UpdateCustomer())
		admin.DELETE("/customers/:email", h.DeleteCustomer())

		admin.GET("/vehicles", h.ListVehicles())
		admin.POST("/vehicles", h.AddVehicle())
		admin.PATCH("/vehicles/:vehicle_id", h.UpdateVehicle())
		admin.DELETE("/vehicles/:vehicle_id", h.DeleteVehicle())
		admin.GET("/vehicles/:vehicle_id/customers", h.CustomersForVehicle)

		admin.GET("/rentals", h.ListRentals())
		admin.POST("/rentals", h.AddRental())
		admin.PATCH("/rentals/:rental_id", h.UpdateRental())
		admin.DELETE("/rentals/:rental_id", h.DeleteRental())
		admin.GET("/rentals/:rental_id/details", h.RentalDetails)

		admin.GET("/suppliers", h.ListSuppliers())
		admin.POST("/suppliers", h.AddSupplier())
		admin.PATCH("/suppliers/:supplier_id", h.UpdateSupplier())
		admin.DELETE("/suppliers/:supplier_id", h.DeleteSupplier())

		admin.GET("/payments", h.ListPayments())
		admin.POST("/payments", h.AddPayment())
		admin.GET("/payments/pending", h.PendingPayments)
		admin.PATCH("/payments/:payment_id", h.UpdatePayment())
		admin.DELETE("/payments/:payment_id", h.DeletePayment())

		admin.GET("/reports/payments-by-day", h.PaymentsByDay)
		admin.GET("/reports/supplier-distribution", h.SupplierDistribution)
	}
}

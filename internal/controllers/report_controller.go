package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"vehicle_rental/internal/services"
)

func (h *Handler) PendingPayments(c *gin.Context) {
	rows, err := h.svc.Resolver.ResolvePendingPayments(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func (h *Handler) CustomersForVehicle(c *gin.Context) {
	rows, err := h.svc.Resolver.ResolveCustomersForVehicle(c.Request.Context(), c.Param("vehicle_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func (h *Handler) RentalDetails(c *gin.Context) {
	d, err := h.svc.Resolver.ResolveVehicleAndSupplierForRental(c.Request.Context(), c.Param("rental_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": d})
}

// PaymentsByDay answers with the partial series when some dates could not
// be parsed, listing the skipped payments.
func (h *Handler) PaymentsByDay(c *gin.Context) {
	series, err := h.svc.Reports.PaymentsByDay(c.Request.Context())
	var parseErr *services.ParseError
	if err != nil && !errors.As(err, &parseErr) {
		respondError(c, err)
		return
	}

	body := gin.H{"data": series, "total": services.SeriesTotal(series)}
	if parseErr != nil {
		body["skipped"] = parseErr.PaymentIDs
	}
	c.JSON(http.StatusOK, body)
}

func (h *Handler) SupplierDistribution(c *gin.Context) {
	counts, err := h.svc.Reports.SupplierCountsByVehicleName(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": services.SortSupplierCounts(counts)})
}

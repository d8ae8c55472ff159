package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"vehicle_rental/internal/models"
	"vehicle_rental/internal/services"
)

func TestPaymentsByDay(t *testing.T) {
	ctx := context.Background()
	svc, stg := newServices(t)

	// inserted straight into the store; references are irrelevant here
	for _, p := range []*models.Payment{
		payment("P1", "R1", "C1", "10.00", "2024-01-01", models.Paid),
		payment("P2", "R1", "C1", "3.00", "2024-01-02", models.Paid),
		payment("P3", "R1", "C1", "5.00", "2024-01-01T09:30:00Z", models.Pending),
	} {
		require.NoError(t, stg.Payments().Insert(ctx, p))
	}

	series, err := svc.Reports.PaymentsByDay(ctx)
	require.NoError(t, err)
	require.Len(t, series, 2)
	require.Equal(t, "2024-01-01", series[0].Date)
	require.True(t, series[0].Total.Equal(decimal.RequireFromString("15.00")))
	require.Equal(t, "2024-01-02", series[1].Date)
	require.True(t, series[1].Total.Equal(decimal.RequireFromString("3.00")))
	require.True(t, services.SeriesTotal(series).Equal(decimal.RequireFromString("18")))
}

func TestPaymentsByDay_SkipsUnparseableDates(t *testing.T) {
	ctx := context.Background()
	svc, stg := newServices(t)

	require.NoError(t, stg.Payments().Insert(ctx, payment("P1", "R1", "C1", "10", "2024-03-01", models.Paid)))
	require.NoError(t, stg.Payments().Insert(ctx, payment("P2", "R1", "C1", "7", "01/03/2024", models.Paid)))

	series, err := svc.Reports.PaymentsByDay(ctx)

	var perr *services.ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, []string{"P2"}, perr.PaymentIDs)
	require.Len(t, series, 1)
	require.True(t, series[0].Total.Equal(decimal.NewFromInt(10)))
}

func TestSupplierCountsByVehicleName(t *testing.T) {
	ctx := context.Background()
	svc, stg := newServices(t)

	require.NoError(t, svc.Vehicles.Add(ctx, vehicle("V1", "Civic")))
	require.NoError(t, svc.Vehicles.Add(ctx, vehicle("V2", "Civic")))
	require.NoError(t, svc.Vehicles.Add(ctx, vehicle("V3", "Golf")))
	require.NoError(t, svc.Suppliers.Add(ctx, supplier("S1", "V1")))
	require.NoError(t, svc.Suppliers.Add(ctx, supplier("S2", "V2")))
	require.NoError(t, svc.Suppliers.Add(ctx, supplier("S3", "V3")))
	// dangling vehicle reference, not counted
	require.NoError(t, stg.Suppliers().Insert(ctx, supplier("S4", "V404")))

	counts, err := svc.Reports.SupplierCountsByVehicleName(ctx)
	require.NoError(t, err)
	require.Equal(t, map[string]int{"Civic": 2, "Golf": 1}, counts)

	sorted := services.SortSupplierCounts(counts)
	require.Equal(t, []services.VehicleSupplierCount{
		{VehicleName: "Civic", Suppliers: 2},
		{VehicleName: "Golf", Suppliers: 1},
	}, sorted)
}

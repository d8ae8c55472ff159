package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"vehicle_rental/internal/services"
)

func newReportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print dashboard reports",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "payments",
		Short: "Total payment amount per day",
		RunE: func(cmd *cobra.Command, args []string) error {
			series, err := a.svc.Reports.PaymentsByDay(cmd.Context())
			var parseErr *services.ParseError
			if err != nil && !errors.As(err, &parseErr) {
				return err
			}
			writePaymentsByDay(cmd.OutOrStdout(), series)
			if parseErr != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning:", parseErr)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "suppliers",
		Short: "Number of suppliers per vehicle name",
		RunE: func(cmd *cobra.Command, args []string) error {
			counts, err := a.svc.Reports.SupplierCountsByVehicleName(cmd.Context())
			if err != nil {
				return err
			}
			writeSupplierCounts(cmd.OutOrStdout(), services.SortSupplierCounts(counts))
			return nil
		},
	})

	return cmd
}

func writePaymentsByDay(out io.Writer, series []services.DailyTotal) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tTOTAL")
	for _, d := range series {
		fmt.Fprintf(w, "%s\t%s\n", d.Date, d.Total.StringFixed(2))
	}
	fmt.Fprintf(w, "ALL\t%s\n", services.SeriesTotal(series).StringFixed(2))
	w.Flush()
}

func writeSupplierCounts(out io.Writer, rows []services.VehicleSupplierCount) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VEHICLE\tSUPPLIERS")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%d\n", r.VehicleName, r.Suppliers)
	}
	w.Flush()
}

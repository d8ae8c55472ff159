package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"vehicle_rental/internal/store"
)

func newResetCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every record from every collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to reset without --yes")
			}
			return resetStore(cmd.Context(), a.stg, func(name string, n int64) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d deleted\n", name, n)
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm deleting all data")
	return cmd
}

func resetStore(ctx context.Context, stg store.IStore, report func(name string, n int64)) error {
	steps := []struct {
		name string
		del  func(context.Context) (int64, error)
	}{
		{"payments", stg.Payments().DeleteAll},
		{"suppliers", stg.Suppliers().DeleteAll},
		{"rentals", stg.Rentals().DeleteAll},
		{"vehicles", stg.Vehicles().DeleteAll},
		{"customers", stg.Customers().DeleteAll},
		{"users", stg.Users().DeleteAll},
	}
	for _, s := range steps {
		n, err := s.del(ctx)
		if err != nil {
			return fmt.Errorf("reset %s: %w", s.name, err)
		}
		logrus.WithFields(logrus.Fields{"collection": s.name, "deleted": n}).Info("collection reset")
		report(s.name, n)
	}
	return nil
}

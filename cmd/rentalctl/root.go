package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"vehicle_rental/internal/config"
	"vehicle_rental/internal/logger"
	"vehicle_rental/internal/services"
	"vehicle_rental/internal/store"
)

// app is opened before every subcommand and closed after it.
type app struct {
	stg store.IStore
	svc *services.Services
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "rentalctl",
		Short:        "Maintenance commands for the vehicle rental store",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger.Setup(logger.Options{
				Level:      cfg.LogLevel,
				File:       cfg.LogFile,
				MaxSizeMB:  cfg.LogMaxSizeMB,
				MaxBackups: cfg.LogMaxBackups,
				MaxAgeDays: cfg.LogMaxAgeDays,
			})

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()
			stg, err := config.OpenStore(ctx, cfg)
			if err != nil {
				return err
			}
			a.stg = stg
			a.svc = services.New(stg)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.stg == nil {
				return nil
			}
			return a.stg.Close(context.Background())
		},
	}

	root.AddCommand(newRegisterCmd(a), newReportCmd(a), newResetCmd(a))
	return root
}

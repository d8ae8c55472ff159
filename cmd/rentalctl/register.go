package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vehicle_rental/internal/models"
	"vehicle_rental/internal/services"
)

func newRegisterCmd(a *app) *cobra.Command {
	var in services.RegisterInput
	var role string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an admin or customer account",
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Role = models.Role(role)
			user, err := a.svc.Auth.Register(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "registered %s (%s)\n", user.Username, user.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Username, "username", "", "login name")
	cmd.Flags().StringVar(&in.Password, "password", "", "password")
	cmd.Flags().StringVar(&role, "role", string(models.RoleCustomer), "admin or customer")
	cmd.Flags().StringVar(&in.Email, "email", "", "customer email, defaults to the username")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

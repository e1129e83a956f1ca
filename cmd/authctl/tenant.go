package main

import (
	"github.com/spf13/cobra"
)

type tenantCredentials struct {
	email    string
	password string
}

func newTenantCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tenant",
		Short: "Register tenants and manage tenant tokens",
	}

	cmd.AddCommand(newTenantRegisterCmd(a))
	cmd.AddCommand(newTenantLoginCmd(a))
	cmd.AddCommand(newTenantVerifyCmd(a))
	cmd.AddCommand(newTenantLogoutCmd(a))

	return cmd
}

func credentialFlags(cmd *cobra.Command, creds *tenantCredentials) {
	cmd.Flags().StringVar(&creds.email, "email", "", "tenant email")
	cmd.Flags().StringVar(&creds.password, "password", "", "tenant password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
}

func newTenantRegisterCmd(a *app) *cobra.Command {
	creds := &tenantCredentials{}
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new tenant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.client.RegisterTenant(cmd.Context(), creds.email, creds.password)
			if err != nil {
				return err
			}
			return a.render(cmd, result)
		},
	}
	credentialFlags(cmd, creds)
	return cmd
}

func newTenantLoginCmd(a *app) *cobra.Command {
	creds := &tenantCredentials{}
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in as a tenant and print its access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.client.LoginTenant(cmd.Context(), creds.email, creds.password)
			if err != nil {
				return err
			}
			return a.render(cmd, result)
		},
	}
	credentialFlags(cmd, creds)
	return cmd
}

func newTenantVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <tenant-token>",
		Short: "Verify a tenant token and print its claims",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.client.VerifyTenantToken(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.render(cmd, result)
		},
	}
}

func newTenantLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout <tenant-token>",
		Short: "Revoke a tenant token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.LogoutTenant(cmd.Context(), args[0]); err != nil {
				return err
			}
			return a.render(cmd, okResult{OK: true})
		},
	}
}

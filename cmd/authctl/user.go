package main

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"authkit/contracts/auth"
)

var errNoTenantToken = errors.New("a tenant token is required: pass --tenant-token or set AUTH_TENANT_TOKEN")

func newUserCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users of a tenant",
		Long: `Manage users of a tenant. Every user command authenticates with a tenant
token from --tenant-token or AUTH_TENANT_TOKEN.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.TenantToken == "" {
				return errNoTenantToken
			}
			return a.setup(cmd)
		},
	}
	cmd.PersistentFlags().StringVar(&a.cfg.TenantToken, "tenant-token", a.cfg.TenantToken, "tenant access token (env AUTH_TENANT_TOKEN)")

	cmd.AddCommand(newUserCreateCmd(a))
	cmd.AddCommand(newUserLoginCmd(a))
	cmd.AddCommand(newUserVerifyCmd(a))
	cmd.AddCommand(newUserLogoutCmd(a))
	cmd.AddCommand(newUserDeleteCmd(a))

	return cmd
}

// parseScope decodes JSON objects and arrays and keeps anything else as a
// plain string.
func parseScope(raw string) (any, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	if trimmed[0] != '{' && trimmed[0] != '[' {
		return raw, nil
	}
	var scope any
	if err := json.Unmarshal([]byte(trimmed), &scope); err != nil {
		return nil, errors.New("invalid --scope: not valid JSON")
	}
	return scope, nil
}

func newUserCreateCmd(a *app) *cobra.Command {
	var (
		data  auth.AuthUserData
		scope string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user under the tenant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := parseScope(scope)
			if err != nil {
				return err
			}
			data.Scope = parsed
			result, err := a.client.CreateUser(cmd.Context(), data, a.cfg.TenantToken)
			if err != nil {
				return err
			}
			return a.render(cmd, result)
		},
	}
	cmd.Flags().StringVar(&data.Email, "email", "", "user email")
	cmd.Flags().StringVar(&data.Login, "login", "", "user login")
	cmd.Flags().StringVar(&data.Password, "password", "", "user password")
	cmd.Flags().StringVar(&data.Sub, "sub", "", "subject identifier")
	cmd.Flags().StringVar(&scope, "scope", "", "scope: a string, or a JSON object or array")
	for _, name := range []string{"email", "login", "password", "sub"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newUserLoginCmd(a *app) *cobra.Command {
	var data auth.UserLoginData
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in as a user and print the access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.client.LoginUser(cmd.Context(), data, a.cfg.TenantToken)
			if err != nil {
				return err
			}
			return a.render(cmd, result)
		},
	}
	cmd.Flags().StringVar(&data.Login, "login", "", "user login")
	cmd.Flags().StringVar(&data.Password, "password", "", "user password")
	cmd.Flags().StringVar(&data.DeviceID, "device-id", "", "device the token is bound to")
	for _, name := range []string{"login", "password", "device-id"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newUserVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <user-token>",
		Short: "Verify a user token and print its claims",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.client.VerifyUserToken(cmd.Context(), args[0], a.cfg.TenantToken)
			if err != nil {
				return err
			}
			return a.render(cmd, result)
		},
	}
}

func newUserLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout <user-token>",
		Short: "Revoke a user token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.LogoutUser(cmd.Context(), args[0], a.cfg.TenantToken); err != nil {
				return err
			}
			return a.render(cmd, okResult{OK: true})
		},
	}
}

func newUserDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <login>",
		Short: "Delete a user by login",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.DeleteUser(cmd.Context(), args[0], a.cfg.TenantToken); err != nil {
				return err
			}
			return a.render(cmd, okResult{OK: true})
		},
	}
}

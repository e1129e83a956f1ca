package main

import (
	"time"

	"github.com/spf13/cobra"

	"authkit/pkg/token"
)

// inspection is token.Claims plus the local expiry verdict.
type inspection struct {
	*token.Claims
	Expired bool `json:"expired"`
}

func newTokenCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Work with tokens locally",
	}
	cmd.AddCommand(newTokenInspectCmd(a))
	return cmd
}

func newTokenInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <jwt>",
		Short: "Print a token's claims without verifying its signature",
		Long: `Print a token's claims without contacting the auth service. The signature
is NOT checked; use "tenant verify" or "user verify" for that.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			claims, err := token.Inspect(args[0])
			if err != nil {
				return err
			}
			return a.render(cmd, inspection{Claims: claims, Expired: claims.Expired(time.Now())})
		},
	}
}

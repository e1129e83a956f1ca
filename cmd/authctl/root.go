package main

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"authkit/contracts/auth"
	"authkit/internal/platform/config"
	"authkit/internal/platform/logger"
	"authkit/pkg/authclient"
	"authkit/pkg/platform/tracer"
	"authkit/pkg/requestcontext"
)

// app carries the resolved configuration and the client shared by subcommands.
type app struct {
	cfg    config.Client
	client authclient.Client
	logger *slog.Logger
}

// NewRootCmd creates the root command for authctl.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{cfg: config.FromEnv()})
}

// newRootCmd builds the command tree around a. A client already set on a is
// used as is; otherwise setup builds one from the resolved flags.
func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "authctl",
		Short: "Command line client for the auth service",
		Long: `authctl drives the auth service's tenant and user endpoints.

Settings come from flags, then AUTH_* environment variables, then a .env file
in the working directory.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.cfg.BaseURL, "base-url", a.cfg.BaseURL, "auth service base URL (env AUTH_BASE_URL)")
	flags.DurationVar(&a.cfg.Timeout, "timeout", a.cfg.Timeout, "per-request timeout (env AUTH_TIMEOUT)")
	flags.StringVar(&a.cfg.Output, "out", a.cfg.Output, "output format: json or text (env AUTH_OUT)")
	flags.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level: debug, info, warn or error (env AUTH_LOG_LEVEL)")

	cmd.AddCommand(newTenantCmd(a))
	cmd.AddCommand(newUserCmd(a))
	cmd.AddCommand(newTokenCmd(a))

	return cmd
}

// setup validates flags, builds the client and tags the command context with
// a request ID that is forwarded to the auth service.
func (a *app) setup(cmd *cobra.Command) error {
	if a.cfg.Output != config.OutputJSON && a.cfg.Output != config.OutputText {
		return fmt.Errorf("invalid --out %q: want json or text", a.cfg.Output)
	}
	level, err := logger.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	a.logger = logger.New(cmd.ErrOrStderr(), level)
	if a.client == nil {
		a.client = a.newClient()
	}

	cmd.SetContext(requestcontext.WithRequestID(cmd.Context(), uuid.NewString()))
	return nil
}

func (a *app) newClient() authclient.Client {
	return authclient.New(
		authclient.WithBaseURL(a.cfg.BaseURL),
		authclient.WithTimeout(a.cfg.Timeout),
		authclient.WithLogger(a.logger),
		authclient.WithTracer(tracer.NewOTel()),
		authclient.WithUserAgent("authctl/"+auth.ContractVersion),
	)
}

// Package main runs the in-memory auth service for local development.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"authkit/internal/platform/config"
	"authkit/internal/platform/health"
	"authkit/internal/platform/logger"
	"authkit/pkg/authclient/authtest"
)

const shutdownTimeout = 5 * time.Second

// version is set at build time.
var version = "dev"

func main() {
	cfg := config.StubServerFromEnv()

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	log := logger.New(os.Stdout, level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("auth service stopped", "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.StubServer, log *slog.Logger) error {
	svc := authtest.New(authtest.Config{
		Secret:   []byte(cfg.JWTSecret),
		TokenTTL: cfg.TokenTTL,
		Logger:   log,
	})

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	checks := health.New("auth-service", version)
	checks.RegisterCheck("token_signing", svc.SelfCheck)
	checks.Register(r)
	r.Mount("/", svc.Handler())

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("mock auth service starting", "addr", cfg.Addr, "token_ttl", cfg.TokenTTL.String())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("mock auth service shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

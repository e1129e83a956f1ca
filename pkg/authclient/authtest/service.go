// Package authtest is an in-memory fake of the auth service.
//
// It serves the same endpoints the client calls, issues HS256 tokens and keeps
// tenants, users and revocations in process memory. Use NewServer in tests, or
// run mocks/auth-service for a standalone instance.
package authtest

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/crypto/bcrypt"

	"authkit/pkg/token"
)

const (
	DefaultAudience = "authkit"
	DefaultTokenTTL = 15 * time.Minute
)

// Config configures a fake Service. Zero values select test-friendly defaults.
type Config struct {
	Secret   []byte
	Audience string
	TokenTTL time.Duration
	// BcryptCost defaults to bcrypt.MinCost so tests stay fast.
	BcryptCost int
	Logger     *slog.Logger
	Now        func() time.Time
}

// Service is the fake auth service. It is safe for concurrent use.
type Service struct {
	store      *memoryStore
	secret     []byte
	audience   string
	tokenTTL   time.Duration
	bcryptCost int
	logger     *slog.Logger
	now        func() time.Time
}

// New creates a Service with an empty store.
func New(cfg Config) *Service {
	s := &Service{
		store:      newMemoryStore(),
		secret:     cfg.Secret,
		audience:   cfg.Audience,
		tokenTTL:   cfg.TokenTTL,
		bcryptCost: cfg.BcryptCost,
		logger:     cfg.Logger,
		now:        cfg.Now,
	}
	if len(s.secret) == 0 {
		s.secret = []byte("authtest-secret")
	}
	if s.audience == "" {
		s.audience = DefaultAudience
	}
	if s.tokenTTL <= 0 {
		s.tokenTTL = DefaultTokenTTL
	}
	if s.bcryptCost == 0 {
		s.bcryptCost = bcrypt.MinCost
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Register mounts the auth service routes on r.
func (s *Service) Register(r chi.Router) {
	r.Post("/tenant", s.HandleRegisterTenant)
	r.Post("/tenant/login", s.HandleLoginTenant)
	r.Post("/tenant/verify", s.HandleVerifyTenantToken)
	r.Post("/tenant/logout", s.HandleLogoutTenant)

	r.Group(func(r chi.Router) {
		r.Use(s.requireTenant)
		r.Post("/user", s.HandleCreateUser)
		r.Delete("/user/{login}", s.HandleDeleteUser)
		r.Post("/auth", s.HandleLoginUser)
		r.Post("/auth/verify", s.HandleVerifyUserToken)
		r.Post("/auth/logout", s.HandleLogoutUser)
	})
}

// Handler returns a router serving every auth service route.
func (s *Service) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	s.Register(r)
	return r
}

// NewServer starts a Service behind an httptest.Server that is closed when
// the test ends.
func NewServer(tb testing.TB, cfg Config) (*httptest.Server, *Service) {
	tb.Helper()
	svc := New(cfg)
	srv := httptest.NewServer(svc.Handler())
	tb.Cleanup(srv.Close)
	return srv, svc
}

// TenantID returns the ID of the tenant registered with email.
func (s *Service) TenantID(email string) (string, bool) {
	t, ok := s.store.tenantByEmail(email)
	if !ok {
		return "", false
	}
	return t.ID, true
}

// UserCount returns the number of users registered under tenantID.
func (s *Service) UserCount(tenantID string) int {
	return s.store.countUsers(tenantID)
}

func (s *Service) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.InfoContext(r.Context(), "auth request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", r.Header.Get("X-Request-ID"),
			"user_agent", r.UserAgent(),
		)
	})
}

// SelfCheck signs and verifies a throwaway token with the configured secret.
func (s *Service) SelfCheck() error {
	signed, err := s.issue(&token.Claims{AccountID: "self-check", Login: "self-check"})
	if err != nil {
		return fmt.Errorf("sign self-check token: %w", err)
	}
	if _, err := s.parse(signed); err != nil {
		return fmt.Errorf("verify self-check token: %w", err)
	}
	return nil
}

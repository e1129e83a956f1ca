// Package authclient is a typed client for the tenant and user auth service.
//
// Each method maps to exactly one HTTP endpoint. Any response outside 2xx is
// returned as an *Error carrying the status code and raw body; the client never
// retries, caches, or interprets auth failures.
package authclient

//go:generate mockgen -source=client.go -destination=mocks/mocks.go -package=mocks Client,HTTPDoer

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"authkit/contracts/auth"
	"authkit/contracts/tenant"
	"authkit/pkg/authclient/metrics"
	"authkit/pkg/platform/tracer"
)

const (
	// DefaultBaseURL is the auth service address used when none is configured.
	DefaultBaseURL = "http://auth:3000"
	// DefaultTimeout bounds calls made through the default *http.Client.
	DefaultTimeout = 10 * time.Second
)

// Client is the full set of auth service operations. Code that depends on the
// auth service should accept a Client so tests can substitute mocks.MockClient.
type Client interface {
	RegisterTenant(ctx context.Context, email, password string) (*tenant.RegistrationResult, error)
	LoginTenant(ctx context.Context, email, password string) (*auth.AccessTokenResponse, error)
	VerifyTenantToken(ctx context.Context, token string) (*tenant.VerificationResult, error)
	LogoutTenant(ctx context.Context, token string) error
	CreateUser(ctx context.Context, userData auth.AuthUserData, tenantToken string) (*auth.UserRegistrationResult, error)
	LoginUser(ctx context.Context, userData auth.UserLoginData, tenantToken string) (*auth.AccessTokenResponse, error)
	VerifyUserToken(ctx context.Context, userToken, tenantToken string) (*auth.UserVerificationResult, error)
	LogoutUser(ctx context.Context, userToken, tenantToken string) error
	DeleteUser(ctx context.Context, login, tenantToken string) error
}

// HTTPDoer is the minimal interface needed from an HTTP client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// AuthClient implements Client over HTTP. It holds no mutable state and is
// safe for concurrent use.
type AuthClient struct {
	baseURL   string
	userAgent string
	timeout   time.Duration
	client    HTTPDoer
	logger    *slog.Logger
	metrics   *metrics.Metrics
	tracer    tracer.Tracer
}

var _ Client = (*AuthClient)(nil)

// Option configures the AuthClient.
type Option func(*AuthClient)

// WithBaseURL sets the auth service base URL. An empty value keeps the default.
func WithBaseURL(baseURL string) Option {
	return func(c *AuthClient) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithHTTPClient sets a custom HTTP client (for testing or custom transports).
func WithHTTPClient(client HTTPDoer) Option {
	return func(c *AuthClient) {
		c.client = client
	}
}

// WithTimeout sets the timeout of the default *http.Client.
// It has no effect when WithHTTPClient is also given.
func WithTimeout(d time.Duration) Option {
	return func(c *AuthClient) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger used for per-call debug and failure lines.
func WithLogger(logger *slog.Logger) Option {
	return func(c *AuthClient) {
		c.logger = logger
	}
}

// WithMetrics enables Prometheus instrumentation of every call.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *AuthClient) {
		c.metrics = m
	}
}

// WithTracer sets the tracer used to wrap every call in a span.
func WithTracer(t tracer.Tracer) Option {
	return func(c *AuthClient) {
		c.tracer = t
	}
}

// WithUserAgent overrides the User-Agent header sent with every call.
func WithUserAgent(ua string) Option {
	return func(c *AuthClient) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// New creates an AuthClient. Without options it talks to DefaultBaseURL,
// logs nothing and records no metrics.
func New(opts ...Option) *AuthClient {
	c := &AuthClient{
		baseURL:   DefaultBaseURL,
		userAgent: "authkit-go/" + auth.ContractVersion,
		timeout:   DefaultTimeout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	c.baseURL = strings.TrimRight(c.baseURL, "/")
	if c.client == nil {
		c.client = &http.Client{Timeout: c.timeout}
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	if c.tracer == nil {
		c.tracer = tracer.NewNoop()
	}
	return c
}

// BaseURL returns the configured auth service base URL.
func (c *AuthClient) BaseURL() string {
	return c.baseURL
}

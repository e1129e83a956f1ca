package config

import (
	"os"
	"time"

	"authkit/pkg/authclient"
)

// Output formats understood by the CLI.
const (
	OutputJSON = "json"
	OutputText = "text"
)

// Client captures the settings authctl needs to reach the auth service.
type Client struct {
	BaseURL     string
	Timeout     time.Duration
	Output      string
	LogLevel    string
	TenantToken string
}

// StubServer captures the settings of the standalone fake auth service.
type StubServer struct {
	Addr      string
	JWTSecret string
	TokenTTL  time.Duration
	LogLevel  string
}

// FromEnv builds a Client config from environment variables. Invalid values
// fall back to defaults so flags can still override them.
func FromEnv() Client {
	cfg := Client{
		BaseURL:     os.Getenv("AUTH_BASE_URL"),
		Timeout:     authclient.DefaultTimeout,
		Output:      OutputJSON,
		LogLevel:    os.Getenv("AUTH_LOG_LEVEL"),
		TenantToken: os.Getenv("AUTH_TENANT_TOKEN"),
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = authclient.DefaultBaseURL
	}
	if timeoutStr := os.Getenv("AUTH_TIMEOUT"); timeoutStr != "" {
		if d, err := time.ParseDuration(timeoutStr); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	if out := os.Getenv("AUTH_OUT"); out == OutputText {
		cfg.Output = OutputText
	}
	return cfg
}

// StubServerFromEnv builds a StubServer config from environment variables.
func StubServerFromEnv() StubServer {
	cfg := StubServer{
		Addr:      ":3000",
		JWTSecret: os.Getenv("JWT_SECRET"),
		TokenTTL:  15 * time.Minute,
		LogLevel:  os.Getenv("LOG_LEVEL"),
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}
	if cfg.JWTSecret == "" {
		// Development default; the stub never guards real accounts.
		cfg.JWTSecret = "dev-secret-key-change-in-production"
	}
	if ttlStr := os.Getenv("TOKEN_TTL"); ttlStr != "" {
		if d, err := time.ParseDuration(ttlStr); err == nil && d > 0 {
			cfg.TokenTTL = d
		}
	}
	return cfg
}

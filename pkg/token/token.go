// Package token reads the claims of tokens issued by the auth service.
//
// Inspect does not verify signatures: only the auth service can do that
// (see authclient.VerifyTenantToken and authclient.VerifyUserToken). Use it to
// display a token or to skip a round trip for a token that has already expired.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformed is returned when a string is not a parseable JWT.
var ErrMalformed = errors.New("token: malformed")

// Claims is the payload carried by tenant and user tokens.
type Claims struct {
	AccountID string `json:"id"`
	Login     string `json:"login"`
	IsTenant  bool   `json:"isTenant,omitempty"`
	Tenant    string `json:"tenant,omitempty"`
	DeviceID  string `json:"deviceId,omitempty"`
	Scope     any    `json:"scope,omitempty"`
	jwt.RegisteredClaims
}

// Inspect decodes the claims of raw without verifying its signature.
func Inspect(raw string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return claims, nil
}

// Aud returns the first audience, which is how the auth service reports it.
func (c *Claims) Aud() string {
	if len(c.Audience) == 0 {
		return ""
	}
	return c.Audience[0]
}

// IssuedAtUnix returns iat in seconds, or 0 when absent.
func (c *Claims) IssuedAtUnix() int64 {
	if c.IssuedAt == nil {
		return 0
	}
	return c.IssuedAt.Unix()
}

// ExpiresAtUnix returns exp in seconds, or 0 when absent.
func (c *Claims) ExpiresAtUnix() int64 {
	if c.ExpiresAt == nil {
		return 0
	}
	return c.ExpiresAt.Unix()
}

// Expired reports whether exp is set and not after now.
func (c *Claims) Expired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return false
	}
	return !now.Before(c.ExpiresAt.Time)
}

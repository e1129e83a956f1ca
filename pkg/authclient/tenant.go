package authclient

import (
	"context"
	"net/http"

	"authkit/contracts/auth"
	"authkit/contracts/tenant"
)

// Tenant-scoped endpoints take no Authorization header.
const (
	pathTenant       = "/tenant"
	pathTenantLogin  = "/tenant/login"
	pathTenantVerify = "/tenant/verify"
	pathTenantLogout = "/tenant/logout"
)

// RegisterTenant creates a tenant account.
func (c *AuthClient) RegisterTenant(ctx context.Context, email, password string) (*tenant.RegistrationResult, error) {
	var out tenant.RegistrationResult
	err := c.do(ctx, call{
		op:     "register_tenant",
		method: http.MethodPost,
		route:  pathTenant,
		path:   pathTenant,
		body:   tenant.Credentials{Email: email, Password: password},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// LoginTenant exchanges tenant credentials for an access token.
func (c *AuthClient) LoginTenant(ctx context.Context, email, password string) (*auth.AccessTokenResponse, error) {
	var out auth.AccessTokenResponse
	err := c.do(ctx, call{
		op:     "login_tenant",
		method: http.MethodPost,
		route:  pathTenantLogin,
		path:   pathTenantLogin,
		body:   tenant.Credentials{Email: email, Password: password},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyTenantToken returns the decoded claims of a tenant token.
func (c *AuthClient) VerifyTenantToken(ctx context.Context, token string) (*tenant.VerificationResult, error) {
	var envelope tenant.VerificationResponse
	err := c.do(ctx, call{
		op:     "verify_tenant_token",
		method: http.MethodPost,
		route:  pathTenantVerify,
		path:   pathTenantVerify,
		body:   auth.TokenRequest{Token: token},
	}, &envelope)
	if err != nil {
		return nil, err
	}
	return &envelope.Decoded, nil
}

// LogoutTenant revokes a tenant token.
func (c *AuthClient) LogoutTenant(ctx context.Context, token string) error {
	return c.do(ctx, call{
		op:     "logout_tenant",
		method: http.MethodPost,
		route:  pathTenantLogout,
		path:   pathTenantLogout,
		body:   auth.TokenRequest{Token: token},
	}, nil)
}

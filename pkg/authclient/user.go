package authclient

import (
	"context"
	"net/http"
	"net/url"

	"authkit/contracts/auth"
)

// User-scoped endpoints authenticate with the tenant token as a bearer.
const (
	pathUser         = "/user"
	pathUserLogin    = "/auth"
	pathUserVerify   = "/auth/verify"
	pathUserLogout   = "/auth/logout"
	routeUserByLogin = "/user/{login}"
)

// CreateUser registers a user under the tenant identified by tenantToken.
func (c *AuthClient) CreateUser(ctx context.Context, userData auth.AuthUserData, tenantToken string) (*auth.UserRegistrationResult, error) {
	var out auth.UserRegistrationResult
	err := c.do(ctx, call{
		op:         "create_user",
		method:     http.MethodPost,
		route:      pathUser,
		path:       pathUser,
		body:       userData,
		bearer:     tenantToken,
		acceptJSON: true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// LoginUser exchanges user credentials for an access token bound to a device.
func (c *AuthClient) LoginUser(ctx context.Context, userData auth.UserLoginData, tenantToken string) (*auth.AccessTokenResponse, error) {
	var out auth.AccessTokenResponse
	err := c.do(ctx, call{
		op:     "login_user",
		method: http.MethodPost,
		route:  pathUserLogin,
		path:   pathUserLogin,
		body:   userData,
		bearer: tenantToken,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyUserToken returns the decoded claims of a user token.
func (c *AuthClient) VerifyUserToken(ctx context.Context, userToken, tenantToken string) (*auth.UserVerificationResult, error) {
	var envelope auth.UserVerificationResponse
	err := c.do(ctx, call{
		op:     "verify_user_token",
		method: http.MethodPost,
		route:  pathUserVerify,
		path:   pathUserVerify,
		body:   auth.TokenRequest{Token: userToken},
		bearer: tenantToken,
	}, &envelope)
	if err != nil {
		return nil, err
	}
	return &envelope.Decoded, nil
}

// LogoutUser revokes a user token.
func (c *AuthClient) LogoutUser(ctx context.Context, userToken, tenantToken string) error {
	return c.do(ctx, call{
		op:     "logout_user",
		method: http.MethodPost,
		route:  pathUserLogout,
		path:   pathUserLogout,
		body:   auth.TokenRequest{Token: userToken},
		bearer: tenantToken,
	}, nil)
}

// DeleteUser removes the user with the given login. The login is sent as a
// single escaped path segment.
func (c *AuthClient) DeleteUser(ctx context.Context, login, tenantToken string) error {
	return c.do(ctx, call{
		op:     "delete_user",
		method: http.MethodDelete,
		route:  routeUserByLogin,
		path:   pathUser + "/" + url.PathEscape(login),
		bearer: tenantToken,
	}, nil)
}

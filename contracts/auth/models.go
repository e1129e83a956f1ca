// Package auth hosts the stable, minimal DTOs exchanged with the auth service
// for user registration, login and token verification. Keep these versioned
// independently from the service's internal schemas or persistence models.
package auth

// ContractVersion identifies the contract schema version for compatibility checks.
// Bump on breaking changes to the shapes below; consumers can pin or roll forward.
const ContractVersion = "v0.1.0"

// RegistrationResult is the shape shared by tenant and user registration.
type RegistrationResult struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Login string `json:"login"`
}

// VerificationResult carries the claims common to every decoded token.
type VerificationResult struct {
	ID    string `json:"id"`
	Login string `json:"login"`
	JTI   string `json:"jti"`
	IAT   int64  `json:"iat"`
	Aud   string `json:"aud"`
}

// UserRegistrationResult is returned when a tenant creates a user.
// Scope is opaque to the client and passed through as decoded JSON.
type UserRegistrationResult struct {
	RegistrationResult
	Tenant string `json:"tenant"`
	Sub    string `json:"sub"`
	Scope  any    `json:"scope,omitempty"`
}

// UserVerificationResult is the decoded payload of a user token.
type UserVerificationResult struct {
	VerificationResult
	DeviceID string `json:"deviceId"`
	Sub      string `json:"sub"`
	Exp      int64  `json:"exp"`
	Scope    any    `json:"scope,omitempty"`
}

// UserVerificationResponse is the envelope returned by /auth/verify.
type UserVerificationResponse struct {
	Decoded UserVerificationResult `json:"decoded"`
}

// AuthUserData is the input to user creation.
type AuthUserData struct {
	Email    string `json:"email"`
	Login    string `json:"login"`
	Password string `json:"password"`
	Sub      string `json:"sub"`
	Scope    any    `json:"scope,omitempty"`
}

// UserLoginData is the input to user login.
type UserLoginData struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	DeviceID string `json:"deviceId"`
}

// AccessTokenResponse is returned by tenant and user login.
type AccessTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// TokenRequest is the body of verify and logout calls.
type TokenRequest struct {
	Token string `json:"token"`
}

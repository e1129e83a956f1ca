// Package tenant hosts the stable, minimal DTOs exchanged with the auth service
// for tenant registration, login and token verification.
package tenant

import "authkit/contracts/auth"

// ContractVersion identifies the contract schema version for compatibility checks.
// Bump on breaking changes to the shapes below; consumers can pin or roll forward.
const ContractVersion = auth.ContractVersion

// Credentials is the body of tenant registration and login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegistrationResult is returned by tenant registration. It adds nothing to
// the shared registration shape.
type RegistrationResult struct {
	auth.RegistrationResult
}

// VerificationResult is the decoded payload of a tenant token.
type VerificationResult struct {
	auth.VerificationResult
	IsTenant bool `json:"isTenant"`
}

// VerificationResponse is the envelope returned by /tenant/verify.
type VerificationResponse struct {
	Decoded VerificationResult `json:"decoded"`
}

package authtest

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"authkit/pkg/token"
)

var errInvalidToken = newAPIError(codeUnauthorized, "invalid token")

// issue signs claims after stamping jti, aud, iat and exp.
func (s *Service) issue(claims *token.Claims) (string, error) {
	now := s.now()
	claims.RegisteredClaims.ID = uuid.NewString()
	claims.Audience = jwt.ClaimStrings{s.audience}
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.tokenTTL))
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// parse verifies signature, audience, expiry and revocation.
func (s *Service) parse(raw string) (*token.Claims, error) {
	claims := &token.Claims{}
	_, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, newAPIError(codeUnauthorized, "token expired")
		}
		return nil, errInvalidToken
	}
	if s.store.isRevoked(claims.RegisteredClaims.ID) {
		return nil, newAPIError(codeUnauthorized, "token revoked")
	}
	return claims, nil
}

func (s *Service) parseTenantToken(raw string) (*token.Claims, error) {
	claims, err := s.parse(raw)
	if err != nil {
		return nil, err
	}
	if !claims.IsTenant {
		return nil, newAPIError(codeForbidden, "not a tenant token")
	}
	if _, ok := s.store.tenantByID(claims.AccountID); !ok {
		return nil, errInvalidToken
	}
	return claims, nil
}

func (s *Service) parseUserToken(raw, tenantID string) (*token.Claims, error) {
	claims, err := s.parse(raw)
	if err != nil {
		return nil, err
	}
	if claims.IsTenant || claims.Tenant != tenantID {
		return nil, errInvalidToken
	}
	return claims, nil
}

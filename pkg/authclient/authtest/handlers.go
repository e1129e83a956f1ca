package authtest

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"authkit/contracts/auth"
	"authkit/contracts/tenant"
	"authkit/pkg/token"
)

type ctxKey int

const tenantClaimsKey ctxKey = iota

// logoutResponse mirrors the acknowledgement the real service sends.
type logoutResponse struct {
	Result int `json:"result"`
}

// HandleRegisterTenant creates a tenant whose login is its email.
func (s *Service) HandleRegisterTenant(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAndValidate[tenantCredentialsRequest](w, r)
	if !ok {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "hash tenant password failed", "error", err)
		writeError(w, err)
		return
	}

	t := &tenantRecord{ID: uuid.NewString(), Email: req.Email, PasswordHash: hash}
	if !s.store.createTenant(t) {
		writeError(w, newAPIError(codeConflict, "tenant already exists"))
		return
	}

	writeJSON(w, http.StatusCreated, tenant.RegistrationResult{
		RegistrationResult: auth.RegistrationResult{ID: t.ID, Email: t.Email, Login: t.Email},
	})
}

// HandleLoginTenant issues a tenant token for valid credentials.
func (s *Service) HandleLoginTenant(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAndValidate[tenantCredentialsRequest](w, r)
	if !ok {
		return
	}

	t, found := s.store.tenantByEmail(req.Email)
	if !found || bcrypt.CompareHashAndPassword(t.PasswordHash, []byte(req.Password)) != nil {
		writeError(w, newAPIError(codeUnauthorized, "invalid credentials"))
		return
	}

	s.writeToken(w, r, &token.Claims{AccountID: t.ID, Login: t.Email, IsTenant: true})
}

// HandleVerifyTenantToken returns the decoded claims of a tenant token.
func (s *Service) HandleVerifyTenantToken(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAndValidate[tokenRequest](w, r)
	if !ok {
		return
	}

	claims, err := s.parseTenantToken(req.Token)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tenant.VerificationResponse{
		Decoded: tenant.VerificationResult{
			VerificationResult: verificationResult(claims),
			IsTenant:           true,
		},
	})
}

// HandleLogoutTenant revokes a tenant token.
func (s *Service) HandleLogoutTenant(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAndValidate[tokenRequest](w, r)
	if !ok {
		return
	}

	claims, err := s.parseTenantToken(req.Token)
	if err != nil {
		writeError(w, err)
		return
	}
	s.store.revoke(claims.RegisteredClaims.ID)

	writeJSON(w, http.StatusOK, logoutResponse{Result: 1})
}

// HandleCreateUser registers a user under the calling tenant.
func (s *Service) HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	tenantClaims := tenantFromContext(r.Context())
	req, ok := decodeAndValidate[createUserRequest](w, r)
	if !ok {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "hash user password failed", "error", err)
		writeError(w, err)
		return
	}

	u := &userRecord{
		ID:           uuid.NewString(),
		TenantID:     tenantClaims.AccountID,
		Email:        req.Email,
		Login:        req.Login,
		Sub:          req.Sub,
		Scope:        req.Scope,
		PasswordHash: hash,
	}
	if !s.store.createUser(u) {
		writeError(w, newAPIError(codeConflict, "user already exists"))
		return
	}

	writeJSON(w, http.StatusCreated, auth.UserRegistrationResult{
		RegistrationResult: auth.RegistrationResult{ID: u.ID, Email: u.Email, Login: u.Login},
		Tenant:             u.TenantID,
		Sub:                u.Sub,
		Scope:              u.Scope,
	})
}

// HandleLoginUser issues a user token bound to the given device.
func (s *Service) HandleLoginUser(w http.ResponseWriter, r *http.Request) {
	tenantClaims := tenantFromContext(r.Context())
	req, ok := decodeAndValidate[loginUserRequest](w, r)
	if !ok {
		return
	}

	u, found := s.store.user(tenantClaims.AccountID, req.Login)
	if !found || bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(req.Password)) != nil {
		writeError(w, newAPIError(codeUnauthorized, "invalid credentials"))
		return
	}

	claims := &token.Claims{
		AccountID: u.ID,
		Login:     u.Login,
		Tenant:    u.TenantID,
		DeviceID:  req.DeviceID,
		Scope:     u.Scope,
	}
	claims.Subject = u.Sub
	s.writeToken(w, r, claims)
}

// HandleVerifyUserToken returns the decoded claims of a user token issued
// under the calling tenant.
func (s *Service) HandleVerifyUserToken(w http.ResponseWriter, r *http.Request) {
	tenantClaims := tenantFromContext(r.Context())
	req, ok := decodeAndValidate[tokenRequest](w, r)
	if !ok {
		return
	}

	claims, err := s.parseUserToken(req.Token, tenantClaims.AccountID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, auth.UserVerificationResponse{
		Decoded: auth.UserVerificationResult{
			VerificationResult: verificationResult(claims),
			DeviceID:           claims.DeviceID,
			Sub:                claims.Subject,
			Exp:                claims.ExpiresAtUnix(),
			Scope:              claims.Scope,
		},
	})
}

// HandleLogoutUser revokes a user token issued under the calling tenant.
func (s *Service) HandleLogoutUser(w http.ResponseWriter, r *http.Request) {
	tenantClaims := tenantFromContext(r.Context())
	req, ok := decodeAndValidate[tokenRequest](w, r)
	if !ok {
		return
	}

	claims, err := s.parseUserToken(req.Token, tenantClaims.AccountID)
	if err != nil {
		writeError(w, err)
		return
	}
	s.store.revoke(claims.RegisteredClaims.ID)

	writeJSON(w, http.StatusOK, logoutResponse{Result: 1})
}

// HandleDeleteUser removes a user of the calling tenant by login.
func (s *Service) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	tenantClaims := tenantFromContext(r.Context())
	login, err := loginParam(r)
	if err != nil || login == "" {
		writeError(w, newAPIError(codeBadRequest, "invalid login"))
		return
	}

	if !s.store.deleteUser(tenantClaims.AccountID, login) {
		writeError(w, newAPIError(codeNotFound, "user not found"))
		return
	}

	writeJSON(w, http.StatusOK, logoutResponse{Result: 1})
}

// loginParam returns the decoded {login} segment. chi matches on RawPath when
// the request carries one, leaving the segment escaped; otherwise the segment
// comes from the already decoded Path and must not be unescaped again.
func loginParam(r *http.Request) (string, error) {
	login := chi.URLParam(r, "login")
	if r.URL.RawPath == "" {
		return login, nil
	}
	return url.PathUnescape(login)
}

// requireTenant authenticates user-scoped routes with a tenant bearer token.
func (s *Service) requireTenant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !found || raw == "" {
			writeError(w, newAPIError(codeUnauthorized, "missing bearer token"))
			return
		}
		claims, err := s.parseTenantToken(raw)
		if err != nil {
			writeError(w, err)
			return
		}
		ctx := context.WithValue(r.Context(), tenantClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func tenantFromContext(ctx context.Context) *token.Claims {
	claims, _ := ctx.Value(tenantClaimsKey).(*token.Claims)
	return claims
}

func (s *Service) writeToken(w http.ResponseWriter, r *http.Request, claims *token.Claims) {
	signed, err := s.issue(claims)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "sign token failed", "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, auth.AccessTokenResponse{AccessToken: signed})
}

func verificationResult(claims *token.Claims) auth.VerificationResult {
	return auth.VerificationResult{
		ID:    claims.AccountID,
		Login: claims.Login,
		JTI:   claims.RegisteredClaims.ID,
		IAT:   claims.IssuedAtUnix(),
		Aud:   claims.Aud(),
	}
}

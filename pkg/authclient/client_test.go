package authclient_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"authkit/contracts/auth"
	"authkit/contracts/tenant"
	"authkit/pkg/authclient"
	"authkit/pkg/requestcontext"
)

// Fixture bodies returned by the recording server, keyed by "METHOD path".
var fixtures = map[string]string{
	"POST /tenant":        `{"id":"2349389432","email":"test@test.com","login":"test@test.com"}`,
	"POST /tenant/login":  `{"accessToken":"jwt-token"}`,
	"POST /tenant/verify": `{"decoded":{"id":"UUID","aud":"Example","iat":1243234,"isTenant":true,"jti":"1232123","login":"test@test.com"}}`,
	"POST /tenant/logout": `{"result":1}`,
	"POST /user":          `{"email":"test@test.com","id":"UUID","login":"test@test.com","scope":"admin","sub":"123","tenant":"tenant"}`,
	"POST /auth":          `{"accessToken":"user-jwt-token"}`,
	"POST /auth/verify":   `{"decoded":{"aud":"Example","deviceId":"123","exp":123456,"iat":123456,"id":"UUID","jti":"1231","login":"test@test.com","scope":"admin","sub":"123"}}`,
	"POST /auth/logout":   `{"result":1}`,

	"DELETE /user/test@test.com": `{"result":1}`,
}

type recordedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

// recordingServer answers every route from fixtures and remembers requests.
type recordingServer struct {
	mu       sync.Mutex
	requests []recordedRequest
	status   int
	body     string
}

func (rs *recordingServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	key := r.Method + " " + r.URL.EscapedPath()

	rs.mu.Lock()
	rs.requests = append(rs.requests, recordedRequest{
		Method: r.Method,
		Path:   r.URL.EscapedPath(),
		Header: r.Header.Clone(),
		Body:   body,
	})
	status, override := rs.status, rs.body
	rs.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, override)
		return
	}
	fixture, ok := fixtures[key]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error":"not_found"}`)
		return
	}
	_, _ = io.WriteString(w, fixture)
}

func (rs *recordingServer) respondWith(status int, body string) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.status = status
	rs.body = body
}

func (rs *recordingServer) last() recordedRequest {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.requests[len(rs.requests)-1]
}

type ClientSuite struct {
	suite.Suite
	recorder *recordingServer
	server   *httptest.Server
	logs     *bytes.Buffer
	client   *authclient.AuthClient
	ctx      context.Context
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientSuite))
}

func (s *ClientSuite) SetupTest() {
	s.recorder = &recordingServer{}
	s.server = httptest.NewServer(s.recorder)
	s.logs = &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(s.logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s.client = authclient.New(
		authclient.WithBaseURL(s.server.URL),
		authclient.WithLogger(logger),
	)
	s.ctx = context.Background()
}

func (s *ClientSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientSuite) requireJSONBody(req recordedRequest, want string) {
	s.T().Helper()
	s.JSONEq(want, string(req.Body))
	s.Equal("application/json", req.Header.Get("Content-Type"))
}

func (s *ClientSuite) TestRegisterTenant() {
	result, err := s.client.RegisterTenant(s.ctx, "test@test.com", "Password1")
	s.Require().NoError(err)

	s.Equal(&tenant.RegistrationResult{RegistrationResult: auth.RegistrationResult{
		ID:    "2349389432",
		Email: "test@test.com",
		Login: "test@test.com",
	}}, result)

	req := s.recorder.last()
	s.Equal(http.MethodPost, req.Method)
	s.Equal("/tenant", req.Path)
	s.requireJSONBody(req, `{"email":"test@test.com","password":"Password1"}`)
	s.Empty(req.Header.Get("Authorization"))
}

func (s *ClientSuite) TestLoginTenant() {
	result, err := s.client.LoginTenant(s.ctx, "test@test.com", "Password1")
	s.Require().NoError(err)

	s.Equal(&auth.AccessTokenResponse{AccessToken: "jwt-token"}, result)

	req := s.recorder.last()
	s.Equal("/tenant/login", req.Path)
	s.requireJSONBody(req, `{"email":"test@test.com","password":"Password1"}`)
	s.Empty(req.Header.Get("Authorization"))
}

func (s *ClientSuite) TestVerifyTenantTokenUnwrapsDecoded() {
	result, err := s.client.VerifyTenantToken(s.ctx, "jwt-token")
	s.Require().NoError(err)

	s.Equal(&tenant.VerificationResult{
		VerificationResult: auth.VerificationResult{
			ID:    "UUID",
			Login: "test@test.com",
			JTI:   "1232123",
			IAT:   1243234,
			Aud:   "Example",
		},
		IsTenant: true,
	}, result)

	req := s.recorder.last()
	s.Equal("/tenant/verify", req.Path)
	s.requireJSONBody(req, `{"token":"jwt-token"}`)
	s.Empty(req.Header.Get("Authorization"))
}

func (s *ClientSuite) TestLogoutTenant() {
	s.Require().NoError(s.client.LogoutTenant(s.ctx, "jwt-token"))

	req := s.recorder.last()
	s.Equal("/tenant/logout", req.Path)
	s.requireJSONBody(req, `{"token":"jwt-token"}`)
	s.Empty(req.Header.Get("Authorization"))
}

func (s *ClientSuite) TestCreateUser() {
	result, err := s.client.CreateUser(s.ctx, auth.AuthUserData{
		Email:    "test@test.com",
		Login:    "test@test.com",
		Password: "Password1",
		Scope:    "admin",
		Sub:      "123",
	}, "jwt-token")
	s.Require().NoError(err)

	s.Equal(&auth.UserRegistrationResult{
		RegistrationResult: auth.RegistrationResult{ID: "UUID", Email: "test@test.com", Login: "test@test.com"},
		Tenant:             "tenant",
		Sub:                "123",
		Scope:              "admin",
	}, result)

	req := s.recorder.last()
	s.Equal(http.MethodPost, req.Method)
	s.Equal("/user", req.Path)
	s.requireJSONBody(req, `{"email":"test@test.com","login":"test@test.com","password":"Password1","scope":"admin","sub":"123"}`)
	s.Equal("Bearer jwt-token", req.Header.Get("Authorization"))
	s.Equal("application/json", req.Header.Get("Accept"))
}

func (s *ClientSuite) TestCreateUserOmitsNilScope() {
	_, err := s.client.CreateUser(s.ctx, auth.AuthUserData{
		Email:    "test@test.com",
		Login:    "test@test.com",
		Password: "Password1",
		Sub:      "123",
	}, "jwt-token")
	s.Require().NoError(err)

	s.requireJSONBody(s.recorder.last(), `{"email":"test@test.com","login":"test@test.com","password":"Password1","sub":"123"}`)
}

func (s *ClientSuite) TestLoginUser() {
	result, err := s.client.LoginUser(s.ctx, auth.UserLoginData{
		DeviceID: "123",
		Login:    "test@test.com",
		Password: "Password1",
	}, "jwt-token")
	s.Require().NoError(err)

	s.Equal(&auth.AccessTokenResponse{AccessToken: "user-jwt-token"}, result)

	req := s.recorder.last()
	s.Equal("/auth", req.Path)
	s.requireJSONBody(req, `{"deviceId":"123","login":"test@test.com","password":"Password1"}`)
	s.Equal("Bearer jwt-token", req.Header.Get("Authorization"))
}

func (s *ClientSuite) TestVerifyUserTokenUnwrapsDecoded() {
	result, err := s.client.VerifyUserToken(s.ctx, "user-jwt-token", "jwt-token")
	s.Require().NoError(err)

	s.Equal(&auth.UserVerificationResult{
		VerificationResult: auth.VerificationResult{
			ID:    "UUID",
			Login: "test@test.com",
			JTI:   "1231",
			IAT:   123456,
			Aud:   "Example",
		},
		DeviceID: "123",
		Sub:      "123",
		Exp:      123456,
		Scope:    "admin",
	}, result)

	req := s.recorder.last()
	s.Equal("/auth/verify", req.Path)
	s.requireJSONBody(req, `{"token":"user-jwt-token"}`)
	s.Equal("Bearer jwt-token", req.Header.Get("Authorization"))
}

func (s *ClientSuite) TestLogoutUser() {
	s.Require().NoError(s.client.LogoutUser(s.ctx, "user-jwt-token", "jwt-token"))

	req := s.recorder.last()
	s.Equal("/auth/logout", req.Path)
	s.requireJSONBody(req, `{"token":"user-jwt-token"}`)
	s.Equal("Bearer jwt-token", req.Header.Get("Authorization"))
}

func (s *ClientSuite) TestDeleteUser() {
	s.Require().NoError(s.client.DeleteUser(s.ctx, "test@test.com", "jwt-token"))

	req := s.recorder.last()
	s.Equal(http.MethodDelete, req.Method)
	s.Equal("/user/test@test.com", req.Path)
	s.Equal("Bearer jwt-token", req.Header.Get("Authorization"))
	s.Empty(req.Body)
	s.Empty(req.Header.Get("Content-Type"))
}

func (s *ClientSuite) TestDeleteUserEscapesLogin() {
	s.recorder.respondWith(http.StatusOK, `{"result":1}`)

	s.Require().NoError(s.client.DeleteUser(s.ctx, "a/b c", "jwt-token"))

	s.Equal("/user/a%2Fb%20c", s.recorder.last().Path)
}

func (s *ClientSuite) TestNon2xxFailsEveryOperation() {
	s.recorder.respondWith(http.StatusUnauthorized, `{"error":"unauthorized"}`)

	ops := map[string]func() error{
		"RegisterTenant": func() error {
			_, err := s.client.RegisterTenant(s.ctx, "test@test.com", "Password1")
			return err
		},
		"LoginTenant": func() error {
			_, err := s.client.LoginTenant(s.ctx, "test@test.com", "Password1")
			return err
		},
		"VerifyTenantToken": func() error {
			_, err := s.client.VerifyTenantToken(s.ctx, "jwt-token")
			return err
		},
		"LogoutTenant": func() error {
			return s.client.LogoutTenant(s.ctx, "jwt-token")
		},
		"CreateUser": func() error {
			_, err := s.client.CreateUser(s.ctx, auth.AuthUserData{Login: "test@test.com"}, "jwt-token")
			return err
		},
		"LoginUser": func() error {
			_, err := s.client.LoginUser(s.ctx, auth.UserLoginData{Login: "test@test.com"}, "jwt-token")
			return err
		},
		"VerifyUserToken": func() error {
			_, err := s.client.VerifyUserToken(s.ctx, "user-jwt-token", "jwt-token")
			return err
		},
		"LogoutUser": func() error {
			return s.client.LogoutUser(s.ctx, "user-jwt-token", "jwt-token")
		},
		"DeleteUser": func() error {
			return s.client.DeleteUser(s.ctx, "test@test.com", "jwt-token")
		},
	}

	for name, op := range ops {
		s.Run(name, func() {
			err := op()
			s.Require().Error(err)
			s.True(authclient.HasCode(err, authclient.CodeStatus))

			status, ok := authclient.StatusCode(err)
			s.True(ok)
			s.Equal(http.StatusUnauthorized, status)
			s.JSONEq(`{"error":"unauthorized"}`, string(authclient.ResponseBody(err)))
		})
	}
}

func (s *ClientSuite) TestServerErrorCarriesBody() {
	s.recorder.respondWith(http.StatusInternalServerError, "boom")

	result, err := s.client.LoginTenant(s.ctx, "test@test.com", "Password1")
	s.Nil(result)
	s.Require().Error(err)

	var clientErr *authclient.Error
	s.Require().ErrorAs(err, &clientErr)
	s.Equal("login_tenant", clientErr.Op)
	s.Equal(http.MethodPost, clientErr.Method)
	s.Equal("/tenant/login", clientErr.Path)
	s.Equal(http.StatusInternalServerError, clientErr.StatusCode)
	s.Equal([]byte("boom"), clientErr.Body)
	s.Contains(err.Error(), "status 500")
}

func (s *ClientSuite) TestAny2xxIsSuccess() {
	s.recorder.respondWith(http.StatusCreated, `{"id":"t-1","email":"a@b.co","login":"a@b.co"}`)

	result, err := s.client.RegisterTenant(s.ctx, "a@b.co", "Password1")
	s.Require().NoError(err)
	s.Equal("t-1", result.ID)

	s.recorder.respondWith(http.StatusNoContent, "")
	s.NoError(s.client.LogoutTenant(s.ctx, "jwt-token"))
}

func (s *ClientSuite) TestMalformedBodyIsDecodeError() {
	s.recorder.respondWith(http.StatusOK, `{"accessToken":`)

	_, err := s.client.LoginTenant(s.ctx, "test@test.com", "Password1")
	s.Require().Error(err)
	s.True(authclient.HasCode(err, authclient.CodeDecode))

	status, ok := authclient.StatusCode(err)
	s.True(ok)
	s.Equal(http.StatusOK, status)
}

func (s *ClientSuite) TestVoidOperationsIgnoreBody() {
	s.recorder.respondWith(http.StatusOK, `not json`)

	s.NoError(s.client.LogoutTenant(s.ctx, "jwt-token"))
	s.NoError(s.client.LogoutUser(s.ctx, "user-jwt-token", "jwt-token"))
	s.NoError(s.client.DeleteUser(s.ctx, "test@test.com", "jwt-token"))
}

func (s *ClientSuite) TestForwardsRequestIDAndUserAgent() {
	ctx := requestcontext.WithRequestID(s.ctx, "req-42")

	_, err := s.client.LoginTenant(ctx, "test@test.com", "Password1")
	s.Require().NoError(err)

	req := s.recorder.last()
	s.Equal("req-42", req.Header.Get("X-Request-ID"))
	s.Equal("authkit-go/"+auth.ContractVersion, req.Header.Get("User-Agent"))

	_, err = s.client.LoginTenant(s.ctx, "test@test.com", "Password1")
	s.Require().NoError(err)
	s.Empty(s.recorder.last().Header.Get("X-Request-ID"))
}

func (s *ClientSuite) TestLogsNeverContainSecrets() {
	ctx := requestcontext.WithRequestID(s.ctx, "req-7")
	_, err := s.client.LoginTenant(ctx, "test@test.com", "Password1")
	s.Require().NoError(err)
	_, err = s.client.VerifyUserToken(ctx, "user-jwt-token", "jwt-token")
	s.Require().NoError(err)

	logs := s.logs.String()
	s.NotContains(logs, "Password1")
	s.NotContains(logs, "jwt-token")

	var line map[string]any
	first, _, _ := bytes.Cut(s.logs.Bytes(), []byte("\n"))
	s.Require().NoError(json.Unmarshal(first, &line))
	s.Equal("auth service call", line["msg"])
	s.Equal("login_tenant", line["operation"])
	s.Equal("req-7", line["request_id"])
	s.EqualValues(http.StatusOK, line["status"])
}

func (s *ClientSuite) TestFailureIsLoggedAtWarn() {
	s.recorder.respondWith(http.StatusForbidden, `{"error":"forbidden"}`)

	err := s.client.DeleteUser(s.ctx, "test@test.com", "jwt-token")
	s.Require().Error(err)

	var line map[string]any
	s.Require().NoError(json.Unmarshal(bytes.TrimSpace(s.logs.Bytes()), &line))
	s.Equal("WARN", line["level"])
	s.Equal("auth service call failed", line["msg"])
	s.Equal("/user/{login}", line["route"])
	s.EqualValues(http.StatusForbidden, line["status"])
}

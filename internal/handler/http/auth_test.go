// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-keeper/internal/service"
	"github.com/MKhiriev/go-vault-keeper/internal/store"
	"github.com/MKhiriev/go-vault-keeper/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, email, hashedPassword string) (models.User, models.Vault, error)
	loginFn        func(ctx context.Context, email, hashedPassword string) (models.User, models.Vault, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, email, hashedPassword string) (models.User, models.Vault, error) {
	return m.registerUserFn(ctx, email, hashedPassword)
}

func (m *mockAuthService) Login(ctx context.Context, email, hashedPassword string) (models.User, models.Vault, error) {
	return m.loginFn(ctx, email, hashedPassword)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithAuth builds a Handler with the given AuthService mock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	return newTestHandler(t, &service.Services{AuthService: auth})
}

// credentialsBody serialises registration/login credentials to a JSON body.
func credentialsBody(t *testing.T, email, hashedPassword string) string {
	t.Helper()
	b, err := json.Marshal(models.RegisterRequest{Email: email, HashedPassword: hashedPassword})
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

// tokenCookie extracts the session cookie set on the response, or nil.
func tokenCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == "token" {
			return c
		}
	}
	return nil
}

const (
	testEmail          = "alice@example.com"
	testHashedPassword = "client-side-hash"
)

var stubVault = models.Vault{
	UserID:  7,
	Salt:    strings.Repeat("ab", 64),
	Data:    "opaque-ciphertext",
	Version: 1,
}

// ─────────────────────────────────────────────
// register — success
// ─────────────────────────────────────────────

// TestRegister_Success verifies that a valid registration request results in
// 201 Created, a response carrying the token, vault, and salt, and a session
// cookie with the signed token.
func TestRegister_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, email, _ string) (models.User, models.Vault, error) {
			return models.User{UserID: 7, Email: email}, stubVault, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken(signedToken), nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(credentialsBody(t, testEmail, testHashedPassword)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, signedToken, resp.AccessToken)
	assert.Equal(t, stubVault.Data, resp.Vault)
	assert.Equal(t, stubVault.Salt, resp.Salt)

	cookie := tokenCookie(rec)
	require.NotNil(t, cookie)
	assert.Equal(t, signedToken, cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

// ─────────────────────────────────────────────
// register — invalid input
// ─────────────────────────────────────────────

// TestRegister_InvalidJSON verifies that a malformed request body results in
// 400 Bad Request.
func TestRegister_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader("{invalid json}"))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON was passed")
}

// TestRegister_EmptyBody verifies that an empty request body results in
// 400 Bad Request.
func TestRegister_EmptyBody(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(""))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestRegister_MalformedEmail verifies that the request validator rejects a
// non-address email before the service is reached.
func TestRegister_MalformedEmail(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(credentialsBody(t, "not-an-email", testHashedPassword)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// register — RegisterUser errors
// ─────────────────────────────────────────────

// TestRegister_EmailAlreadyExists verifies that store.ErrEmailAlreadyExists
// maps to 409 Conflict.
func TestRegister_EmailAlreadyExists(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _, _ string) (models.User, models.Vault, error) {
			return models.User{}, models.Vault{}, store.ErrEmailAlreadyExists
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(credentialsBody(t, testEmail, testHashedPassword)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "email already exists")
}

// TestRegister_WrappedEmailAlreadyExists verifies that a wrapped
// store.ErrEmailAlreadyExists is still matched via errors.Is.
func TestRegister_WrappedEmailAlreadyExists(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _, _ string) (models.User, models.Vault, error) {
			return models.User{}, models.Vault{}, errors.Join(errors.New("outer"), store.ErrEmailAlreadyExists)
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(credentialsBody(t, testEmail, testHashedPassword)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

// TestRegister_InvalidDataProvided verifies that service.ErrInvalidDataProvided
// maps to 400 Bad Request.
func TestRegister_InvalidDataProvided(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _, _ string) (models.User, models.Vault, error) {
			return models.User{}, models.Vault{}, service.ErrInvalidDataProvided
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(credentialsBody(t, testEmail, testHashedPassword)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid data provided")
}

// TestRegister_UnexpectedError verifies that an unknown error from RegisterUser
// maps to 500 Internal Server Error.
func TestRegister_UnexpectedError(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _, _ string) (models.User, models.Vault, error) {
			return models.User{}, models.Vault{}, errors.New("db connection lost")
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(credentialsBody(t, testEmail, testHashedPassword)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// TestRegister_CreateTokenFails verifies that a token creation failure after
// successful registration maps to 500 Internal Server Error.
func TestRegister_CreateTokenFails(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, email, _ string) (models.User, models.Vault, error) {
			return models.User{UserID: 7, Email: email}, stubVault, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, errors.New("signing key unavailable")
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(credentialsBody(t, testEmail, testHashedPassword)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// login — success
// ─────────────────────────────────────────────

// TestLogin_Success verifies that a valid login request results in 200 OK,
// a response carrying the token, vault, and salt, and a session cookie.
func TestLogin_Success(t *testing.T) {
	const signedToken = "login.jwt.token"

	auth := &mockAuthService{
		loginFn: func(_ context.Context, email, _ string) (models.User, models.Vault, error) {
			return models.User{UserID: 7, Email: email}, stubVault, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken(signedToken), nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/users/login", strings.NewReader(credentialsBody(t, testEmail, testHashedPassword)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, signedToken, resp.AccessToken)
	assert.Equal(t, stubVault.Data, resp.Vault)
	assert.Equal(t, stubVault.Salt, resp.Salt)

	cookie := tokenCookie(rec)
	require.NotNil(t, cookie)
	assert.Equal(t, signedToken, cookie.Value)
}

// ─────────────────────────────────────────────
// login — invalid input
// ─────────────────────────────────────────────

// TestLogin_InvalidJSON verifies that a malformed request body results in
// 400 Bad Request.
func TestLogin_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/users/login", strings.NewReader("{bad json"))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON was passed")
}

// TestLogin_MalformedEmail verifies that credentials rejected by the validator
// fail exactly like wrong credentials: 401 with the uniform message.
func TestLogin_MalformedEmail(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/users/login", strings.NewReader(credentialsBody(t, "not-an-email", testHashedPassword)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid email or password")
}

// ─────────────────────────────────────────────
// login — Login errors
// ─────────────────────────────────────────────

// TestLogin_InvalidCredentials verifies that service.ErrInvalidCredentials
// maps to 401 Unauthorized with the uniform message.
func TestLogin_InvalidCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.User, models.Vault, error) {
			return models.User{}, models.Vault{}, service.ErrInvalidCredentials
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/users/login", strings.NewReader(credentialsBody(t, testEmail, testHashedPassword)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid email or password")
}

// TestLogin_WrappedInvalidCredentials verifies that a wrapped
// service.ErrInvalidCredentials is still matched via errors.Is.
func TestLogin_WrappedInvalidCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.User, models.Vault, error) {
			return models.User{}, models.Vault{}, errors.Join(errors.New("outer"), service.ErrInvalidCredentials)
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/users/login", strings.NewReader(credentialsBody(t, testEmail, testHashedPassword)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// TestLogin_UnexpectedError verifies that an unknown error from Login
// maps to 500 Internal Server Error.
func TestLogin_UnexpectedError(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.User, models.Vault, error) {
			return models.User{}, models.Vault{}, errors.New("unexpected db error")
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/users/login", strings.NewReader(credentialsBody(t, testEmail, testHashedPassword)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// TestLogin_CreateTokenFails verifies that a token creation failure after
// successful login maps to 500 Internal Server Error.
func TestLogin_CreateTokenFails(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, email, _ string) (models.User, models.Vault, error) {
			return models.User{UserID: 7, Email: email}, stubVault, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, errors.New("signing key unavailable")
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/users/login", strings.NewReader(credentialsBody(t, testEmail, testHashedPassword)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

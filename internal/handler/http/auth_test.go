package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Elayaraja1609/TodoApplication/internal/service"
	"github.com/Elayaraja1609/TodoApplication/internal/store"
	"github.com/Elayaraja1609/TodoApplication/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubSession(userID int64) models.AuthSession {
	return models.AuthSession{
		Token:        "signed.jwt.token",
		RefreshToken: "opaque-refresh-token",
		ExpiresAt:    time.Now().Add(time.Hour),
		User:         models.Profile{ID: userID, Email: "alice@example.com"},
	}
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, request models.RegisterRequest) (models.AuthSession, error) {
			assert.Equal(t, "alice@example.com", request.Email)
			return stubSession(42), nil
		},
	}

	h := newTestHandler(t, &service.Services{AuthService: auth})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", jsonBody(t, models.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret",
	}))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var session models.AuthSession
	decodeResponse(t, rec, &session)
	assert.Equal(t, "signed.jwt.token", session.Token)
	assert.Equal(t, int64(42), session.User.ID)
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: &mockAuthService{}})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_MissingEmailFailsValidation(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: &mockAuthService{}})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", jsonBody(t, models.RegisterRequest{
		Password: "secret",
	}))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_EmailAlreadyExists(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _ models.RegisterRequest) (models.AuthSession, error) {
			return models.AuthSession{}, store.ErrEmailAlreadyExists
		},
	}

	h := newTestHandler(t, &service.Services{AuthService: auth})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", jsonBody(t, models.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret",
	}))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)

	var body map[string]string
	decodeResponse(t, rec, &body)
	assert.Equal(t, "user with this email already exists", body["message"])
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, request models.LoginRequest) (models.AuthSession, error) {
			assert.Equal(t, "alice@example.com", request.Email)
			return stubSession(42), nil
		},
	}

	h := newTestHandler(t, &service.Services{AuthService: auth})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", jsonBody(t, models.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret",
	}))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var session models.AuthSession
	decodeResponse(t, rec, &session)
	assert.Equal(t, "opaque-refresh-token", session.RefreshToken)
}

func TestLogin_WrongCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.LoginRequest) (models.AuthSession, error) {
			return models.AuthSession{}, service.ErrWrongPassword
		},
	}

	h := newTestHandler(t, &service.Services{AuthService: auth})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", jsonBody(t, models.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	}))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]string
	decodeResponse(t, rec, &body)
	assert.Equal(t, "invalid email or password", body["message"])
}

// ─────────────────────────────────────────────
// refresh
// ─────────────────────────────────────────────

func TestRefresh_Success(t *testing.T) {
	auth := &mockAuthService{
		refreshFn: func(_ context.Context, request models.RefreshRequest) (models.AuthSession, error) {
			assert.Equal(t, "expired.jwt.token", request.Token)
			return stubSession(42), nil
		},
	}

	h := newTestHandler(t, &service.Services{AuthService: auth})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", jsonBody(t, models.RefreshRequest{
		Token:        "expired.jwt.token",
		RefreshToken: "opaque-refresh-token",
	}))
	rec := httptest.NewRecorder()

	h.refresh(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRefresh_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		refreshFn: func(_ context.Context, _ models.RefreshRequest) (models.AuthSession, error) {
			return models.AuthSession{}, service.ErrTokenIsExpiredOrInvalid
		},
	}

	h := newTestHandler(t, &service.Services{AuthService: auth})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", jsonBody(t, models.RefreshRequest{
		Token:        "forged.jwt.token",
		RefreshToken: "opaque-refresh-token",
	}))
	rec := httptest.NewRecorder()

	h.refresh(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ─────────────────────────────────────────────
// pin
// ─────────────────────────────────────────────

func TestSetupPin_Success(t *testing.T) {
	auth := &mockAuthService{
		setupPinFn: func(_ context.Context, userID int64, request models.SetupPinRequest) error {
			assert.Equal(t, int64(42), userID)
			assert.Equal(t, "1234", request.Pin)
			return nil
		},
	}

	h := newTestHandler(t, &service.Services{AuthService: auth})
	req := authedRequest(http.MethodPost, "/api/v1/auth/pin/setup", jsonBody(t, models.SetupPinRequest{
		Pin:        "1234",
		ConfirmPin: "1234",
	}), 42)
	rec := httptest.NewRecorder()

	h.setupPin(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	decodeResponse(t, rec, &body)
	assert.Equal(t, "PIN setup successfully", body["message"])
}

func TestSetupPin_TooShort(t *testing.T) {
	auth := &mockAuthService{
		setupPinFn: func(_ context.Context, _ int64, _ models.SetupPinRequest) error {
			return service.ErrPinTooShort
		},
	}

	h := newTestHandler(t, &service.Services{AuthService: auth})
	req := authedRequest(http.MethodPost, "/api/v1/auth/pin/setup", jsonBody(t, models.SetupPinRequest{
		Pin:        "12",
		ConfirmPin: "12",
	}), 42)
	rec := httptest.NewRecorder()

	h.setupPin(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChangePin_WrongCurrentPin(t *testing.T) {
	auth := &mockAuthService{
		changePinFn: func(_ context.Context, _ int64, _ models.ChangePinRequest) error {
			return service.ErrWrongPin
		},
	}

	h := newTestHandler(t, &service.Services{AuthService: auth})
	req := authedRequest(http.MethodPost, "/api/v1/auth/pin/change", jsonBody(t, models.ChangePinRequest{
		CurrentPin: "9999",
		NewPin:     "5678",
		ConfirmPin: "5678",
	}), 42)
	rec := httptest.NewRecorder()

	h.changePin(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]string
	decodeResponse(t, rec, &body)
	assert.Equal(t, "current PIN is incorrect", body["message"])
}

func TestVerifyPin_ReportsOutcome(t *testing.T) {
	auth := &mockAuthService{
		verifyPinFn: func(_ context.Context, _ int64, request models.VerifyPinRequest) (bool, error) {
			return request.Pin == "1234", nil
		},
	}

	h := newTestHandler(t, &service.Services{AuthService: auth})

	req := authedRequest(http.MethodPost, "/api/v1/auth/pin/verify", jsonBody(t, models.VerifyPinRequest{Pin: "1234"}), 42)
	rec := httptest.NewRecorder()
	h.verifyPin(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]bool
	decodeResponse(t, rec, &body)
	assert.True(t, body["valid"])

	req = authedRequest(http.MethodPost, "/api/v1/auth/pin/verify", jsonBody(t, models.VerifyPinRequest{Pin: "9999"}), 42)
	rec = httptest.NewRecorder()
	h.verifyPin(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, "a mismatch is a normal outcome, not an error")
	decodeResponse(t, rec, &body)
	assert.False(t, body["valid"])
}

func TestHasPin(t *testing.T) {
	auth := &mockAuthService{
		hasPinFn: func(_ context.Context, userID int64) (bool, error) {
			return userID == 42, nil
		},
	}

	h := newTestHandler(t, &service.Services{AuthService: auth})
	req := authedRequest(http.MethodGet, "/api/v1/auth/pin/has", nil, 42)
	rec := httptest.NewRecorder()

	h.hasPin(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]bool
	decodeResponse(t, rec, &body)
	assert.True(t, body["hasPin"])
}

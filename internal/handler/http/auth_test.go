package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chronos-hr/attendance-backend-go/internal/config"
	"github.com/chronos-hr/attendance-backend-go/internal/pkg/jwt"
	authService "github.com/chronos-hr/attendance-backend-go/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	handlerTestSecret    = "test-secret-key-for-jwt"
	handlerTestAccessExp = "1h"
	handlerTestEmail     = "admin@example.com"
	handlerTestPassword  = "password123"
)

func createAuthHandler(t *testing.T) AuthHandler {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(handlerTestPassword), bcrypt.MinCost)
	require.NoError(t, err)

	jwtSvc := jwt.NewJWTService(handlerTestSecret, handlerTestAccessExp)
	authSvc := authService.NewAuthService(config.AdminConfig{
		Email:        handlerTestEmail,
		PasswordHash: string(hash),
	}, jwtSvc)

	return NewAuthHandler(authSvc)
}

func postLogin(t *testing.T, handler AuthHandler, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch v := body.(type) {
	case string:
		buf.WriteString(v)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(v))
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.Login(rec, req)
	return rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	handler := createAuthHandler(t)

	rec := postLogin(t, handler, map[string]string{
		"email":    handlerTestEmail,
		"password": handlerTestPassword,
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			AccessToken string `json:"access_token"`
			TokenType   string `json:"token_type"`
			ExpiresAt   int64  `json:"expires_at"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Data.AccessToken)
	assert.Equal(t, "Bearer", resp.Data.TokenType)
	assert.Greater(t, resp.Data.ExpiresAt, int64(0))
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	handler := createAuthHandler(t)

	rec := postLogin(t, handler, map[string]string{
		"email":    handlerTestEmail,
		"password": "not-the-password",
	})

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "UNAUTHORIZED", resp.Error.Code)
}

func TestAuthHandler_Login_UnknownEmail(t *testing.T) {
	handler := createAuthHandler(t)

	rec := postLogin(t, handler, map[string]string{
		"email":    "someone-else@example.com",
		"password": handlerTestPassword,
	})

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Login_MalformedJSON(t *testing.T) {
	handler := createAuthHandler(t)

	rec := postLogin(t, handler, "{not json")

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	handler := createAuthHandler(t)

	rec := postLogin(t, handler, map[string]string{"email": "", "password": ""})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp struct {
		Error struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Contains(t, resp.Error.Details, "email")
	assert.Contains(t, resp.Error.Details, "password")
}

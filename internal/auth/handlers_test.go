package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/BlueMoonStudio/BM-Backend/internal/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests cover the paths that never touch the database: login input
// validation and the whoami check, which only needs the cookie and codec.

func newHandler() *auth.Handler {
	return &auth.Handler{
		Codec:  auth.NewCodec(testSecret),
		Cookie: &auth.CookieAdapter{Secure: false},
	}
}

func TestLoginRejectsMissingFields(t *testing.T) {
	h := newHandler()

	for _, body := range []string{`{}`, `{"username":"admin"}`, `{"password":"x"}`, `not-json`} {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.LoginHandler(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
		assert.Contains(t, rec.Body.String(), "Usuario y contraseña requeridos")
	}
}

func TestLogoutAlwaysSucceeds(t *testing.T) {
	h := newHandler()

	// No cookie on the request — logout is idempotent.
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()

	h.LogoutHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)

	c := sessionCookie(t, rec)
	assert.Empty(t, c.Value)
	assert.Negative(t, c.MaxAge)
}

func TestCheckWithoutCookie(t *testing.T) {
	h := newHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/check", nil)
	rec := httptest.NewRecorder()

	h.CheckHandler(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"authenticated":false`)
}

func TestCheckWithValidCookie(t *testing.T) {
	h := newHandler()

	token, err := h.Codec.Issue(7, "luna")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/check", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
	rec := httptest.NewRecorder()

	h.CheckHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Authenticated bool `json:"authenticated"`
		User          struct {
			ID       int    `json:"id"`
			Username string `json:"username"`
			Exp      int64  `json:"exp"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Authenticated)
	assert.Equal(t, 7, body.User.ID)
	assert.Equal(t, "luna", body.User.Username)
	assert.Greater(t, body.User.Exp, time.Now().Unix())
}

func TestCheckWithExpiredCookie(t *testing.T) {
	h := newHandler()

	expired := signClaims(t, testSecret, jwt.SigningMethodHS256, nil, time.Now().Add(-time.Minute))

	req := httptest.NewRequest(http.MethodGet, "/api/check", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: expired})
	rec := httptest.NewRecorder()

	h.CheckHandler(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"authenticated":false`)
}

func TestCheckWithExpiryLessCookie(t *testing.T) {
	h := newHandler()

	// Correctly signed but missing the exp claim. The codec rejects it, so
	// the handler never reaches for claims.ExpiresAt.
	claims := auth.Claims{
		UserID:   7,
		Username: "luna",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/check", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
	rec := httptest.NewRecorder()

	h.CheckHandler(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"authenticated":false`)
}

func TestCheckWithForeignSignature(t *testing.T) {
	h := newHandler()

	foreign := signClaims(t, "not-our-secret", jwt.SigningMethodHS256, nil, time.Now().Add(time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/api/check", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: foreign})
	rec := httptest.NewRecorder()

	h.CheckHandler(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"authenticated":false`)
}

package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"shopfront/internal/auth"
	"shopfront/internal/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminHandler() *AdminHandler {
	authenticator := auth.New(config.AdminConfig{
		Username:  "admin",
		Password:  "admin123",
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
	})
	return NewAdminHandler(authenticator, zerolog.Nop())
}

func TestAdminHandler_Login(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		handler := newAdminHandler()

		req := httptest.NewRequest(http.MethodPost, "/api/admin/login",
			strings.NewReader(`{"username":"admin","password":"admin123"}`))
		w := httptest.NewRecorder()
		handler.Login(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Success bool   `json:"success"`
			Token   string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.NotEmpty(t, body.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		handler := newAdminHandler()

		req := httptest.NewRequest(http.MethodPost, "/api/admin/login",
			strings.NewReader(`{"username":"admin","password":"wrong"}`))
		w := httptest.NewRecorder()
		handler.Login(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Invalid credentials", body["message"])
	})

	t.Run("missing body fields", func(t *testing.T) {
		handler := newAdminHandler()

		req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{}`))
		w := httptest.NewRecorder()
		handler.Login(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		handler := newAdminHandler()

		req := httptest.NewRequest(http.MethodGet, "/api/admin/login", nil)
		w := httptest.NewRecorder()
		handler.Login(w, req)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		assert.Equal(t, "POST", w.Header().Get("Allow"))
	})
}

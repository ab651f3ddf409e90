package handler

import (
	"errors"
	"net/http"

	"shopfront/internal/auth"
	"shopfront/internal/model"

	"github.com/rs/zerolog"
)

// AdminHandler handles /api/admin/login requests.
type AdminHandler struct {
	auth   *auth.Authenticator
	logger zerolog.Logger
}

// loginRequest is the admin login payload.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse marks a successful login and carries the session
// token the admin UI must present on catalogue mutations.
type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(auth *auth.Authenticator, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		auth:   auth,
		logger: logger.With().Str("handler", "admin").Logger(),
	}
}

// Login handles POST /api/admin/login.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, r, http.MethodPost)
		return
	}

	var req loginRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		respondError(w, err, "Invalid data", h.logger)
		return
	}

	token, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			h.logger.Warn().Str("username", req.Username).Msg("admin login rejected")
			writeMessage(w, http.StatusUnauthorized, model.ErrInvalidCredentials.Message)
			return
		}
		respondError(w, err, "Invalid data", h.logger)
		return
	}

	h.logger.Info().Str("username", req.Username).Msg("admin logged in")
	writeJSON(w, http.StatusOK, loginResponse{Success: true, Token: token})
}

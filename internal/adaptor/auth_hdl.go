package adaptor

import (
	"errors"
	"net/http"
	"time"

	"taxi-dispatch/internal/dto/request"
	"taxi-dispatch/internal/usecase"
	"taxi-dispatch/pkg/backend"
	"taxi-dispatch/pkg/token"
	"taxi-dispatch/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	responder
	service usecase.AuthService
}

func NewAuthHandler(service usecase.AuthService, cookieName string, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		responder: responder{log: log.With(zap.String("handler", "auth")), cookieName: cookieName},
		service:   service,
	}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if !bindJSON(w, r, &req) {
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		// A 401 here means bad credentials, not an expired session.
		var statusErr *backend.StatusError
		if errors.As(err, &statusErr) {
			h.log.Warn("Login rejected by backend",
				zap.String("email", req.Email),
				zap.Int("status", statusErr.StatusCode))
			utils.ResponseError(w, statusErr.StatusCode, statusErr.Message)
			return
		}
		h.handleServiceError(w, err, "login")
		return
	}

	utils.SetTokenCookie(w, r, h.cookieName, result.Token, tokenExpiry(result.Token))
	utils.ResponseSuccess(w, "Login successful", result)
}

// tokenExpiry is the exp claim, or zero for a session cookie.
func tokenExpiry(raw string) time.Time {
	claims, err := token.Decode(raw)
	if err != nil || claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	utils.ClearTokenCookie(w, h.cookieName)
	utils.ResponseSuccess(w, "Logout successful", nil)
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.Me(r.Context())
	if err != nil {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	utils.ResponseSuccess(w, "success", user)
}

// Profile handles GET /api/auth/profile
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.Profile(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "success", profile)
}

// ChangePassword handles POST /api/auth/change-password
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req request.ChangePasswordRequest
	if !bindJSON(w, r, &req) {
		return
	}

	result, err := h.service.ChangePassword(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "change password")
		return
	}

	utils.ResponseSuccess(w, "Password changed successfully", result)
}

// SetupStatus handles GET /api/setup/status
func (h *AuthHandler) SetupStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.service.SetupStatus(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get setup status")
		return
	}

	utils.ResponseSuccess(w, "success", status)
}

// CreateAdmin handles POST /api/setup/create-admin
func (h *AuthHandler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req request.CreateAdminRequest
	if !bindJSON(w, r, &req) {
		return
	}

	result, err := h.service.CreateAdmin(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create admin")
		return
	}

	utils.ResponseCreated(w, "Admin account created", result)
}

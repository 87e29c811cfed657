package adaptor

import (
	"net/http"

	"taxi-dispatch/internal/dto/request"
	"taxi-dispatch/internal/usecase"
	"taxi-dispatch/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AdminHandler struct {
	responder
	service usecase.AdminService
}

func NewAdminHandler(service usecase.AdminService, cookieName string, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		responder: responder{log: log.With(zap.String("handler", "admin")), cookieName: cookieName},
		service:   service,
	}
}

// ListUsers handles GET /api/users
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list users")
		return
	}

	utils.ResponseSuccess(w, "success", users)
}

// CreateUser handles POST /api/users
func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req request.CreateUserRequest
	if !bindJSON(w, r, &req) {
		return
	}

	user, err := h.service.CreateUser(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create user")
		return
	}

	utils.ResponseCreated(w, "User created successfully", user)
}

// UpdateUser handles PATCH /api/users/{id}
func (h *AdminHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateUserRequest
	if !bindJSON(w, r, &req) {
		return
	}

	user, err := h.service.UpdateUser(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.handleServiceError(w, err, "update user")
		return
	}

	utils.ResponseSuccess(w, "User updated successfully", user)
}

// DeleteUser handles DELETE /api/users/{id}
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.DeleteUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, err, "delete user")
		return
	}

	utils.ResponseSuccess(w, "User deleted successfully", result)
}

// SetTempPassword handles POST /api/users/{id}/temp-password
func (h *AdminHandler) SetTempPassword(w http.ResponseWriter, r *http.Request) {
	var req request.TempPasswordRequest
	if !bindJSON(w, r, &req) {
		return
	}

	result, err := h.service.SetTempPassword(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.handleServiceError(w, err, "set temporary password")
		return
	}

	utils.ResponseSuccess(w, "Temporary password set", result)
}

// AuditLogs handles GET /api/audit-logs
func (h *AdminHandler) AuditLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.service.AuditLogs(r.Context(), r.URL.Query())
	if err != nil {
		h.handleServiceError(w, err, "list audit logs")
		return
	}

	utils.ResponseSuccess(w, "success", logs)
}

// AuditStats handles GET /api/audit-logs/stats
func (h *AdminHandler) AuditStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.AuditStats(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get audit stats")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}

package adaptor

import (
	"net/http"

	"taxi-dispatch/internal/dto/request"
	"taxi-dispatch/internal/usecase"
	"taxi-dispatch/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DriverHandler struct {
	responder
	service usecase.DriverService
}

func NewDriverHandler(service usecase.DriverService, cookieName string, log *zap.Logger) *DriverHandler {
	return &DriverHandler{
		responder: responder{log: log.With(zap.String("handler", "driver")), cookieName: cookieName},
		service:   service,
	}
}

// List handles GET /api/drivers
func (h *DriverHandler) List(w http.ResponseWriter, r *http.Request) {
	drivers, err := h.service.List(r.Context(), r.URL.Query())
	if err != nil {
		h.handleServiceError(w, err, "list drivers")
		return
	}

	utils.ResponseSuccess(w, "success", drivers)
}

// View handles GET /api/drivers/view
func (h *DriverHandler) View(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.View(r.Context(), parseDriverListQuery(r))
	if err != nil {
		h.handleServiceError(w, err, "view drivers")
		return
	}

	setFilterSignature(w, r)
	utils.ResponseSuccess(w, "success", result)
}

// Create handles POST /api/drivers
func (h *DriverHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.DriverRequest
	if !bindJSON(w, r, &req) {
		return
	}

	driver, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create driver")
		return
	}

	utils.ResponseCreated(w, "Driver created successfully", driver)
}

// Get handles GET /api/drivers/{id}
func (h *DriverHandler) Get(w http.ResponseWriter, r *http.Request) {
	driver, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, err, "get driver")
		return
	}

	utils.ResponseSuccess(w, "success", driver)
}

// Update handles PUT /api/drivers/{id}
func (h *DriverHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.DriverUpdateRequest
	if !bindJSON(w, r, &req) {
		return
	}

	driver, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.handleServiceError(w, err, "update driver")
		return
	}

	utils.ResponseSuccess(w, "Driver updated successfully", driver)
}

// Delete handles DELETE /api/drivers/{id}
func (h *DriverHandler) Delete(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, err, "delete driver")
		return
	}

	utils.ResponseSuccess(w, "Driver deleted successfully", result)
}

// Available handles GET /api/drivers/available
func (h *DriverHandler) Available(w http.ResponseWriter, r *http.Request) {
	drivers, err := h.service.Available(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list available drivers")
		return
	}

	utils.ResponseSuccess(w, "success", drivers)
}

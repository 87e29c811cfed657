package adaptor

import (
	"net/http"
	"strconv"

	"taxi-dispatch/internal/dto/request"
	"taxi-dispatch/internal/usecase"
	"taxi-dispatch/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const defaultNearestLimit = 5

type VehicleHandler struct {
	responder
	service usecase.VehicleService
}

func NewVehicleHandler(service usecase.VehicleService, cookieName string, log *zap.Logger) *VehicleHandler {
	return &VehicleHandler{
		responder: responder{log: log.With(zap.String("handler", "vehicle")), cookieName: cookieName},
		service:   service,
	}
}

// List handles GET /api/vehicles
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.service.List(r.Context(), r.URL.Query())
	if err != nil {
		h.handleServiceError(w, err, "list vehicles")
		return
	}

	utils.ResponseSuccess(w, "success", vehicles)
}

// View handles GET /api/vehicles/view
func (h *VehicleHandler) View(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.View(r.Context(), parseVehicleListQuery(r))
	if err != nil {
		h.handleServiceError(w, err, "view vehicles")
		return
	}

	setFilterSignature(w, r)
	utils.ResponseSuccess(w, "success", result)
}

// Create handles POST /api/vehicles
func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.VehicleRequest
	if !bindJSON(w, r, &req) {
		return
	}

	vehicle, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create vehicle")
		return
	}

	utils.ResponseCreated(w, "Vehicle created successfully", vehicle)
}

// Get handles GET /api/vehicles/{id}
func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	vehicle, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, err, "get vehicle")
		return
	}

	utils.ResponseSuccess(w, "success", vehicle)
}

// Update handles PUT /api/vehicles/{id}
func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.VehicleUpdateRequest
	if !bindJSON(w, r, &req) {
		return
	}

	vehicle, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.handleServiceError(w, err, "update vehicle")
		return
	}

	utils.ResponseSuccess(w, "Vehicle updated successfully", vehicle)
}

// Delete handles DELETE /api/vehicles/{id}
func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, err, "delete vehicle")
		return
	}

	utils.ResponseSuccess(w, "Vehicle deleted successfully", result)
}

// Available handles GET /api/vehicles/available
func (h *VehicleHandler) Available(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.service.Available(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list available vehicles")
		return
	}

	utils.ResponseSuccess(w, "success", vehicles)
}

// Nearest handles GET /api/vehicles/nearest?lat=&lng=&limit=
func (h *VehicleHandler) Nearest(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	lat, latErr := strconv.ParseFloat(query.Get("lat"), 64)
	lng, lngErr := strconv.ParseFloat(query.Get("lng"), 64)
	if latErr != nil || lngErr != nil {
		utils.ResponseBadRequest(w, "lat and lng are required", nil)
		return
	}

	req := request.NearestVehiclesRequest{
		Lat:   lat,
		Lng:   lng,
		Limit: utils.ParseInt(query.Get("limit"), defaultNearestLimit),
	}
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	vehicles, err := h.service.Nearest(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "find nearest vehicles")
		return
	}

	utils.ResponseSuccess(w, "success", vehicles)
}

// Suggest handles GET /api/vehicles/suggest?bookingId=
func (h *VehicleHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.service.Suggest(r.Context(), r.URL.Query().Get("bookingId"))
	if err != nil {
		h.handleServiceError(w, err, "suggest vehicles")
		return
	}

	utils.ResponseSuccess(w, "success", vehicles)
}

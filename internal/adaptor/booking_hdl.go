package adaptor

import (
	"fmt"
	"mime"
	"net/http"
	"time"

	"taxi-dispatch/internal/dto/request"
	"taxi-dispatch/internal/usecase"
	"taxi-dispatch/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	responder
	service usecase.BookingService
}

func NewBookingHandler(service usecase.BookingService, cookieName string, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		responder: responder{log: log.With(zap.String("handler", "booking")), cookieName: cookieName},
		service:   service,
	}
}

// List handles GET /api/bookings
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.List(r.Context(), r.URL.Query())
	if err != nil {
		h.handleServiceError(w, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// View handles GET /api/bookings/view
func (h *BookingHandler) View(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.View(r.Context(), parseBookingListQuery(r))
	if err != nil {
		h.handleServiceError(w, err, "view bookings")
		return
	}

	setFilterSignature(w, r)
	utils.ResponseSuccess(w, "success", result)
}

// Export handles GET /api/bookings/export
func (h *BookingHandler) Export(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.Export(r.Context(), parseBookingListQuery(r))
	if err != nil {
		h.handleServiceError(w, err, "export bookings")
		return
	}

	filename := fmt.Sprintf("bookings-%s.csv", time.Now().Format(utils.DateLayout))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	w.WriteHeader(http.StatusOK)

	if err := usecase.WriteBookingsCSV(w, rows); err != nil {
		h.log.Error("Failed to write export", zap.Error(err))
	}
}

// Create handles POST /api/bookings
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if !bindJSON(w, r, &req) {
		return
	}

	booking, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "Booking created successfully", booking)
}

// Get handles GET /api/bookings/{id}
func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	booking, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// Update handles PUT /api/bookings/{id}
func (h *BookingHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateBookingRequest
	if !bindJSON(w, r, &req) {
		return
	}

	booking, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.handleServiceError(w, err, "update booking")
		return
	}

	utils.ResponseSuccess(w, "Booking updated successfully", booking)
}

// Delete handles DELETE /api/bookings/{id}
func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, err, "delete booking")
		return
	}

	utils.ResponseSuccess(w, "Booking deleted successfully", result)
}

// UpdateStatus handles PUT /api/bookings/{id}/status
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateBookingStatusRequest
	if !bindJSON(w, r, &req) {
		return
	}

	booking, err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.handleServiceError(w, err, "update booking status")
		return
	}

	utils.ResponseSuccess(w, "Booking status updated", booking)
}

// Allocate handles POST /api/bookings/{id}/allocate
func (h *BookingHandler) Allocate(w http.ResponseWriter, r *http.Request) {
	var req request.AllocateBookingRequest
	if !bindJSON(w, r, &req) {
		return
	}

	booking, err := h.service.Allocate(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.handleServiceError(w, err, "allocate booking")
		return
	}

	utils.ResponseSuccess(w, "Vehicle allocated successfully", booking)
}

// AutoAllocate handles POST /api/bookings/{id}/auto-allocate
func (h *BookingHandler) AutoAllocate(w http.ResponseWriter, r *http.Request) {
	booking, err := h.service.AutoAllocate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, err, "auto-allocate booking")
		return
	}

	utils.ResponseSuccess(w, "Booking auto-allocated", booking)
}

// SuggestedVehicles handles GET /api/bookings/{id}/suggested-vehicles
func (h *BookingHandler) SuggestedVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.service.SuggestedVehicles(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, err, "get suggested vehicles")
		return
	}

	utils.ResponseSuccess(w, "success", vehicles)
}

// AllocationOptions handles GET /api/bookings/{id}/allocation-options
func (h *BookingHandler) AllocationOptions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	options, err := h.service.AllocationOptions(r.Context(), chi.URLParam(r, "id"), &request.AllocationOptionsQuery{
		VehicleSearch: query.Get("vehicleSearch"),
		DriverSearch:  query.Get("driverSearch"),
	})
	if err != nil {
		h.handleServiceError(w, err, "get allocation options")
		return
	}

	utils.ResponseSuccess(w, "success", options)
}

// Import handles POST /api/bookings/import (multipart CSV upload)
func (h *BookingHandler) Import(w http.ResponseWriter, r *http.Request) {
	contentType := r.Header.Get("Content-Type")
	if mediaType, _, err := mime.ParseMediaType(contentType); err != nil || mediaType != "multipart/form-data" {
		utils.ResponseBadRequest(w, "Expected a multipart/form-data upload", nil)
		return
	}

	body := http.MaxBytesReader(w, r.Body, maxUploadBytes)
	raw, err := h.service.Import(r.Context(), contentType, body)
	if err != nil {
		h.handleServiceError(w, err, "import bookings")
		return
	}

	if raw.ContentType != "" {
		w.Header().Set("Content-Type", raw.ContentType)
	}
	w.WriteHeader(raw.StatusCode)
	w.Write(raw.Body)
}

// CreateAllocation handles POST /api/allocations
func (h *BookingHandler) CreateAllocation(w http.ResponseWriter, r *http.Request) {
	var req request.CreateAllocationRequest
	if !bindJSON(w, r, &req) {
		return
	}

	booking, err := h.service.Allocate(r.Context(), req.BookingID, &request.AllocateBookingRequest{
		VehicleID: req.VehicleID,
		DriverID:  req.DriverID,
	})
	if err != nil {
		h.handleServiceError(w, err, "create allocation")
		return
	}

	utils.ResponseSuccess(w, "Vehicle allocated successfully", booking)
}

// ListAllocations handles GET /api/allocations
func (h *BookingHandler) ListAllocations(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.Allocated(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list allocations")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

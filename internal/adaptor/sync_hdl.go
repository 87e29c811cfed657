package adaptor

import (
	"net/http"

	"taxi-dispatch/internal/usecase"
	"taxi-dispatch/pkg/utils"

	"go.uber.org/zap"
)

type SyncHandler struct {
	responder
	service usecase.SyncService
}

func NewSyncHandler(service usecase.SyncService, cookieName string, log *zap.Logger) *SyncHandler {
	return &SyncHandler{
		responder: responder{log: log.With(zap.String("handler", "sync")), cookieName: cookieName},
		service:   service,
	}
}

// SyncVehicles handles POST /api/sync/wialon
func (h *SyncHandler) SyncVehicles(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.SyncVehicles(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "sync vehicles")
		return
	}

	utils.ResponseSuccess(w, "Vehicles synced successfully", result)
}

// Status handles GET /api/sync/wialon
func (h *SyncHandler) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.service.Status(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get sync status")
		return
	}

	utils.ResponseSuccess(w, "success", status)
}

// SyncPositions handles POST /api/integration/sync/vehicle-positions
func (h *SyncHandler) SyncPositions(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.SyncPositions(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "sync vehicle positions")
		return
	}

	utils.ResponseSuccess(w, "Vehicle positions synced", result)
}

// FullSync handles POST /api/integration/sync/full
func (h *SyncHandler) FullSync(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.FullSync(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "full sync")
		return
	}

	utils.ResponseSuccess(w, "Full sync completed", result)
}

// Health handles GET /api/integration/health
func (h *SyncHandler) Health(w http.ResponseWriter, r *http.Request) {
	health, err := h.service.Health(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "check integration health")
		return
	}

	utils.ResponseSuccess(w, "success", health)
}

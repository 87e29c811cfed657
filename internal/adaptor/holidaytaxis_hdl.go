package adaptor

import (
	"net/http"

	"taxi-dispatch/internal/dto/request"
	"taxi-dispatch/internal/usecase"
	"taxi-dispatch/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type HolidayTaxisHandler struct {
	responder
	service usecase.HolidayTaxisService
}

func NewHolidayTaxisHandler(service usecase.HolidayTaxisService, cookieName string, log *zap.Logger) *HolidayTaxisHandler {
	return &HolidayTaxisHandler{
		responder: responder{log: log.With(zap.String("handler", "holidaytaxis")), cookieName: cookieName},
		service:   service,
	}
}

// Queue handles GET /api/holidaytaxis/queue
func (h *HolidayTaxisHandler) Queue(w http.ResponseWriter, r *http.Request) {
	queue, err := h.service.Queue(r.Context(), parseQueueQuery(r))
	if err != nil {
		h.handleServiceError(w, err, "get holidaytaxis queue")
		return
	}

	setFilterSignature(w, r)
	utils.ResponseSuccess(w, "success", queue)
}

// Send handles POST /api/holidaytaxis/bookings/{id}/send
func (h *HolidayTaxisHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req request.SendToHolidayTaxisRequest
	if !bindJSON(w, r, &req) {
		return
	}

	result, err := h.service.Send(r.Context(), chi.URLParam(r, "id"), req.Ref())
	if err != nil {
		h.handleServiceError(w, err, "send to holidaytaxis")
		return
	}

	utils.ResponseSuccess(w, "Booking sent to HolidayTaxis successfully", result)
}

// Submissions handles GET /api/holidaytaxis/submissions
func (h *HolidayTaxisHandler) Submissions(w http.ResponseWriter, r *http.Request) {
	submissions, err := h.service.Submissions(r.Context(), parseSubmissionListQuery(r))
	if err != nil {
		h.handleServiceError(w, err, "list submissions")
		return
	}

	setFilterSignature(w, r)
	utils.ResponseSuccess(w, "success", submissions)
}

// SubmissionStats handles GET /api/holidaytaxis/submissions/stats
func (h *HolidayTaxisHandler) SubmissionStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.SubmissionStats(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get submission stats")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}

// Logs handles GET /api/logs/holidaytaxis
func (h *HolidayTaxisHandler) Logs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.service.Logs(r.Context(), r.URL.Query())
	if err != nil {
		h.handleServiceError(w, err, "get holidaytaxis logs")
		return
	}

	utils.ResponseSuccess(w, "success", logs)
}

// LogStats handles GET /api/logs/holidaytaxis/stats
func (h *HolidayTaxisHandler) LogStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.LogStats(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get holidaytaxis log stats")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}

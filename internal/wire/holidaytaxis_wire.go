package wire

import (
	"net/http"

	"taxi-dispatch/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireHolidayTaxis(r chi.Router, htHandler *adaptor.HolidayTaxisHandler, authed func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(authed)

		// Allocated bookings still waiting for a partner reference
		r.Get("/api/holidaytaxis/queue", htHandler.Queue)

		// POST /api/holidaytaxis/bookings/{id}/send - {reference}
		r.Post("/api/holidaytaxis/bookings/{id}/send", htHandler.Send)

		// Submission attempts recorded by this gateway
		r.Get("/api/holidaytaxis/submissions", htHandler.Submissions)
		r.Get("/api/holidaytaxis/submissions/stats", htHandler.SubmissionStats)

		// Integration log kept by the backend
		r.Get("/api/logs/holidaytaxis", htHandler.Logs)
		r.Get("/api/logs/holidaytaxis/stats", htHandler.LogStats)
	})
}

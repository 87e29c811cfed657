package wire

import (
	"net/http"

	"taxi-dispatch/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler, authed func(http.Handler) http.Handler) {
	r.Route("/api/bookings", func(r chi.Router) {
		r.Use(authed)

		// GET /api/bookings - raw backend list, query passed through
		r.Get("/", bookingHandler.List)
		r.Post("/", bookingHandler.Create)

		// Dashboard table: filtered, sorted and paginated here
		r.Get("/view", bookingHandler.View)
		r.Get("/export", bookingHandler.Export)

		// POST /api/bookings/import - multipart CSV passthrough
		r.Post("/import", bookingHandler.Import)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", bookingHandler.Get)
			r.Put("/", bookingHandler.Update)
			r.Delete("/", bookingHandler.Delete)
			r.Put("/status", bookingHandler.UpdateStatus)

			// Allocation
			r.Post("/allocate", bookingHandler.Allocate)
			r.Post("/auto-allocate", bookingHandler.AutoAllocate)
			r.Get("/suggested-vehicles", bookingHandler.SuggestedVehicles)
			r.Get("/allocation-options", bookingHandler.AllocationOptions)
		})
	})

	// Legacy allocation shape
	r.Route("/api/allocations", func(r chi.Router) {
		r.Use(authed)

		r.Get("/", bookingHandler.ListAllocations)
		r.Post("/", bookingHandler.CreateAllocation)
	})
}

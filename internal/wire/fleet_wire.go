package wire

import (
	"net/http"

	"taxi-dispatch/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireFleet(
	r chi.Router,
	vehicleHandler *adaptor.VehicleHandler,
	driverHandler *adaptor.DriverHandler,
	authed func(http.Handler) http.Handler,
) {
	r.Route("/api/vehicles", func(r chi.Router) {
		r.Use(authed)

		r.Get("/", vehicleHandler.List)
		r.Post("/", vehicleHandler.Create)
		r.Get("/view", vehicleHandler.View)
		r.Get("/available", vehicleHandler.Available)

		// GET /api/vehicles/nearest?lat=&lng=&limit=
		r.Get("/nearest", vehicleHandler.Nearest)

		// GET /api/vehicles/suggest?bookingId=
		r.Get("/suggest", vehicleHandler.Suggest)

		r.Get("/{id}", vehicleHandler.Get)
		r.Put("/{id}", vehicleHandler.Update)
		r.Delete("/{id}", vehicleHandler.Delete)
	})

	r.Route("/api/drivers", func(r chi.Router) {
		r.Use(authed)

		r.Get("/", driverHandler.List)
		r.Post("/", driverHandler.Create)
		r.Get("/view", driverHandler.View)
		r.Get("/available", driverHandler.Available)

		r.Get("/{id}", driverHandler.Get)
		r.Put("/{id}", driverHandler.Update)
		r.Delete("/{id}", driverHandler.Delete)
	})
}

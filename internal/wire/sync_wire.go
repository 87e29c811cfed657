package wire

import (
	"net/http"

	"taxi-dispatch/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSync(r chi.Router, syncHandler *adaptor.SyncHandler, authed func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(authed)

		// GPS provider sync
		r.Post("/api/sync/wialon", syncHandler.SyncVehicles)
		r.Get("/api/sync/wialon", syncHandler.Status)

		r.Post("/api/integration/sync/vehicle-positions", syncHandler.SyncPositions)
		r.Post("/api/integration/sync/full", syncHandler.FullSync)
		r.Get("/api/integration/health", syncHandler.Health)
	})
}

package wire

import (
	"net/http"

	"taxi-dispatch/internal/adaptor"
	"taxi-dispatch/internal/data/repository"
	"taxi-dispatch/internal/usecase"
	"taxi-dispatch/pkg/cache"
	"taxi-dispatch/pkg/middleware"
	"taxi-dispatch/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired router
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and routes
func Wiring(repo *repository.Repository, api usecase.Backend, fleetCache cache.Cache, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, api, fleetCache, config, logger)
	handler := adaptor.NewHandler(service, config.Auth.TokenCookie, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware, outermost first
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.CORSOrigins))

	authed := middleware.Auth(config.Auth.TokenCookie, logger)
	admin := middleware.Admin(logger)

	wireAuth(r, handler.Auth, authed)
	wireBooking(r, handler.Booking, authed)
	wireHolidayTaxis(r, handler.HolidayTaxis, authed)
	wireFleet(r, handler.Vehicle, handler.Driver, authed)
	wireSync(r, handler.Sync, authed)
	wireAdmin(r, handler.Admin, authed, admin)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Route not found")
	})

	return r
}

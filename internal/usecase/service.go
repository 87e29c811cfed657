package usecase

import (
	"context"
	"io"
	"net/url"
	"time"

	"taxi-dispatch/internal/data/repository"
	"taxi-dispatch/pkg/backend"
	"taxi-dispatch/pkg/cache"
	"taxi-dispatch/pkg/utils"

	"go.uber.org/zap"
)

// Backend is the slice of the backend client the services call.
type Backend interface {
	Get(ctx context.Context, path string, query url.Values, token string, out any) error
	Post(ctx context.Context, path, token string, body, out any) error
	Put(ctx context.Context, path, token string, body, out any) error
	Patch(ctx context.Context, path, token string, body, out any) error
	Delete(ctx context.Context, path, token string, out any) error
	Forward(ctx context.Context, method, path, rawQuery, token, contentType string, body io.Reader) (*backend.RawResponse, error)
}

type Service struct {
	Auth         AuthService
	Booking      BookingService
	HolidayTaxis HolidayTaxisService
	Vehicle      VehicleService
	Driver       DriverService
	Sync         SyncService
	Admin        AdminService
}

func NewService(repo *repository.Repository, api Backend, fleetCache cache.Cache, config *utils.Config, log *zap.Logger) *Service {
	vehicles := NewVehicleService(api, fleetCache, config.Redis.FleetTTL, log)

	return &Service{
		Auth:         NewAuthService(api, log),
		Booking:      NewBookingService(api, log),
		HolidayTaxis: NewHolidayTaxisService(api, repo.Submission, log),
		Vehicle:      vehicles,
		Driver:       NewDriverService(api, log),
		Sync:         NewSyncService(api, vehicles, log),
		Admin:        NewAdminService(api, log),
	}
}

// callerToken is the bearer token the auth middleware put on the context.
func callerToken(ctx context.Context) string {
	token, _ := utils.GetTokenFromContext(ctx)
	return token
}

// now is swapped in tests that depend on the calendar.
var now = time.Now

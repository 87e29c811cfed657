package adaptor

import (
	"taxi-dispatch/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth         *AuthHandler
	Booking      *BookingHandler
	HolidayTaxis *HolidayTaxisHandler
	Vehicle      *VehicleHandler
	Driver       *DriverHandler
	Sync         *SyncHandler
	Admin        *AdminHandler
}

// NewHandler builds every handler. cookieName is the session cookie cleared
// when the backend rejects a token.
func NewHandler(service *usecase.Service, cookieName string, log *zap.Logger) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(service.Auth, cookieName, log),
		Booking:      NewBookingHandler(service.Booking, cookieName, log),
		HolidayTaxis: NewHolidayTaxisHandler(service.HolidayTaxis, cookieName, log),
		Vehicle:      NewVehicleHandler(service.Vehicle, cookieName, log),
		Driver:       NewDriverHandler(service.Driver, cookieName, log),
		Sync:         NewSyncHandler(service.Sync, cookieName, log),
		Admin:        NewAdminHandler(service.Admin, cookieName, log),
	}
}

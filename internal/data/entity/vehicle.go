package entity

import "time"

type VehicleType string

const (
	VehicleTypeSedan   VehicleType = "sedan"
	VehicleTypeVan     VehicleType = "van"
	VehicleTypeBus     VehicleType = "bus"
	VehicleTypeMinibus VehicleType = "minibus"
	VehicleTypeLuxury  VehicleType = "luxury"
)

type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "available"
	VehicleStatusOnTransfer  VehicleStatus = "on_transfer"
	VehicleStatusReturning   VehicleStatus = "returning"
	VehicleStatusMaintenance VehicleStatus = "maintenance"
	VehicleStatusUnavailable VehicleStatus = "unavailable"
)

// Vehicle carries fleet data plus the latest telemetry from the GPS provider.
type Vehicle struct {
	ID                  string        `json:"id"`
	WialonUnitID        string        `json:"wialonUnitId"`
	RegistrationNumber  string        `json:"registrationNumber"`
	Make                string        `json:"make"`
	Model               string        `json:"model"`
	VehicleType         VehicleType   `json:"vehicleType"`
	SeatingCapacity     int           `json:"seatingCapacity"`
	LuggageCapacity     int           `json:"luggageCapacity"`
	Status              VehicleStatus `json:"status"`
	CurrentDriverID     *string       `json:"currentDriverId"`
	CurrentLatitude     *float64      `json:"currentLatitude"`
	CurrentLongitude    *float64      `json:"currentLongitude"`
	CurrentSpeed        *float64      `json:"currentSpeed"`
	IsOnline            bool          `json:"isOnline"`
	LastGpsPing         *time.Time    `json:"lastGpsPing"`
	IgnitionOn          bool          `json:"ignitionOn"`
	Mileage             *float64      `json:"mileage"`
	FuelType            *string       `json:"fuelType"`
	LastMaintenanceDate *time.Time    `json:"lastMaintenanceDate"`
	NextMaintenanceDate *time.Time    `json:"nextMaintenanceDate"`
	CreatedAt           time.Time     `json:"createdAt"`
	UpdatedAt           time.Time     `json:"updatedAt"`
	CurrentDriver       *Driver       `json:"currentDriver,omitempty"`
}

// VehicleSuggestion is a vehicle ranked for a booking by the backend.
type VehicleSuggestion struct {
	Vehicle
	Distance float64 `json:"distance"`
	ETA      float64 `json:"eta"`
}

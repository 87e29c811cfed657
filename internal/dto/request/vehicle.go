package request

type VehicleRequest struct {
	WialonUnitID       string   `json:"wialonUnitId,omitempty" validate:"omitempty,max=50"`
	RegistrationNumber string   `json:"registrationNumber" validate:"required,max=20"`
	Make               string   `json:"make" validate:"required,max=50"`
	Model              string   `json:"model" validate:"required,max=50"`
	VehicleType        string   `json:"vehicleType" validate:"required,oneof=sedan van bus minibus luxury"`
	SeatingCapacity    int      `json:"seatingCapacity" validate:"required,gte=1,lte=80"`
	LuggageCapacity    int      `json:"luggageCapacity" validate:"gte=0,lte=100"`
	Status             string   `json:"status,omitempty" validate:"omitempty,oneof=available on_transfer returning maintenance unavailable"`
	FuelType           *string  `json:"fuelType,omitempty" validate:"omitempty,max=30"`
	Mileage            *float64 `json:"mileage,omitempty" validate:"omitempty,gte=0"`
}

type VehicleUpdateRequest struct {
	WialonUnitID       *string  `json:"wialonUnitId,omitempty" validate:"omitempty,max=50"`
	RegistrationNumber *string  `json:"registrationNumber,omitempty" validate:"omitempty,max=20"`
	Make               *string  `json:"make,omitempty" validate:"omitempty,max=50"`
	Model              *string  `json:"model,omitempty" validate:"omitempty,max=50"`
	VehicleType        *string  `json:"vehicleType,omitempty" validate:"omitempty,oneof=sedan van bus minibus luxury"`
	SeatingCapacity    *int     `json:"seatingCapacity,omitempty" validate:"omitempty,gte=1,lte=80"`
	LuggageCapacity    *int     `json:"luggageCapacity,omitempty" validate:"omitempty,gte=0,lte=100"`
	Status             *string  `json:"status,omitempty" validate:"omitempty,oneof=available on_transfer returning maintenance unavailable"`
	FuelType           *string  `json:"fuelType,omitempty" validate:"omitempty,max=30"`
	Mileage            *float64 `json:"mileage,omitempty" validate:"omitempty,gte=0"`
}

type NearestVehiclesRequest struct {
	Lat   float64 `validate:"latitude"`
	Lng   float64 `validate:"longitude"`
	Limit int     `validate:"gte=1,lte=50"`
}

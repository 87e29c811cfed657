package request

type CreateBookingRequest struct {
	PassengerName      string   `json:"passengerName" validate:"required,min=2,max=120"`
	PassengerPhone     *string  `json:"passengerPhone,omitempty" validate:"omitempty,min=6,max=30"`
	PassengerEmail     *string  `json:"passengerEmail,omitempty" validate:"omitempty,email"`
	NumberOfPassengers int      `json:"numberOfPassengers" validate:"required,gte=1,lte=60"`
	NumberOfLuggage    int      `json:"numberOfLuggage" validate:"gte=0,lte=100"`
	PickupLocation     string   `json:"pickupLocation" validate:"required,max=255"`
	PickupLatitude     *float64 `json:"pickupLatitude,omitempty" validate:"omitempty,latitude"`
	PickupLongitude    *float64 `json:"pickupLongitude,omitempty" validate:"omitempty,longitude"`
	PickupDateTime     string   `json:"pickupDateTime" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	DropoffLocation    string   `json:"dropoffLocation" validate:"required,max=255"`
	DropoffLatitude    *float64 `json:"dropoffLatitude,omitempty" validate:"omitempty,latitude"`
	DropoffLongitude   *float64 `json:"dropoffLongitude,omitempty" validate:"omitempty,longitude"`
	BookingType        string   `json:"bookingType" validate:"required,oneof=airport_to_hotel hotel_to_airport hotel_to_hotel hotel_to_event event_to_hotel custom"`
	FlightNumber       *string  `json:"flightNumber,omitempty" validate:"omitempty,max=20"`
	ClientCompany      *string  `json:"clientCompany,omitempty" validate:"omitempty,max=120"`
	Notes              *string  `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

// UpdateBookingRequest is a partial update; absent fields are left alone.
type UpdateBookingRequest struct {
	PassengerName      *string  `json:"passengerName,omitempty" validate:"omitempty,min=2,max=120"`
	PassengerPhone     *string  `json:"passengerPhone,omitempty" validate:"omitempty,min=6,max=30"`
	PassengerEmail     *string  `json:"passengerEmail,omitempty" validate:"omitempty,email"`
	NumberOfPassengers *int     `json:"numberOfPassengers,omitempty" validate:"omitempty,gte=1,lte=60"`
	NumberOfLuggage    *int     `json:"numberOfLuggage,omitempty" validate:"omitempty,gte=0,lte=100"`
	PickupLocation     *string  `json:"pickupLocation,omitempty" validate:"omitempty,max=255"`
	PickupLatitude     *float64 `json:"pickupLatitude,omitempty" validate:"omitempty,latitude"`
	PickupLongitude    *float64 `json:"pickupLongitude,omitempty" validate:"omitempty,longitude"`
	PickupDateTime     *string  `json:"pickupDateTime,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	DropoffLocation    *string  `json:"dropoffLocation,omitempty" validate:"omitempty,max=255"`
	DropoffLatitude    *float64 `json:"dropoffLatitude,omitempty" validate:"omitempty,latitude"`
	DropoffLongitude   *float64 `json:"dropoffLongitude,omitempty" validate:"omitempty,longitude"`
	BookingType        *string  `json:"bookingType,omitempty" validate:"omitempty,oneof=airport_to_hotel hotel_to_airport hotel_to_hotel hotel_to_event event_to_hotel custom"`
	FlightNumber       *string  `json:"flightNumber,omitempty" validate:"omitempty,max=20"`
	ClientCompany      *string  `json:"clientCompany,omitempty" validate:"omitempty,max=120"`
	Notes              *string  `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending allocated driver_en_route passenger_on_board completed no_show cancelled"`
}

type AllocateBookingRequest struct {
	VehicleID string `json:"vehicleId" validate:"required"`
	DriverID  string `json:"driverId" validate:"required"`
}

// CreateAllocationRequest is the legacy /api/allocations body.
type CreateAllocationRequest struct {
	BookingID string `json:"bookingId" validate:"required"`
	VehicleID string `json:"vehicleId" validate:"required"`
	DriverID  string `json:"driverId" validate:"required"`
}

// SendToHolidayTaxisRequest accepts either field name; Reference wins.
type SendToHolidayTaxisRequest struct {
	Reference              string `json:"reference"`
	HolidayTaxisBookingRef string `json:"holidayTaxisBookingRef"`
}

func (r SendToHolidayTaxisRequest) Ref() string {
	if r.Reference != "" {
		return r.Reference
	}
	return r.HolidayTaxisBookingRef
}

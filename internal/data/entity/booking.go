package entity

import (
	"slices"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending          BookingStatus = "pending"
	BookingStatusAllocated        BookingStatus = "allocated"
	BookingStatusDriverEnRoute    BookingStatus = "driver_en_route"
	BookingStatusPassengerOnBoard BookingStatus = "passenger_on_board"
	BookingStatusCompleted        BookingStatus = "completed"
	BookingStatusNoShow           BookingStatus = "no_show"
	BookingStatusCancelled        BookingStatus = "cancelled"
)

var bookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusAllocated,
	BookingStatusDriverEnRoute,
	BookingStatusPassengerOnBoard,
	BookingStatusCompleted,
	BookingStatusNoShow,
	BookingStatusCancelled,
}

func (s BookingStatus) Valid() bool {
	return slices.Contains(bookingStatuses, s)
}

type BookingType string

const (
	BookingTypeAirportToHotel BookingType = "airport_to_hotel"
	BookingTypeHotelToAirport BookingType = "hotel_to_airport"
	BookingTypeHotelToHotel   BookingType = "hotel_to_hotel"
	BookingTypeHotelToEvent   BookingType = "hotel_to_event"
	BookingTypeEventToHotel   BookingType = "event_to_hotel"
	BookingTypeCustom         BookingType = "custom"
)

// Booking is a passenger transfer as the backend reports it.
type Booking struct {
	ID                    string        `json:"id"`
	PassengerName         string        `json:"passengerName"`
	PassengerPhone        *string       `json:"passengerPhone"`
	PassengerEmail        *string       `json:"passengerEmail"`
	NumberOfPassengers    int           `json:"numberOfPassengers"`
	NumberOfLuggage       int           `json:"numberOfLuggage"`
	PickupLocation        string        `json:"pickupLocation"`
	PickupLatitude        *float64      `json:"pickupLatitude"`
	PickupLongitude       *float64      `json:"pickupLongitude"`
	PickupDateTime        time.Time     `json:"pickupDateTime"`
	DropoffLocation       string        `json:"dropoffLocation"`
	DropoffLatitude       *float64      `json:"dropoffLatitude"`
	DropoffLongitude      *float64      `json:"dropoffLongitude"`
	BookingType           BookingType   `json:"bookingType"`
	FlightNumber          *string       `json:"flightNumber"`
	ClientCompany         *string       `json:"clientCompany"`
	Status                BookingStatus `json:"status"`
	VehicleID             *string       `json:"vehicleId"`
	Vehicle               *Vehicle      `json:"vehicle,omitempty"`
	DriverID              *string       `json:"driverId"`
	Driver                *Driver       `json:"driver,omitempty"`
	HolidayTaxisBookingID *string       `json:"holidayTaxisBookingId"`
	SentToHolidayTaxis    bool          `json:"sentToHolidayTaxis"`
	SentToHolidayTaxisAt  *time.Time    `json:"sentToHolidayTaxisAt"`
	ActualPickupTime      *time.Time    `json:"actualPickupTime"`
	ActualDropoffTime     *time.Time    `json:"actualDropoffTime"`
	DistanceTravelled     *float64      `json:"distanceTravelled"`
	Notes                 *string       `json:"notes"`
	CreatedAt             time.Time     `json:"createdAt"`
	UpdatedAt             time.Time     `json:"updatedAt"`
}

// ReadyForHolidayTaxis reports whether the booking is allocated to both a
// vehicle and a driver and has not been submitted yet.
func (b Booking) ReadyForHolidayTaxis() bool {
	return b.VehicleID != nil && *b.VehicleID != "" &&
		b.DriverID != nil && *b.DriverID != "" &&
		!b.SentToHolidayTaxis
}

// Deref returns the pointed-to string or "".
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

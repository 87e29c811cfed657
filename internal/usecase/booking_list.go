package usecase

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"taxi-dispatch/internal/data/entity"
	"taxi-dispatch/internal/dto/request"
	"taxi-dispatch/pkg/listing"
)

type bookingCompare func(a, b entity.Booking) int

var bookingSorts = map[string]bookingCompare{
	"pickupDateTime": func(a, b entity.Booking) int {
		return listing.CompareTime(a.PickupDateTime, b.PickupDateTime)
	},
	"passengerName": func(a, b entity.Booking) int {
		return listing.CompareFold(a.PassengerName, b.PassengerName)
	},
	"status": func(a, b entity.Booking) int {
		return listing.CompareOrdered(a.Status, b.Status)
	},
	"createdAt": func(a, b entity.Booking) int {
		return listing.CompareTime(a.CreatedAt, b.CreatedAt)
	},
	"pickupLocation": func(a, b entity.Booking) int {
		return listing.CompareFold(a.PickupLocation, b.PickupLocation)
	},
	"dropoffLocation": func(a, b entity.Booking) int {
		return listing.CompareFold(a.DropoffLocation, b.DropoffLocation)
	},
	"numberOfPassengers": func(a, b entity.Booking) int {
		return listing.CompareOrdered(a.NumberOfPassengers, b.NumberOfPassengers)
	},
}

// Short keys used by the HolidayTaxis queue.
var queueSortKeys = map[string]string{
	"passenger":  "passengerName",
	"pickup":     "pickupLocation",
	"dropoff":    "dropoffLocation",
	"date":       "pickupDateTime",
	"passengers": "numberOfPassengers",
}

func bookingSort(key, fallback string) bookingCompare {
	if alias, ok := queueSortKeys[key]; ok {
		key = alias
	}
	if cmp, ok := bookingSorts[key]; ok {
		return cmp
	}
	return bookingSorts[fallback]
}

func bookingSearchFields(b entity.Booking) []string {
	return []string{
		b.PassengerName,
		entity.Deref(b.PassengerPhone),
		entity.Deref(b.FlightNumber),
		b.PickupLocation,
		b.DropoffLocation,
	}
}

func pickupTime(b entity.Booking) time.Time { return b.PickupDateTime }

func passengerCount(b entity.Booking) int { return b.NumberOfPassengers }

func bookingQuery(q *request.BookingListQuery) listing.Query[entity.Booking] {
	if q == nil {
		q = &request.BookingListQuery{}
	}

	return listing.Query[entity.Booking]{
		Search:       q.Search,
		SearchFields: bookingSearchFields,
		Filters: []func(entity.Booking) bool{
			listing.Equals(func(b entity.Booking) entity.BookingStatus { return b.Status }, q.Status),
			listing.Equals(func(b entity.Booking) entity.BookingType { return b.BookingType }, q.BookingType),
			listing.DateRange(pickupTime, q.DateFrom, q.DateTo),
			listing.IntRange(passengerCount, q.MinPassengers, q.MaxPassengers),
		},
		Compare: bookingSort(q.SortBy, "pickupDateTime"),
		Desc:    q.Desc(),
		Page:    q.Page,
		PerPage: q.PerPage,
	}
}

var exportHeader = []string{
	"Passenger Name",
	"Phone",
	"Pickup Location",
	"Dropoff Location",
	"Pickup Date/Time",
	"Passengers",
	"Luggage",
	"Flight Number",
	"Status",
}

const exportTimeLayout = "2006-01-02 15:04"

// WriteBookingsCSV writes the export header followed by one row per booking.
func WriteBookingsCSV(w io.Writer, bookings []entity.Booking) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, b := range bookings {
		row := []string{
			b.PassengerName,
			entity.Deref(b.PassengerPhone),
			b.PickupLocation,
			b.DropoffLocation,
			b.PickupDateTime.Format(exportTimeLayout),
			strconv.Itoa(b.NumberOfPassengers),
			strconv.Itoa(b.NumberOfLuggage),
			entity.Deref(b.FlightNumber),
			string(b.Status),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %s: %w", b.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

package response

import (
	"taxi-dispatch/internal/data/entity"
	"taxi-dispatch/pkg/listing"
)

// BookingStats counts bookings per headline status over the whole
// unfiltered set.
type BookingStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Allocated int `json:"allocated"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

type BookingListResponse struct {
	listing.Page[entity.Booking]
	Stats BookingStats `json:"stats"`
}

type HolidayTaxisStats struct {
	Total           int `json:"total"`
	TodayBookings   int `json:"todayBookings"`
	TotalPassengers int `json:"totalPassengers"`
	TotalLuggage    int `json:"totalLuggage"`
}

type HolidayTaxisQueueResponse struct {
	listing.Page[entity.Booking]
	Stats HolidayTaxisStats `json:"stats"`
}

// AllocationOptions is what the manual allocation form needs.
type AllocationOptions struct {
	Vehicles []entity.VehicleSuggestion `json:"vehicles"`
	Drivers  []entity.Driver            `json:"drivers"`
}

type SubmissionResult struct {
	Booking    any                `json:"booking,omitempty"`
	Submission *entity.Submission `json:"submission"`
}

func NewBookingStats(bookings []entity.Booking) BookingStats {
	stats := BookingStats{Total: len(bookings)}
	for _, b := range bookings {
		switch b.Status {
		case entity.BookingStatusPending:
			stats.Pending++
		case entity.BookingStatusAllocated:
			stats.Allocated++
		case entity.BookingStatusCompleted:
			stats.Completed++
		case entity.BookingStatusCancelled:
			stats.Cancelled++
		}
	}
	return stats
}

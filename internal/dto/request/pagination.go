package request

import "time"

type PaginatedRequest struct {
	Page    int `json:"page" validate:"min=1"`
	PerPage int `json:"per_page" validate:"min=1,max=100"`
}

// SortRequest is a sort key plus direction ("asc" or "desc").
type SortRequest struct {
	SortBy string
	Order  string
}

func (s SortRequest) Desc() bool {
	return s.Order == "desc"
}

// BookingListQuery drives the dashboard bookings table.
type BookingListQuery struct {
	PaginatedRequest
	SortRequest
	Search        string
	Status        string
	BookingType   string
	DateFrom      *time.Time
	DateTo        *time.Time
	MinPassengers *int
	MaxPassengers *int
}

// HolidayTaxisQueueQuery drives the submission queue. DatePreset is one of
// all, today, tomorrow or week.
type HolidayTaxisQueueQuery struct {
	PaginatedRequest
	SortRequest
	Search        string
	BookingType   string
	DatePreset    string
	MinPassengers *int
	MaxPassengers *int
}

type VehicleListQuery struct {
	PaginatedRequest
	SortRequest
	Search      string
	Status      string
	VehicleType string
	Online      *bool
}

type DriverListQuery struct {
	PaginatedRequest
	SortRequest
	Search string
	Status string
}

// AllocationOptionsQuery narrows the two lists shown when allocating by hand.
type AllocationOptionsQuery struct {
	VehicleSearch string
	DriverSearch  string
}

type SubmissionListQuery struct {
	PaginatedRequest
	Status string
	Search string
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

type SubmissionStatus string

const (
	SubmissionStatusSuccess SubmissionStatus = "success"
	SubmissionStatusFailed  SubmissionStatus = "failed"
)

// Submission records one attempt to send a booking to HolidayTaxis.
type Submission struct {
	ID             uuid.UUID        `db:"id" json:"id"`
	BookingID      string           `db:"booking_id" json:"bookingId"`
	PassengerName  string           `db:"passenger_name" json:"passengerName"`
	Reference      string           `db:"reference" json:"holidayTaxisBookingRef"`
	DriverName     string           `db:"driver_name" json:"driverName,omitempty"`
	VehicleReg     string           `db:"vehicle_reg" json:"vehicleReg,omitempty"`
	Status         SubmissionStatus `db:"status" json:"status"`
	Message        string           `db:"message" json:"message"`
	HTTPStatusCode int              `db:"http_status_code" json:"httpStatusCode"`
	SubmittedBy    string           `db:"submitted_by" json:"submittedBy,omitempty"`
	AttemptedAt    time.Time        `db:"attempted_at" json:"attemptedAt"`
}

type SubmissionStats struct {
	Total   int64 `json:"total"`
	Success int64 `json:"success"`
	Failed  int64 `json:"failed"`
}

package entity

import "time"

type DriverStatus string

const (
	DriverStatusAvailable DriverStatus = "available"
	DriverStatusOnDuty    DriverStatus = "on_duty"
	DriverStatusOffDuty   DriverStatus = "off_duty"
	DriverStatusOnBreak   DriverStatus = "on_break"
)

type Driver struct {
	ID                 string       `json:"id"`
	FirstName          string       `json:"firstName"`
	LastName           string       `json:"lastName"`
	LicenseNumber      string       `json:"licenseNumber"`
	PhoneNumber        string       `json:"phoneNumber"`
	Email              *string      `json:"email"`
	Status             DriverStatus `json:"status"`
	AssignedVehicleID  *string      `json:"assignedVehicleId"`
	LicenseExpiryDate  *time.Time   `json:"licenseExpiryDate"`
	PsvBadgeNumber     *string      `json:"psvBadgeNumber"`
	PsvBadgeExpiryDate *time.Time   `json:"psvBadgeExpiryDate"`
	ShiftStartTime     *string      `json:"shiftStartTime"`
	ShiftEndTime       *string      `json:"shiftEndTime"`
	Notes              *string      `json:"notes"`
	CreatedAt          time.Time    `json:"createdAt"`
	UpdatedAt          time.Time    `json:"updatedAt"`
}

func (d Driver) FullName() string {
	switch {
	case d.FirstName == "":
		return d.LastName
	case d.LastName == "":
		return d.FirstName
	}
	return d.FirstName + " " + d.LastName
}

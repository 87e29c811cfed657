package request

type DriverRequest struct {
	FirstName          string  `json:"firstName" validate:"required,max=60"`
	LastName           string  `json:"lastName" validate:"required,max=60"`
	LicenseNumber      string  `json:"licenseNumber" validate:"required,max=40"`
	PhoneNumber        string  `json:"phoneNumber" validate:"required,min=6,max=30"`
	Email              *string `json:"email,omitempty" validate:"omitempty,email"`
	Status             string  `json:"status,omitempty" validate:"omitempty,oneof=available on_duty off_duty on_break"`
	LicenseExpiryDate  *string `json:"licenseExpiryDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PsvBadgeNumber     *string `json:"psvBadgeNumber,omitempty" validate:"omitempty,max=40"`
	PsvBadgeExpiryDate *string `json:"psvBadgeExpiryDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ShiftStartTime     *string `json:"shiftStartTime,omitempty" validate:"omitempty,datetime=15:04"`
	ShiftEndTime       *string `json:"shiftEndTime,omitempty" validate:"omitempty,datetime=15:04"`
	Notes              *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

type DriverUpdateRequest struct {
	FirstName          *string `json:"firstName,omitempty" validate:"omitempty,max=60"`
	LastName           *string `json:"lastName,omitempty" validate:"omitempty,max=60"`
	LicenseNumber      *string `json:"licenseNumber,omitempty" validate:"omitempty,max=40"`
	PhoneNumber        *string `json:"phoneNumber,omitempty" validate:"omitempty,min=6,max=30"`
	Email              *string `json:"email,omitempty" validate:"omitempty,email"`
	Status             *string `json:"status,omitempty" validate:"omitempty,oneof=available on_duty off_duty on_break"`
	LicenseExpiryDate  *string `json:"licenseExpiryDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PsvBadgeNumber     *string `json:"psvBadgeNumber,omitempty" validate:"omitempty,max=40"`
	PsvBadgeExpiryDate *string `json:"psvBadgeExpiryDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ShiftStartTime     *string `json:"shiftStartTime,omitempty" validate:"omitempty,datetime=15:04"`
	ShiftEndTime       *string `json:"shiftEndTime,omitempty" validate:"omitempty,datetime=15:04"`
	Notes              *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

package request

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

type CreateAdminRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,max=120"`
	Password string `json:"password" validate:"required,min=8"`
}

type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,max=120"`
	Password string `json:"password" validate:"required,min=8"`
	IsAdmin  bool   `json:"isAdmin"`
}

type UpdateUserRequest struct {
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Name    *string `json:"name,omitempty" validate:"omitempty,max=120"`
	IsAdmin *bool   `json:"isAdmin,omitempty"`
}

type TempPasswordRequest struct {
	TempPassword   string `json:"tempPassword" validate:"required,min=8"`
	ExpiresInHours int    `json:"expiresInHours" validate:"omitempty,gte=1,lte=168"`
}

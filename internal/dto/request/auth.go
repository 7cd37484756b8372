package request

type RegisterRequest struct {
	Username      string  `json:"username" validate:"required,min=3,max=50"`
	Email         string  `json:"email" validate:"required,email"`
	Password      string  `json:"password" validate:"required,strongpassword"`
	AccountNumber *string `json:"accountNumber,omitempty" validate:"omitempty,accountnumber"`
}

// AdminRegisterRequest additionally accepts an explicit role. Only reachable
// through the employee-gated admin route.
type AdminRegisterRequest struct {
	Username      string  `json:"username" validate:"required,min=3,max=50"`
	Email         string  `json:"email" validate:"required,email"`
	Password      string  `json:"password" validate:"required,strongpassword"`
	AccountNumber *string `json:"accountNumber,omitempty" validate:"omitempty,accountnumber"`
	Role          string  `json:"role,omitempty" validate:"omitempty,oneof=customer employee"`
}

// LoginRequest accepts an email or a username as the identifier. Presence of
// at least one is checked in the service so all failures look the same.
type LoginRequest struct {
	Email         string `json:"email"`
	Username      string `json:"username"`
	Password      string `json:"password" validate:"required"`
	AccountNumber string `json:"accountNumber"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

package response

import (
	"time"

	"secure-portal/internal/data/entity"
)

// UserResponse deliberately omits the password hash and soft-delete fields.
type UserResponse struct {
	ID            string          `json:"id"`
	Username      string          `json:"username"`
	Email         string          `json:"email"`
	AccountNumber *string         `json:"accountNumber,omitempty"`
	Role          entity.UserRole `json:"role"`
	CreatedAt     time.Time       `json:"createdAt"`
}

type ProfileResponse struct {
	OK   bool         `json:"ok"`
	User UserResponse `json:"user"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:            user.ID.String(),
		Username:      user.Username,
		Email:         user.Email,
		AccountNumber: user.AccountNumber,
		Role:          user.Role,
		CreatedAt:     user.CreatedAt,
	}
}

package response

import (
	"secure-portal/internal/data/entity"
)

type RegisterResponse struct {
	OK     bool   `json:"ok"`
	UserID string `json:"userId"`
}

type LoginResponse struct {
	OK           bool            `json:"ok"`
	Token        string          `json:"token"`
	RefreshToken string          `json:"refreshToken"`
	UserID       string          `json:"userId"`
	Username     string          `json:"username"`
	Email        string          `json:"email"`
	Role         entity.UserRole `json:"role"`
}

type RefreshResponse struct {
	Token string `json:"token"`
}

type LogoutResponse struct {
	OK bool `json:"ok"`
}

package wire

import (
	"secure-portal/internal/adaptor"
	"secure-portal/pkg/middleware"
	"secure-portal/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	issuer *token.Issuer,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/register", authHandler.Register)
	r.Post("/api/login", authHandler.Login)
	r.Post("/api/token/refresh", authHandler.Refresh)
	// Logout takes the refresh token in the body, no bearer token needed
	r.Post("/api/logout", authHandler.Logout)

	// ==================== EMPLOYEE ROUTES ====================
	r.With(
		middleware.AuthJWT(issuer, log),
		middleware.RequireEmployee(log),
	).Post("/api/admin/register", authHandler.AdminRegister)
}

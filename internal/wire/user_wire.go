package wire

import (
	"secure-portal/internal/adaptor"
	"secure-portal/pkg/middleware"
	"secure-portal/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	issuer *token.Issuer,
	log *zap.Logger,
) {
	// ==================== PROTECTED USER ROUTES ====================
	r.With(middleware.AuthJWT(issuer, log)).Route("/api/me", func(r chi.Router) {
		r.Get("/", userHandler.GetProfile)
		r.Patch("/", userHandler.UpdateProfile)
	})
}

package wire

import (
	"secure-portal/internal/adaptor"
	"secure-portal/pkg/middleware"
	"secure-portal/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePayment(
	r chi.Router,
	paymentHandler *adaptor.PaymentHandler,
	issuer *token.Issuer,
	log *zap.Logger,
) {
	// ==================== PROTECTED CUSTOMER ROUTES ====================
	r.With(middleware.AuthJWT(issuer, log)).Route("/api/payments", func(r chi.Router) {
		r.Get("/", paymentHandler.ListOwn)
		r.Post("/", paymentHandler.Create)

		// Review - requires employee role on top of authentication
		r.With(middleware.RequireEmployee(log)).Patch("/{id}/verify", paymentHandler.Verify)
	})

	// ==================== EMPLOYEE ROUTES ====================
	r.With(
		middleware.AuthJWT(issuer, log),
		middleware.RequireEmployee(log),
	).Get("/api/admin/payments", paymentHandler.ListAll)
}

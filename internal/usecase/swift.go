package usecase

import (
	"context"

	"secure-portal/internal/data/entity"

	"go.uber.org/zap"
)

// SwiftGateway is the hook for the external settlement submission.
// The real SWIFT network call is out of scope; the default implementation
// only logs the submission.
type SwiftGateway interface {
	Submit(ctx context.Context, payment *entity.Payment) error
}

type loggingSwiftGateway struct {
	log *zap.Logger
}

func NewLoggingSwiftGateway(log *zap.Logger) SwiftGateway {
	return &loggingSwiftGateway{
		log: log.With(zap.String("gateway", "swift")),
	}
}

func (g *loggingSwiftGateway) Submit(ctx context.Context, payment *entity.Payment) error {
	swiftCode := ""
	if payment.SwiftCode != nil {
		swiftCode = *payment.SwiftCode
	}

	g.log.Info("Simulated SWIFT submission",
		zap.String("payment_id", payment.ID.String()),
		zap.String("amount", payment.Amount.String()),
		zap.String("currency", string(payment.Currency)),
		zap.String("swift_code", swiftCode),
	)

	return nil
}

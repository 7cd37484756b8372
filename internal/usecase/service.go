package usecase

import (
	"secure-portal/internal/data/repository"
	"secure-portal/pkg/token"
	"secure-portal/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Payment PaymentService
	User    UserService
}

func NewService(repo *repository.Repository, issuer *token.Issuer, config *utils.Config, log *zap.Logger) *Service {
	swift := NewLoggingSwiftGateway(log)

	return &Service{
		Auth:    NewAuthService(repo, issuer, config, log),
		Payment: NewPaymentService(repo, swift, log),
		User:    NewUserService(repo, config, log),
	}
}

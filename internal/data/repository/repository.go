package repository

import (
	"secure-portal/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User         UserRepository
	Payment      PaymentRepository
	RefreshToken RefreshTokenRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		Payment:      NewPaymentRepository(db, log),
		RefreshToken: NewRefreshTokenRepository(db, log),
	}
}

package repository

import (
	"context"
	"fmt"
	"time"

	"secure-portal/internal/data/entity"
	"secure-portal/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	FindByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Payment, error)
	FindAll(ctx context.Context) ([]*entity.Payment, error)
	UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status entity.PaymentStatus, reviewerID uuid.UUID, at time.Time) (bool, error)
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, user_id, amount, currency, swift_code, description,
		                      status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.UserID,
		payment.Amount,
		payment.Currency,
		payment.SwiftCode,
		payment.Description,
		payment.Status,
		payment.CreatedAt,
		payment.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("user_id", payment.UserID.String()),
		)
		return fmt.Errorf("create payment: %w", err)
	}

	return nil
}

func (r *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	query := `
		SELECT id, user_id, amount, currency, swift_code, description,
		       status, verified_by, verified_at, created_at, updated_at
		FROM payments
		WHERE id = $1
	`

	var payment entity.Payment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&payment.ID,
		&payment.UserID,
		&payment.Amount,
		&payment.Currency,
		&payment.SwiftCode,
		&payment.Description,
		&payment.Status,
		&payment.VerifiedBy,
		&payment.VerifiedAt,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment by ID",
			zap.Error(err),
			zap.String("payment_id", id.String()),
		)
		return nil, fmt.Errorf("find payment by ID %s: %w", id.String(), err)
	}

	return &payment, nil
}

func (r *paymentRepository) FindByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Payment, error) {
	query := `
		SELECT id, user_id, amount, currency, swift_code, description,
		       status, verified_by, verified_at, created_at, updated_at
		FROM payments
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to get payments by owner",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find payments by owner %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var payments []*entity.Payment
	for rows.Next() {
		var payment entity.Payment
		err := rows.Scan(
			&payment.ID,
			&payment.UserID,
			&payment.Amount,
			&payment.Currency,
			&payment.SwiftCode,
			&payment.Description,
			&payment.Status,
			&payment.VerifiedBy,
			&payment.VerifiedAt,
			&payment.CreatedAt,
			&payment.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan payment row", zap.Error(err))
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, &payment)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate payments rows: %w", err)
	}

	return payments, nil
}

// FindAll returns every payment with its owner joined, newest first.
// Used by the employee review listing.
func (r *paymentRepository) FindAll(ctx context.Context) ([]*entity.Payment, error) {
	query := `
		SELECT p.id, p.user_id, p.amount, p.currency, p.swift_code, p.description,
		       p.status, p.verified_by, p.verified_at, p.created_at, p.updated_at,
		       u.id, u.username, u.email, u.account_number, u.role, u.created_at
		FROM payments p
		JOIN users u ON u.id = p.user_id
		ORDER BY p.created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get all payments", zap.Error(err))
		return nil, fmt.Errorf("find all payments: %w", err)
	}
	defer rows.Close()

	var payments []*entity.Payment
	for rows.Next() {
		var payment entity.Payment
		var owner entity.User
		err := rows.Scan(
			&payment.ID,
			&payment.UserID,
			&payment.Amount,
			&payment.Currency,
			&payment.SwiftCode,
			&payment.Description,
			&payment.Status,
			&payment.VerifiedBy,
			&payment.VerifiedAt,
			&payment.CreatedAt,
			&payment.UpdatedAt,
			&owner.ID,
			&owner.Username,
			&owner.Email,
			&owner.AccountNumber,
			&owner.Role,
			&owner.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan payment row", zap.Error(err))
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payment.Owner = &owner
		payments = append(payments, &payment)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate payments rows: %w", err)
	}

	return payments, nil
}

// UpdateStatusIfPending transitions a payment out of pending with a single
// conditional UPDATE. Returns false when no pending row matched, which covers
// both a missing payment and a concurrent reviewer winning the race.
func (r *paymentRepository) UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status entity.PaymentStatus, reviewerID uuid.UUID, at time.Time) (bool, error) {
	query := `
		UPDATE payments
		SET status = $2, verified_by = $3, verified_at = $4, updated_at = $4
		WHERE id = $1 AND status = 'pending'
	`

	result, err := r.db.Exec(ctx, query, id, status, reviewerID, at)
	if err != nil {
		r.log.Error("Failed to update payment status",
			zap.Error(err),
			zap.String("payment_id", id.String()),
			zap.String("status", string(status)),
		)
		return false, fmt.Errorf("update payment status %s: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

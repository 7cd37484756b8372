package usecase

import (
	"context"
	"fmt"
	"time"

	"secure-portal/internal/data/entity"
	"secure-portal/internal/data/repository"
	"secure-portal/internal/dto/request"
	"secure-portal/internal/dto/response"
	"secure-portal/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type PaymentService interface {
	CreatePayment(ctx context.Context, userID uuid.UUID, req *request.CreatePaymentRequest) (*response.PaymentResponse, error)
	ListOwn(ctx context.Context, userID uuid.UUID) ([]response.PaymentResponse, error)
	ListAll(ctx context.Context) ([]response.PaymentResponse, error)
	VerifyPayment(ctx context.Context, paymentID string, decision string, reviewerID uuid.UUID) (*response.PaymentResponse, string, error)
}

type paymentService struct {
	repo  *repository.Repository
	swift SwiftGateway
	log   *zap.Logger
}

func NewPaymentService(repo *repository.Repository, swift SwiftGateway, log *zap.Logger) PaymentService {
	return &paymentService{
		repo:  repo,
		swift: swift,
		log:   log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) CreatePayment(ctx context.Context, userID uuid.UUID, req *request.CreatePaymentRequest) (*response.PaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create payment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if req.Amount.Cmp(decimal.Zero) <= 0 {
		return nil, fmt.Errorf("validation failed: amount must be greater than 0")
	}

	currency := entity.Currency(req.Currency)
	if currency == "" {
		currency = entity.CurrencyZAR
	}

	now := time.Now()
	payment := &entity.Payment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:      userID,
		Amount:      req.Amount,
		Currency:    currency,
		SwiftCode:   req.SwiftCode,
		Description: req.Description,
		Status:      entity.PaymentStatusPending,
	}

	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		s.log.Error("Failed to create payment", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to create payment")
	}

	s.log.Info("Payment created",
		zap.String("payment_id", payment.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("amount", payment.Amount.String()),
		zap.String("currency", string(currency)))

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

func (s *paymentService) ListOwn(ctx context.Context, userID uuid.UUID) ([]response.PaymentResponse, error) {
	payments, err := s.repo.Payment.FindByOwner(ctx, userID)
	if err != nil {
		s.log.Error("Failed to list payments", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to list payments")
	}

	return response.PaymentsToResponse(payments), nil
}

func (s *paymentService) ListAll(ctx context.Context) ([]response.PaymentResponse, error) {
	payments, err := s.repo.Payment.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list all payments", zap.Error(err))
		return nil, fmt.Errorf("failed to list payments")
	}

	return response.PaymentsToResponse(payments), nil
}

// VerifyPayment transitions a pending payment based on the reviewer's
// decision: verified moves it to submitted (and triggers the SWIFT hook),
// rejected moves it to rejected. The conditional update in the repository
// guarantees only one reviewer wins when two race on the same payment.
func (s *paymentService) VerifyPayment(ctx context.Context, paymentID string, decision string, reviewerID uuid.UUID) (*response.PaymentResponse, string, error) {
	var targetStatus entity.PaymentStatus
	switch decision {
	case "verified":
		targetStatus = entity.PaymentStatusSubmitted
	case "rejected":
		targetStatus = entity.PaymentStatusRejected
	default:
		return nil, "", fmt.Errorf("validation failed: status must be verified or rejected")
	}

	paymentUUID, err := uuid.Parse(paymentID)
	if err != nil {
		return nil, "", fmt.Errorf("validation failed: invalid payment ID format")
	}

	reviewer, err := s.repo.User.FindByID(ctx, reviewerID)
	if err != nil {
		s.log.Error("Failed to load reviewer", zap.Error(err), zap.String("reviewer_id", reviewerID.String()))
		return nil, "", fmt.Errorf("failed to check reviewer")
	}
	if reviewer == nil || reviewer.Role != entity.RoleEmployee {
		s.log.Warn("Non-employee attempted payment review",
			zap.String("reviewer_id", reviewerID.String()))
		return nil, "", fmt.Errorf("employee access required")
	}

	updated, err := s.repo.Payment.UpdateStatusIfPending(ctx, paymentUUID, targetStatus, reviewerID, time.Now())
	if err != nil {
		s.log.Error("Failed to update payment status", zap.Error(err), zap.String("payment_id", paymentID))
		return nil, "", fmt.Errorf("failed to update payment")
	}
	if !updated {
		return nil, "", fmt.Errorf("pending payment not found")
	}

	payment, err := s.repo.Payment.FindByID(ctx, paymentUUID)
	if err != nil || payment == nil {
		s.log.Error("Failed to reload payment after review", zap.Error(err), zap.String("payment_id", paymentID))
		return nil, "", fmt.Errorf("failed to load payment")
	}

	message := "Payment rejected"
	if targetStatus == entity.PaymentStatusSubmitted {
		if err := s.swift.Submit(ctx, payment); err != nil {
			// The gateway is simulated; a failure must not undo the transition.
			s.log.Warn("SWIFT submission failed", zap.Error(err), zap.String("payment_id", paymentID))
		}
		message = "Payment verified and submitted to SWIFT"
	}

	s.log.Info("Payment reviewed",
		zap.String("payment_id", paymentID),
		zap.String("decision", decision),
		zap.String("reviewer_id", reviewerID.String()))

	resp := response.PaymentToResponse(payment)
	return &resp, message, nil
}

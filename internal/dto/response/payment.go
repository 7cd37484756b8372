package response

import (
	"time"

	"secure-portal/internal/data/entity"

	"github.com/shopspring/decimal"
)

type PaymentResponse struct {
	ID          string               `json:"id"`
	Amount      decimal.Decimal      `json:"amount"`
	Currency    entity.Currency      `json:"currency"`
	SwiftCode   *string              `json:"swiftCode,omitempty"`
	Description *string              `json:"description,omitempty"`
	Status      entity.PaymentStatus `json:"status"`
	VerifiedBy  *string              `json:"verifiedBy,omitempty"`
	VerifiedAt  *time.Time           `json:"verifiedAt,omitempty"`
	Date        time.Time            `json:"date"`
	Owner       *UserResponse        `json:"owner,omitempty"`
}

type PaymentCreatedResponse struct {
	OK      bool            `json:"ok"`
	Payment PaymentResponse `json:"payment"`
}

type PaymentListResponse struct {
	OK       bool              `json:"ok"`
	Payments []PaymentResponse `json:"payments"`
}

type VerifyPaymentResponse struct {
	OK      bool            `json:"ok"`
	Payment PaymentResponse `json:"payment"`
	Message string          `json:"message"`
}

func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	resp := PaymentResponse{
		ID:          payment.ID.String(),
		Amount:      payment.Amount,
		Currency:    payment.Currency,
		SwiftCode:   payment.SwiftCode,
		Description: payment.Description,
		Status:      payment.Status,
		VerifiedAt:  payment.VerifiedAt,
		Date:        payment.CreatedAt,
	}

	if payment.VerifiedBy != nil {
		verifiedBy := payment.VerifiedBy.String()
		resp.VerifiedBy = &verifiedBy
	}

	if payment.Owner != nil {
		owner := UserToResponse(payment.Owner)
		resp.Owner = &owner
	}

	return resp
}

func PaymentsToResponse(payments []*entity.Payment) []PaymentResponse {
	responses := make([]PaymentResponse, 0, len(payments))
	for _, payment := range payments {
		responses = append(responses, PaymentToResponse(payment))
	}
	return responses
}

package request

import (
	"github.com/shopspring/decimal"
)

type CreatePaymentRequest struct {
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Currency    string          `json:"currency,omitempty" validate:"omitempty,oneof=ZAR USD EUR GBP"`
	SwiftCode   *string         `json:"swiftCode,omitempty" validate:"omitempty,swiftcode"`
	Description *string         `json:"description,omitempty"`
}

type VerifyPaymentRequest struct {
	Status string `json:"status" validate:"required,oneof=verified rejected"`
}

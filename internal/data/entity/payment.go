package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusVerified  PaymentStatus = "verified"
	PaymentStatusRejected  PaymentStatus = "rejected"
	PaymentStatusSubmitted PaymentStatus = "submitted"
)

type Currency string

const (
	CurrencyZAR Currency = "ZAR"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

type Payment struct {
	Base
	UserID      uuid.UUID       `db:"user_id"`
	Amount      decimal.Decimal `db:"amount"`
	Currency    Currency        `db:"currency"`
	SwiftCode   *string         `db:"swift_code"`
	Description *string         `db:"description"`
	Status      PaymentStatus   `db:"status"`
	VerifiedBy  *uuid.UUID      `db:"verified_by"`
	VerifiedAt  *time.Time      `db:"verified_at"`

	// Populated only on admin listings.
	Owner *User `db:"-"`
}

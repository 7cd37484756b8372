package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken stores the signed JWT verbatim. A token missing from this
// table is treated as revoked even if its signature still verifies.
type RefreshToken struct {
	BaseSimple
	Token     string    `db:"token"`
	UserID    uuid.UUID `db:"user_id"`
	ExpiresAt time.Time `db:"expires_at"`
}

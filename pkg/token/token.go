package token

import (
	"fmt"
	"time"

	"secure-portal/internal/data/entity"

	"github.com/golang-jwt/jwt/v5"
)

const minSecretLength = 32

// Claims carried by access tokens. Refresh tokens only fill the subject.
type Claims struct {
	Email         string `json:"email,omitempty"`
	Username      string `json:"username,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
	Role          string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies portal JWTs with a shared HMAC secret.
type Issuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewIssuer(secret string, accessTTL, refreshTTL time.Duration) (*Issuer, error) {
	if len(secret) < minSecretLength {
		return nil, fmt.Errorf("signing secret must be at least %d characters", minSecretLength)
	}

	return &Issuer{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}

// IssueAccess creates a short-lived token carrying the user's identity and role.
func (i *Issuer) IssueAccess(user *entity.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Email:    user.Email,
		Username: user.Username,
		Role:     string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.accessTTL)),
		},
	}
	if user.AccountNumber != nil {
		claims.AccountNumber = *user.AccountNumber
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// IssueRefresh creates a long-lived token carrying only the user id.
func (i *Issuer) IssueRefresh(user *entity.User) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.refreshTTL)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify parses and validates the signature and expiry of a token.
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}

// AccessTTL exposes the configured access-token lifetime.
func (i *Issuer) AccessTTL() time.Duration {
	return i.accessTTL
}

// RefreshTTL exposes the configured refresh-token lifetime.
func (i *Issuer) RefreshTTL() time.Duration {
	return i.refreshTTL
}

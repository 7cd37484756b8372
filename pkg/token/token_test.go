package token_test

import (
	"testing"
	"time"

	"secure-portal/internal/data/entity"
	"secure-portal/pkg/token"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func testUser() *entity.User {
	accountNumber := "ACC1234"
	return &entity.User{
		Base: entity.Base{
			ID: uuid.New(),
		},
		Username:      "alice01",
		Email:         "a@x.com",
		AccountNumber: &accountNumber,
		Role:          entity.RoleCustomer,
	}
}

func TestNewIssuer_RejectsShortSecret(t *testing.T) {
	_, err := token.NewIssuer("too-short", 15*time.Minute, 30*24*time.Hour)
	assert.Error(t, err)
}

func TestIssueAccess_RoundTrip(t *testing.T) {
	issuer, err := token.NewIssuer(testSecret, 15*time.Minute, 30*24*time.Hour)
	require.NoError(t, err)

	user := testUser()

	signed, err := issuer.IssueAccess(user)
	require.NoError(t, err)

	claims, err := issuer.Verify(signed)
	require.NoError(t, err)

	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Username, claims.Username)
	assert.Equal(t, "ACC1234", claims.AccountNumber)
	assert.Equal(t, string(entity.RoleCustomer), claims.Role)
}

func TestIssueRefresh_CarriesOnlySubject(t *testing.T) {
	issuer, err := token.NewIssuer(testSecret, 15*time.Minute, 30*24*time.Hour)
	require.NoError(t, err)

	user := testUser()

	signed, err := issuer.IssueRefresh(user)
	require.NoError(t, err)

	claims, err := issuer.Verify(signed)
	require.NoError(t, err)

	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Empty(t, claims.Email)
	assert.Empty(t, claims.Role)
	assert.Empty(t, claims.AccountNumber)
}

func TestVerify_RejectsExpiredToken(t *testing.T) {
	issuer, err := token.NewIssuer(testSecret, -1*time.Minute, 30*24*time.Hour)
	require.NoError(t, err)

	signed, err := issuer.IssueAccess(testUser())
	require.NoError(t, err)

	_, err = issuer.Verify(signed)
	assert.Error(t, err)
}

func TestVerify_RejectsWrongSecret(t *testing.T) {
	issuer, err := token.NewIssuer(testSecret, 15*time.Minute, 30*24*time.Hour)
	require.NoError(t, err)

	other, err := token.NewIssuer("another-secret-of-32-characters!", 15*time.Minute, 30*24*time.Hour)
	require.NoError(t, err)

	signed, err := issuer.IssueAccess(testUser())
	require.NoError(t, err)

	_, err = other.Verify(signed)
	assert.Error(t, err)
}

func TestVerify_RejectsGarbage(t *testing.T) {
	issuer, err := token.NewIssuer(testSecret, 15*time.Minute, 30*24*time.Hour)
	require.NoError(t, err)

	_, err = issuer.Verify("not-a-jwt")
	assert.Error(t, err)
}

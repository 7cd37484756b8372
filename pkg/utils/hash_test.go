package utils_test

import (
	"testing"

	"secure-portal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("Abc12345!", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "Abc12345!", hash)

	assert.True(t, utils.CheckPasswordHash("Abc12345!", hash))
	assert.False(t, utils.CheckPasswordHash("Abc12345?", hash))
}

func TestHashPassword_OutOfRangeCostFallsBack(t *testing.T) {
	hash, err := utils.HashPassword("Abc12345!", 99)
	require.NoError(t, err)
	assert.True(t, utils.CheckPasswordHash("Abc12345!", hash))
}

func TestCheckPasswordHash_MalformedHash(t *testing.T) {
	// A corrupt stored hash must read as a mismatch, not a panic.
	assert.False(t, utils.CheckPasswordHash("Abc12345!", "not-a-bcrypt-hash"))
	assert.False(t, utils.CheckPasswordHash("Abc12345!", ""))
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, VerifyPassword(hash, "correct horse battery staple"))
	assert.False(t, VerifyPassword(hash, "wrong password"))
}

func TestVerifyPasswordRejectsPlaintextStore(t *testing.T) {
	// A legacy row holding the plaintext itself must not verify.
	assert.False(t, VerifyPassword("admin123", "admin123"))
}

func TestLoginUnknownUser(t *testing.T) {
	// This would require mocking the store
	// Placeholder for demonstration
	t.Skip("Requires mocked store")
}

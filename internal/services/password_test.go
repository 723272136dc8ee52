package services_test

import (
	"testing"

	"boxful/internal/services"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestNewPasswordHasher_CostValidation(t *testing.T) {
	_, err := services.NewPasswordHasher(bcrypt.MaxCost + 1)
	assert.Error(t, err)

	_, err = services.NewPasswordHasher(-1)
	assert.Error(t, err)

	hasher, err := services.NewPasswordHasher(bcrypt.DefaultCost)
	assert.NoError(t, err)
	assert.NotNil(t, hasher)
}

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	// MinCost keeps the test fast; the work factor does not change semantics
	hasher, err := services.NewPasswordHasher(bcrypt.MinCost)
	assert.NoError(t, err)

	digest1, err := hasher.Hash("Secret123!")
	assert.NoError(t, err)
	assert.NotEmpty(t, digest1)
	assert.NotEqual(t, "Secret123!", digest1)

	digest2, err := hasher.Hash("Secret123!")
	assert.NoError(t, err)

	// The embedded random salt makes each digest unique
	assert.NotEqual(t, digest1, digest2)

	// Both digests verify against the original plaintext
	assert.True(t, hasher.Verify("Secret123!", digest1))
	assert.True(t, hasher.Verify("Secret123!", digest2))
}

func TestPasswordHasher_VerifyRejectsWrongPassword(t *testing.T) {
	hasher, err := services.NewPasswordHasher(bcrypt.MinCost)
	assert.NoError(t, err)

	digest, err := hasher.Hash("correct-password")
	assert.NoError(t, err)

	assert.False(t, hasher.Verify("wrong-password", digest))
	assert.False(t, hasher.Verify("", digest))
}

func TestPasswordHasher_VerifyMalformedDigest(t *testing.T) {
	hasher, err := services.NewPasswordHasher(bcrypt.MinCost)
	assert.NoError(t, err)

	// A malformed digest is a mismatch, never a panic or error
	assert.False(t, hasher.Verify("anything", "not-a-bcrypt-digest"))
	assert.False(t, hasher.Verify("anything", ""))
}

package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(testConfig())

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("WrongPassword123!", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_DistinctSalts(t *testing.T) {
	hasher := NewBcryptHasher(testConfig())

	first, err := hasher.Hash("StrongPass123!")
	assert.NoError(t, err)
	second, err := hasher.Hash("StrongPass123!")
	assert.NoError(t, err)

	// bcrypt salts each hash, so the digests differ.
	assert.NotEqual(t, first, second)
}

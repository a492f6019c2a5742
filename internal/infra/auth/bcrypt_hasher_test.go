package auth

import (
	"testing"

	"soko/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	hash, err := hasher.Hash("karibu-sana-2024")
	require.NoError(t, err)
	assert.NotEqual(t, "karibu-sana-2024", hash)

	assert.True(t, hasher.Check("karibu-sana-2024", hash))
	assert.False(t, hasher.Check("wrong", hash))
	assert.False(t, hasher.Check("karibu-sana-2024", "not-a-hash"))
}

func TestBcryptHasher_CostFallback(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 99}})

	hash, err := hasher.Hash("pw")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

package auth

import (
	"strings"
	"testing"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newFastHasher() *bcryptHasher {
	return NewBcryptHasherWithCost(bcrypt.MinCost).(*bcryptHasher)
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newFastHasher()

	password := "croissant42"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_HashWithWeakPassword(t *testing.T) {
	hasher := newFastHasher()

	testCases := []struct {
		password    string
		expectedErr string
	}{
		{"abc1", "at least 8 characters"},
		{"        ", "must not be blank"},
		{"12345678", "at least one letter"},
		{"baguettes", "at least one number"},
		{strings.Repeat("a1", 40), "at most 72 bytes"},
	}

	for _, tc := range testCases {
		t.Run(tc.expectedErr, func(t *testing.T) {
			_, err := hasher.Hash(tc.password)
			require.Error(t, err)

			appErr, ok := errors.AsType[domainerrors.AppError](err)
			require.True(t, ok)
			assert.Equal(t, "PASSWORD_TOO_WEAK", appErr.ErrorCode())
			assert.Contains(t, appErr.Details(), tc.expectedErr)
		})
	}
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newFastHasher()
	password := "sourdough99"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("sourdough98", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_CostFromConfig(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 5}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("brioche2024")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}

func TestBcryptHasher_CostIsClamped(t *testing.T) {
	assert.Equal(t, bcrypt.MinCost, NewBcryptHasherWithCost(1).(*bcryptHasher).cost)
	assert.Equal(t, bcrypt.MaxCost, NewBcryptHasherWithCost(99).(*bcryptHasher).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(&config.Config{}).(*bcryptHasher).cost)
}

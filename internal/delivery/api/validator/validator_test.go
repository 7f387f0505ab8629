package validator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type productRequest struct {
	Name  string          `json:"name" validate:"required,max=120"`
	Price decimal.Decimal `json:"price" validate:"gt=0"`
	Stock int             `json:"stock" validate:"gte=0"`
	Email string          `json:"contactEmail,omitempty" validate:"omitempty,email"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	t.Run("valid request", func(t *testing.T) {
		req := &productRequest{Name: "Sourdough", Price: decimal.RequireFromString("3500.50"), Stock: 4}

		assert.NoError(t, v.Validate(req))
	})

	t.Run("reports json field names", func(t *testing.T) {
		req := &productRequest{Price: decimal.Zero, Stock: -1, Email: "nope"}

		err := v.Validate(req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "name is required")
		assert.Contains(t, err.Error(), "price must be greater than 0")
		assert.Contains(t, err.Error(), "stock must be greater than or equal to 0")
		assert.Contains(t, err.Error(), "contactEmail must be a valid email address")
	})
}

package kernel_test

import (
	"testing"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderID(t *testing.T) {
	t.Run("accepts identifier tokens", func(t *testing.T) {
		for _, value := range []string{"A1", "order-42", "ORD_2024_0001", "7"} {
			id, err := kernel.NewOrderID(value)
			require.NoError(t, err, value)
			assert.Equal(t, value, id.String())
			require.NoError(t, id.Validate())
		}
	})

	t.Run("rejects empty string", func(t *testing.T) {
		_, err := kernel.NewOrderID("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects malformed tokens", func(t *testing.T) {
		for _, value := range []string{"has space", "tab\tid", "-leading", "_leading", "order#1", "주문1"} {
			_, err := kernel.NewOrderID(value)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, value)
		}
	})
}

func TestOrderIDValidate(t *testing.T) {
	var zero kernel.OrderID
	require.ErrorIs(t, zero.Validate(), errs.ErrValueIsRequired)
}

func TestOrderIDIsEqual(t *testing.T) {
	a, err := kernel.NewOrderID("A1")
	require.NoError(t, err)
	b, err := kernel.NewOrderID("A1")
	require.NoError(t, err)
	c, err := kernel.NewOrderID("A2")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

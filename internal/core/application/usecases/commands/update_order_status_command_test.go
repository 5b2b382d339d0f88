package commands_test

import (
	"testing"

	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }
func strPtr(s string) *string { return &s }

func TestNewUpdateOrderStatusCommand(t *testing.T) {
	t.Run("minimal", func(t *testing.T) {
		cmd, err := commands.NewUpdateOrderStatusCommand(mustOrderID(t, "A1"), order.InTransit, nil, nil)
		require.NoError(t, err)

		assert.Equal(t, "A1", cmd.OrderID().String())
		assert.Equal(t, order.InTransit, cmd.Status())
		assert.Nil(t, cmd.ContainerID())
		assert.Nil(t, cmd.ExpectedVersion())
	})

	t.Run("with optional fields", func(t *testing.T) {
		cmd, err := commands.NewUpdateOrderStatusCommand(
			mustOrderID(t, "A1"), order.InTransit, strPtr("C2"), int64Ptr(3))
		require.NoError(t, err)

		assert.Equal(t, "C2", *cmd.ContainerID())
		assert.Equal(t, int64(3), *cmd.ExpectedVersion())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand(mustOrderID(t, "A1"), order.Unknown, nil, nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects empty container", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand(mustOrderID(t, "A1"), order.InTransit, strPtr(""), nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects non-positive expected version", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand(mustOrderID(t, "A1"), order.InTransit, nil, int64Ptr(0))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects unconstructed order id", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand(kernel.OrderID{}, order.InTransit, nil, nil)
		require.Error(t, err)
	})
}

func TestUpdateOrderStatusCommandValidate(t *testing.T) {
	var cmd commands.UpdateOrderStatusCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrUpdateOrderStatusCommandIsNotConstructed)
}

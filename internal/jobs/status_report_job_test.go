package jobs

import (
	"testing"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeOrder(t *testing.T, id string, status order.Status) *order.Order {
	t.Helper()

	orderID, err := kernel.NewOrderID(id)
	require.NoError(t, err)

	aggregate, err := order.NewOrder(orderID, "C1", "Kim", "Busan")
	require.NoError(t, err)

	if status != order.Received {
		require.NoError(t, aggregate.ChangeStatus(status))
	}
	return aggregate
}

func TestCountByStatus(t *testing.T) {
	t.Run("tallies each bucket", func(t *testing.T) {
		orders := []*order.Order{
			makeOrder(t, "A1", order.Received),
			makeOrder(t, "A2", order.Received),
			makeOrder(t, "A3", order.InTransit),
			makeOrder(t, "A4", order.Cancelled),
		}

		counts := countByStatus(orders)

		assert.Equal(t, 2, counts[order.Received])
		assert.Equal(t, 1, counts[order.InTransit])
		assert.Equal(t, 0, counts[order.Delivered])
		assert.Equal(t, 1, counts[order.Cancelled])
	})

	t.Run("empty population still reports every status", func(t *testing.T) {
		counts := countByStatus(nil)

		require.Len(t, counts, 4)
		for _, status := range []order.Status{order.Received, order.InTransit, order.Delivered, order.Cancelled} {
			assert.Equal(t, 0, counts[status])
		}
	})
}

package commands_test

import (
	"context"
	"testing"

	"ordertrack/internal/adapters/out/memory/orderstore"
	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func seedOrder(t *testing.T, store ports.OrderStore, orderID string) *order.Order {
	t.Helper()

	createCmd, err := commands.NewCreateOrderCommand(mustOrderID(t, orderID), "C1", "Kim", "Busan")
	require.NoError(t, err)

	created, err := commands.NewCreateOrderCommandHandler(store).Handle(t.Context(), createCmd)
	require.NoError(t, err)
	return created
}

func update(
	t *testing.T,
	h commands.UpdateOrderStatusCommandHandler,
	orderID string,
	status order.Status,
	expectedVersion *int64,
) (*order.Order, error) {
	t.Helper()

	cmd, err := commands.NewUpdateOrderStatusCommand(mustOrderID(t, orderID), status, nil, expectedVersion)
	require.NoError(t, err)
	return h.Handle(t.Context(), cmd)
}

// The full lifecycle scenario: create, advance with a matching version,
// get rejected on a stale version, deliver, then bounce off the terminal state.
func TestUpdateOrderStatusCommandHandler_Scenario(t *testing.T) {
	store := orderstore.NewStore()
	h := commands.NewUpdateOrderStatusCommandHandler(store)

	created := seedOrder(t, store, "A1")
	assert.Equal(t, order.Received, created.Status())
	assert.Equal(t, int64(1), created.Version())

	updated, err := update(t, h, "A1", order.InTransit, int64Ptr(1))
	require.NoError(t, err)
	assert.Equal(t, order.InTransit, updated.Status())
	assert.Equal(t, int64(2), updated.Version())

	_, err = update(t, h, "A1", order.Delivered, int64Ptr(1))
	require.ErrorIs(t, err, errs.ErrVersionConflict)

	delivered, err := update(t, h, "A1", order.Delivered, int64Ptr(2))
	require.NoError(t, err)
	assert.Equal(t, order.Delivered, delivered.Status())
	assert.Equal(t, int64(3), delivered.Version())

	_, err = update(t, h, "A1", order.InTransit, int64Ptr(3))
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestUpdateOrderStatusCommandHandler_NotFound(t *testing.T) {
	h := commands.NewUpdateOrderStatusCommandHandler(orderstore.NewStore())

	_, err := update(t, h, "ghost", order.InTransit, nil)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUpdateOrderStatusCommandHandler_SkipTransition(t *testing.T) {
	store := orderstore.NewStore()
	h := commands.NewUpdateOrderStatusCommandHandler(store)
	seedOrder(t, store, "A1")

	_, err := update(t, h, "A1", order.Delivered, nil)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)

	// The rejected transition must not have written anything.
	stored, err := store.Get(t.Context(), mustOrderID(t, "A1"))
	require.NoError(t, err)
	assert.Equal(t, order.Received, stored.Status())
	assert.Equal(t, int64(1), stored.Version())
}

func TestUpdateOrderStatusCommandHandler_IdempotentResubmission(t *testing.T) {
	store := orderstore.NewStore()
	h := commands.NewUpdateOrderStatusCommandHandler(store)
	seedOrder(t, store, "A1")

	confirmed, err := update(t, h, "A1", order.Received, nil)
	require.NoError(t, err)
	assert.Equal(t, order.Received, confirmed.Status())
	assert.Equal(t, int64(1), confirmed.Version(), "confirmation must not bump the version")
}

func TestUpdateOrderStatusCommandHandler_ContainerReassignment(t *testing.T) {
	store := orderstore.NewStore()
	h := commands.NewUpdateOrderStatusCommandHandler(store)
	seedOrder(t, store, "A1")

	t.Run("same status with new container still writes", func(t *testing.T) {
		cmd, err := commands.NewUpdateOrderStatusCommand(
			mustOrderID(t, "A1"), order.Received, strPtr("C2"), nil)
		require.NoError(t, err)

		updated, err := h.Handle(t.Context(), cmd)
		require.NoError(t, err)
		assert.Equal(t, "C2", updated.ContainerID())
		assert.Equal(t, int64(2), updated.Version())
	})

	t.Run("container is frozen on a terminal order", func(t *testing.T) {
		_, err := update(t, h, "A1", order.Cancelled, nil)
		require.NoError(t, err)

		cmd, err := commands.NewUpdateOrderStatusCommand(
			mustOrderID(t, "A1"), order.Cancelled, strPtr("C3"), nil)
		require.NoError(t, err)

		_, err = h.Handle(t.Context(), cmd)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

// MockOrderStore lets a test interleave a concurrent writer between the
// handler's read and its compare-and-swap.
type MockOrderStore struct{ mock.Mock }

func (m *MockOrderStore) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderStore) List(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderStore) Insert(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderStore) CompareAndSwap(
	ctx context.Context,
	id kernel.OrderID,
	expectedVersion int64,
	updated *order.Order,
) (*order.Order, error) {
	args := m.Called(ctx, id, expectedVersion, updated)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

// A writer that sneaks in between the handler's read and its swap must
// surface as a version conflict, never be silently resolved.
func TestUpdateOrderStatusCommandHandler_RaceLostAtSwap(t *testing.T) {
	ctx := t.Context()
	id := mustOrderID(t, "A1")

	current, err := order.NewOrder(id, "C1", "Kim", "Busan")
	require.NoError(t, err)

	store := new(MockOrderStore)
	store.On("Get", ctx, id).Return(current, nil).Once()
	store.On("CompareAndSwap", ctx, id, int64(1), mock.AnythingOfType("*order.Order")).
		Return(nil, errs.NewVersionConflictError("A1", 1, 2)).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(store)
	_, err = update(t, h, "A1", order.InTransit, int64Ptr(1))
	require.ErrorIs(t, err, errs.ErrVersionConflict)
	store.AssertExpectations(t)
}

package commands

import (
	"context"

	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/pkg/metrics"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// New orders enter the lifecycle in RECEIVED status at version 1.
type CreateOrderCommandHandler struct {
	store ports.OrderStore
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(store ports.OrderStore) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		store: store,
	}
}

// Handle processes the order creation command and returns the created order.
//
// A duplicate business identifier surfaces as an ObjectAlreadyExistsError
// from the store; the failed insert has no side effects.
func (h CreateOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.ContainerID(),
		cmd.CustomerName(),
		cmd.Destination(),
	)
	if err != nil {
		return nil, err
	}

	if err = h.store.Insert(ctx, aggregate); err != nil {
		return nil, err
	}

	metrics.OrdersCreated.Inc()
	return aggregate, nil
}

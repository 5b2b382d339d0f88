package queries

import (
	"context"

	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/ports"
)

// GetOrderQueryHandler retrieves a single order from the store.
type GetOrderQueryHandler struct {
	store ports.OrderStore
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(store ports.OrderStore) GetOrderQueryHandler {
	return GetOrderQueryHandler{store: store}
}

// Handle executes the lookup. A missing order surfaces as an
// ObjectNotFoundError from the store.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.store.Get(ctx, query.OrderID())
}

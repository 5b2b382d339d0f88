package queries

import (
	"context"

	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/ports"
)

// ListOrdersQueryHandler retrieves orders from the store in insertion order.
type ListOrdersQueryHandler struct {
	store ports.OrderStore
}

// NewListOrdersQueryHandler creates a handler for order listings.
func NewListOrdersQueryHandler(store ports.OrderStore) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{store: store}
}

// Handle executes the listing. A filter that matches nothing yields an
// empty slice, not an error.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.store.List(ctx, ports.OrderFilter{OrderID: query.OrderID()})
}

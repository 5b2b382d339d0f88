package queries

import (
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery represents a request for orders, optionally narrowed to a
// single business identifier. Listing always succeeds; an empty result is a
// valid outcome.
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	orderID *kernel.OrderID

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for all orders.
func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}
}

// NewFilteredListOrdersQuery creates a query narrowed to one identifier.
func NewFilteredListOrdersQuery(orderID kernel.OrderID) (ListOrdersQuery, error) {
	if err := orderID.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		orderID: &orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// OrderID returns the filter identifier, or nil for an unfiltered listing.
func (q ListOrdersQuery) OrderID() *kernel.OrderID {
	return q.orderID
}

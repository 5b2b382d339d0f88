package ports

import (
	"context"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
)

// OrderFilter narrows a List call. The zero value matches everything.
type OrderFilter struct {
	// OrderID, when set, restricts the result to the order with exactly
	// this business identifier.
	OrderID *kernel.OrderID
}

// OrderStore is the persistence contract for order aggregates. These four
// operations are the entire contract; any backend (in-memory map, embedded
// DB, networked store) is valid as long as Insert and CompareAndSwap are
// atomic with respect to each other for the same key.
//
// The store is the only shared mutable resource in the service: all
// cross-request coordination flows through CompareAndSwap, so concurrent
// writes against the same order behave as if serialized, with exactly one
// winner per version number.
type OrderStore interface {
	// Get retrieves an order by its business identifier.
	// Returns an ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// List returns orders matching the filter, in insertion order.
	// An empty result is a valid outcome, not an error.
	List(ctx context.Context, filter OrderFilter) ([]*order.Order, error)

	// Insert atomically persists a new order. Fails with an
	// ObjectAlreadyExistsError, without side effects, when the business
	// identifier is already present.
	Insert(ctx context.Context, aggregate *order.Order) error

	// CompareAndSwap atomically replaces the stored record only if its
	// version still equals expectedVersion. On success the record is
	// persisted with version expectedVersion+1 and a refreshed update
	// timestamp, and the stored result is returned.
	//
	// Fails with a VersionConflictError when a concurrent writer got there
	// first, or an ObjectNotFoundError when the order does not exist.
	CompareAndSwap(
		ctx context.Context,
		id kernel.OrderID,
		expectedVersion int64,
		updated *order.Order,
	) (*order.Order, error)
}

// Package orderstore provides an in-memory implementation of the OrderStore
// port. It backs unit tests and local runs where a database is unwanted;
// the postgres adapter is the durable production backend.
package orderstore

import (
	"context"
	"sync"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/pkg/errs"
)

// record is the stored snapshot of an order. Snapshots are decoupled from
// the aggregates callers hold so later mutations of a caller's aggregate
// never leak into the store.
type record struct {
	id           kernel.OrderID
	containerID  string
	customerName string
	destination  string
	status       order.Status
	version      int64
	createdAt    time.Time
	updatedAt    time.Time
}

func (r record) toDomain() (*order.Order, error) {
	return order.RestoreOrder(
		r.id, r.containerID, r.customerName, r.destination,
		r.status, r.version, r.createdAt, r.updatedAt,
	)
}

func snapshot(aggregate *order.Order) record {
	return record{
		id:           aggregate.ID(),
		containerID:  aggregate.ContainerID(),
		customerName: aggregate.CustomerName(),
		destination:  aggregate.Destination(),
		status:       aggregate.Status(),
		version:      aggregate.Version(),
		createdAt:    aggregate.CreatedAt(),
		updatedAt:    aggregate.UpdatedAt(),
	}
}

// Store is a mutex-guarded map keyed by business identifier. Insert and
// CompareAndSwap run under the same lock, which gives the per-key
// linearizability the port demands.
type Store struct {
	mu       sync.RWMutex
	records  map[string]record
	inserted []string
}

var _ ports.OrderStore = (*Store)(nil)

// NewStore creates an empty in-memory order store.
func NewStore() *Store {
	return &Store{
		records: make(map[string]record),
	}
}

// Get retrieves an order by its business identifier.
func (s *Store) Get(_ context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	rec, ok := s.records[id.String()]
	s.mu.RUnlock()

	if !ok {
		return nil, errs.NewObjectNotFoundError("order_id", id.String())
	}

	return rec.toDomain()
}

// List returns orders matching the filter in insertion order.
func (s *Store) List(_ context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*order.Order, 0, len(s.inserted))
	for _, key := range s.inserted {
		rec := s.records[key]
		if filter.OrderID != nil && !rec.id.IsEqual(*filter.OrderID) {
			continue
		}

		aggregate, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		result = append(result, aggregate)
	}

	return result, nil
}

// Insert atomically persists a new order, failing without side effects on a
// duplicate business identifier.
func (s *Store) Insert(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	key := aggregate.ID().String()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[key]; exists {
		return errs.NewObjectAlreadyExistsError("order_id", key)
	}

	s.records[key] = snapshot(aggregate)
	s.inserted = append(s.inserted, key)
	return nil
}

// CompareAndSwap replaces the stored record only if the stored version still
// equals expectedVersion, bumping the version and refreshing the update
// timestamp. Exactly one of two concurrent swaps against the same version
// can win.
func (s *Store) CompareAndSwap(
	_ context.Context,
	id kernel.OrderID,
	expectedVersion int64,
	updated *order.Order,
) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := updated.Validate(); err != nil {
		return nil, err
	}

	key := id.String()

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.records[key]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order_id", key)
	}

	if current.version != expectedVersion {
		return nil, errs.NewVersionConflictError(key, expectedVersion, current.version)
	}

	next := snapshot(updated)
	next.id = current.id
	next.createdAt = current.createdAt
	next.version = expectedVersion + 1
	next.updatedAt = time.Now().UTC()

	s.records[key] = next
	return next.toDomain()
}

package order

import (
	"errors"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a shipment order tracked from receipt to delivery or
// cancellation. It is the aggregate root of the order lifecycle.
//
// Order maintains these invariants:
//   - The business identifier is valid and immutable after creation
//   - Container, customer name and destination are non-empty
//   - Status transitions follow the lifecycle state machine
//   - The container can only be reassigned before a terminal status
//   - Can only be created through NewOrder or RestoreOrder
//
// Version and timestamps are owned by the store: the version recorded here
// is the one the aggregate was read at, and the store bumps it atomically
// on every accepted write.
type Order struct {
	// id is the externally supplied business identifier
	id kernel.OrderID

	// containerID identifies the physical shipping container
	containerID string

	// customerName is the ordering customer
	customerName string

	// destination is where the container is headed
	destination string

	// status is the current state in the order lifecycle
	status Status

	// version is the optimistic-concurrency token this aggregate was read at
	version int64

	// createdAt and updatedAt are service-set, never client-supplied
	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder creates a new Order with validation. The order starts in the
// Received entry status at version 1, with both timestamps set to the
// current time.
//
// Returns a joined validation error if the identifier or any of the
// required fields is invalid.
func NewOrder(id kernel.OrderID, containerID, customerName, destination string) (*Order, error) {
	now := time.Now().UTC()

	o := &Order{
		status:        Received,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setContainerID(containerID),
		o.setCustomerName(customerName),
		o.setDestination(destination),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persisted state. It applies the
// same field validation as NewOrder plus a status check, but takes version
// and timestamps as stored.
//
// Persistence adapters should always rebuild aggregates through this
// function so corrupt rows fail loudly instead of yielding half-valid
// domain objects.
func RestoreOrder(
	id kernel.OrderID,
	containerID, customerName, destination string,
	status Status,
	version int64,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		version:       version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setContainerID(containerID),
		o.setCustomerName(customerName),
		o.setDestination(destination),
		o.setStatus(status),
		o.setVersion(version),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. Call it when accepting aggregates across a port
// boundary to prevent bypassing validation with a struct literal.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their business identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's business identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// ContainerID returns the identifier of the physical shipping container.
func (o *Order) ContainerID() string {
	return o.containerID
}

// CustomerName returns the ordering customer's name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Destination returns the delivery destination.
func (o *Order) Destination() string {
	return o.destination
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Version returns the optimistic-concurrency version this aggregate was read at.
func (o *Order) Version() int64 {
	return o.version
}

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order was last written.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus moves the order to the requested status.
//
// The transition is checked against the lifecycle state machine; an edge
// outside the fixed table fails with an InvalidTransitionError and leaves
// the aggregate untouched. Re-submitting the current status succeeds
// without effect.
func (o *Order) ChangeStatus(requested Status) error {
	newStatus, err := o.status.TransitionTo(requested)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ReassignContainer replaces the shipping container.
//
// The container is mutable only while the order is still moving: once the
// status is terminal the reassignment fails with a validation error.
func (o *Order) ReassignContainer(containerID string) error {
	if o.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("container_id",
			errors.New("container cannot change on an order in a terminal status"))
	}

	return o.setContainerID(containerID)
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setContainerID(containerID string) error {
	if containerID == "" {
		return errs.NewValueIsRequiredError("container_id")
	}
	o.containerID = containerID
	return nil
}

func (o *Order) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customer_name")
	}
	o.customerName = customerName
	return nil
}

func (o *Order) setDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	o.destination = destination
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setVersion(version int64) error {
	if version < 1 {
		return errs.NewValueIsInvalidError("version")
	}
	o.version = version
	return nil
}

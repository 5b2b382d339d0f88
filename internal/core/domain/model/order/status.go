package order

import (
	"fmt"

	"ordertrack/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct shipment workflow.
//
// State transitions:
//
//	Received ──> InTransit ──> Delivered
//	    │            │
//	    └────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal: no transition leaves them.
// Re-submitting the current status is treated as an idempotent confirmation
// and is always allowed.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Received is the entry status assigned when an order is created.
	Received

	// InTransit indicates the order's container is on its way to the destination.
	InTransit

	// Delivered indicates the order reached its destination. Terminal.
	Delivered

	// Cancelled indicates the order was withdrawn before delivery. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their wire representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Received:  "RECEIVED",
		InTransit: "IN_TRANSIT",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// getValidStatusStrings returns only the statuses an order may actually hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Received:  "RECEIVED",
		InTransit: "IN_TRANSIT",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// ParseStatus converts a wire representation into a Status.
// Anything outside the fixed enumeration is rejected, which is what keeps
// free-text status values out of the state machine.
func ParseStatus(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a known status", value))
}

// Validate checks if the Status value is one an order may hold.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status closes the order lifecycle.
// No transition out of a terminal status is ever accepted.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether the state machine permits moving from
// this status to the requested one.
//
// Allowed edges:
//   - Received  -> InTransit
//   - Received  -> Cancelled
//   - InTransit -> Delivered
//   - InTransit -> Cancelled
//   - any valid status -> itself (idempotent re-submission)
//
// Everything else, including skip-transitions such as Received -> Delivered,
// is rejected.
func (s Status) CanTransitionTo(requested Status) bool {
	if s.Validate() != nil || requested.Validate() != nil {
		return false
	}

	if s == requested {
		return true
	}

	switch s {
	case Received:
		return requested == InTransit || requested == Cancelled
	case InTransit:
		return requested == Delivered || requested == Cancelled
	default:
		return false
	}
}

// TransitionTo returns the requested status if the transition is legal.
//
// Returns:
//   - (requested, nil) when the state machine permits the edge
//   - (Unknown, *errs.InvalidTransitionError) otherwise
//
// This method is used by Order.ChangeStatus and is the single source of
// truth for transition legality.
func (s Status) TransitionTo(requested Status) (Status, error) {
	if !s.CanTransitionTo(requested) {
		return Unknown, errs.NewInvalidTransitionError(s.String(), requested.String())
	}

	return requested, nil
}

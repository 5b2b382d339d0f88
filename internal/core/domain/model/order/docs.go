// Package order provides the domain model for shipment orders: the Order
// aggregate root and the Status lifecycle state machine.
//
// Key business rules:
//   - Orders carry an externally supplied, immutable business identifier
//   - Container, customer name and destination must be non-empty
//   - Status follows the fixed workflow RECEIVED -> IN_TRANSIT -> DELIVERED,
//     with cancellation allowed from RECEIVED and IN_TRANSIT
//   - DELIVERED and CANCELLED are terminal; nothing leaves them
//   - Re-submitting the current status is an idempotent confirmation
//   - The container can only be reassigned before a terminal status
//
// The package is pure domain logic with no I/O. Every status change in the
// system is routed through Status.TransitionTo, which is the single source
// of truth for transition legality.
package order

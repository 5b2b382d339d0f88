// Package kernel contains shared value objects used across the domain model.
//
// The package currently provides OrderID, the validated business identifier
// of an order. Identifiers arrive from external clients and are immutable
// after creation, so validation happens once at the boundary and the rest of
// the domain can rely on any OrderID in hand being well formed.
package kernel

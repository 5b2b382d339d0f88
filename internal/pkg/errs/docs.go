// Package errs provides standardized error types for the order tracking service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the service's full error taxonomy:
//   - ValueIsRequiredError / ValueIsInvalidError: malformed or missing input
//   - ObjectNotFoundError: no order with the requested identifier
//   - ObjectAlreadyExistsError: duplicate create attempt
//   - VersionConflictError: an optimistic write lost a concurrent race
//   - InvalidTransitionError: a status edge the lifecycle does not permit
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where applicable
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// Transport adapters rely on the sentinels to map each error kind to a
// distinct response code, so errors must always be propagated with their
// kind preserved rather than re-wrapped as plain strings.
package errs

package kernel

import (
	"fmt"
	"regexp"

	"ordertrack/internal/pkg/errs"
)

// ErrOrderIDIsNotConstructed indicates an OrderID was not created through
// NewOrderID. This error is returned when validating a zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via NewOrderID",
)

// orderIDPattern is the shape of an externally supplied order identifier:
// a non-empty token of letters, digits, underscores and hyphens that does
// not start with a separator.
var orderIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// OrderID is a value object wrapping the externally supplied business
// identifier of an order. It is distinct from the storage key the
// persistence adapter assigns internally.
//
// The zero value is invalid; OrderID must be constructed through NewOrderID,
// which validates the identifier token. OrderID is immutable and safe for
// concurrent use.
type OrderID struct {
	value string
}

// NewOrderID validates and wraps an externally supplied order identifier.
// Returns a ValueIsRequiredError for an empty string and a
// ValueIsInvalidError when the token contains characters outside
// [A-Za-z0-9_-] or starts with a separator.
func NewOrderID(value string) (OrderID, error) {
	if value == "" {
		return OrderID{}, errs.NewValueIsRequiredError("order_id")
	}

	if !orderIDPattern.MatchString(value) {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("order_id",
			fmt.Errorf("%q is not a valid identifier token", value))
	}

	return OrderID{value: value}, nil
}

// Validate ensures the OrderID was created through NewOrderID.
func (id OrderID) Validate() error {
	if id.value == "" {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}

// String returns the identifier token.
func (id OrderID) String() string {
	return id.value
}

// IsEqual compares two order identifiers by value.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

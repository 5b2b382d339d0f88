package commands

import (
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a request to advance an order to a new
// lifecycle status.
//
// ExpectedVersion is the optimistic-concurrency token: when supplied, the
// update only proceeds if the stored order still carries that version.
// ContainerID optionally reassigns the shipping container in the same write;
// that is only legal while the order has not reached a terminal status.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.OrderID
	status          order.Status
	containerID     *string
	expectedVersion *int64

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to advance an order's status.
// containerID and expectedVersion are optional; pass nil to leave the
// container untouched and to skip the caller-side version check.
func NewUpdateOrderStatusCommand(
	orderID kernel.OrderID,
	status order.Status,
	containerID *string,
	expectedVersion *int64,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
		cmd.setContainerID(containerID),
		cmd.setExpectedVersion(expectedVersion),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the business identifier of the order to update.
func (c UpdateOrderStatusCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Status returns the requested lifecycle status.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}

// ContainerID returns the replacement container identifier, or nil when the
// container should not change.
func (c UpdateOrderStatusCommand) ContainerID() *string {
	return c.containerID
}

// ExpectedVersion returns the version the caller based this update on, or
// nil when the caller did not supply one.
func (c UpdateOrderStatusCommand) ExpectedVersion() *int64 {
	return c.expectedVersion
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *UpdateOrderStatusCommand) setContainerID(containerID *string) error {
	if containerID != nil && *containerID == "" {
		return errs.NewValueIsRequiredError("container_id")
	}

	c.containerID = containerID
	return nil
}

func (c *UpdateOrderStatusCommand) setExpectedVersion(expectedVersion *int64) error {
	if expectedVersion != nil && *expectedVersion < 1 {
		return errs.NewValueIsInvalidError("version")
	}

	c.expectedVersion = expectedVersion
	return nil
}

package commands

import (
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new shipment order.
// Status, version and timestamps are never part of the command; the service
// assigns them.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.OrderID
	containerID  string
	customerName string
	destination  string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the identifier is a well-formed token and that container,
// customer name and destination are present. Returns a joined error listing
// every failed field.
func NewCreateOrderCommand(
	orderID kernel.OrderID,
	containerID, customerName, destination string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setContainerID(containerID),
		cmd.setCustomerName(customerName),
		cmd.setDestination(destination),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the business identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// ContainerID returns the physical shipping container identifier.
func (c CreateOrderCommand) ContainerID() string {
	return c.containerID
}

// CustomerName returns the ordering customer's name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// Destination returns the delivery destination.
func (c CreateOrderCommand) Destination() string {
	return c.destination
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setContainerID(containerID string) error {
	if containerID == "" {
		return errs.NewValueIsRequiredError("container_id")
	}

	c.containerID = containerID
	return nil
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customer_name")
	}

	c.customerName = customerName
	return nil
}

func (c *CreateOrderCommand) setDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}

	c.destination = destination
	return nil
}

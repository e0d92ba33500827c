package commands

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var ErrUnarchiveOrderCommandIsNotConstructed = errors.New(
	"UnarchiveOrderCommand must be created via NewUnarchiveOrderCommand constructor",
)

// UnarchiveOrderCommand represents a request to bring an archived order back
// into the active set. The order restarts its lifecycle in New status.
type UnarchiveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewUnarchiveOrderCommand creates a command to unarchive an order.
func NewUnarchiveOrderCommand(orderID kernel.UUID) (UnarchiveOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UnarchiveOrderCommand{}, err
	}

	return UnarchiveOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UnarchiveOrderCommand) Validate() error {
	return c.guard.Validate(ErrUnarchiveOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to unarchive.
func (c UnarchiveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

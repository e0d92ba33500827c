package commands

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var ErrUpdateOrderNotesCommandIsNotConstructed = errors.New(
	"UpdateOrderNotesCommand must be created via NewUpdateOrderNotesCommand constructor",
)

// UpdateOrderNotesCommand represents a request to replace an order's internal
// notes. Notes are free-form staff-facing text and carry no lifecycle rules.
type UpdateOrderNotesCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	notes   string

	guard guard.ConstructorGuard
}

// NewUpdateOrderNotesCommand creates a command to update an order's notes.
// An empty string clears the notes.
func NewUpdateOrderNotesCommand(orderID kernel.UUID, notes string) (UpdateOrderNotesCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateOrderNotesCommand{}, err
	}

	return UpdateOrderNotesCommand{
		orderID: orderID,
		notes:   notes,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderNotesCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderNotesCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderNotesCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Notes returns the replacement notes text.
func (c UpdateOrderNotesCommand) Notes() string {
	return c.notes
}

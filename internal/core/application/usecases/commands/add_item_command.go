package commands

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var ErrAddItemCommandIsNotConstructed = errors.New(
	"AddItemCommand must be created via NewAddItemCommand constructor",
)

// AddItemCommand represents a request to attach a new line item to an order.
// The order must still be in an editable status; the aggregate enforces that
// when the command is handled.
type AddItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemID  kernel.UUID
	draft   ItemDraft

	guard guard.ConstructorGuard
}

// NewAddItemCommand creates a command to attach an item to an order.
func NewAddItemCommand(orderID kernel.UUID, itemID kernel.UUID, draft ItemDraft) (AddItemCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		itemID.Validate(),
		draft.Validate(),
	); err != nil {
		return AddItemCommand{}, err
	}

	return AddItemCommand{
		orderID: orderID,
		itemID:  itemID,
		draft:   draft,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to modify.
func (c AddItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier for the new item.
func (c AddItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Draft returns the submitted item data.
func (c AddItemCommand) Draft() ItemDraft {
	return c.draft
}

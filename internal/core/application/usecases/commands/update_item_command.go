package commands

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var ErrUpdateItemCommandIsNotConstructed = errors.New(
	"UpdateItemCommand must be created via NewUpdateItemCommand constructor",
)

// UpdateItemCommand represents a request to edit an existing line item.
// The line total is recomputed from the new quantity and unit price inside
// the aggregate.
type UpdateItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemID  kernel.UUID
	draft   ItemDraft

	guard guard.ConstructorGuard
}

// NewUpdateItemCommand creates a command to edit an order's line item.
func NewUpdateItemCommand(orderID kernel.UUID, itemID kernel.UUID, draft ItemDraft) (UpdateItemCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		itemID.Validate(),
		draft.Validate(),
	); err != nil {
		return UpdateItemCommand{}, err
	}

	return UpdateItemCommand{
		orderID: orderID,
		itemID:  itemID,
		draft:   draft,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to modify.
func (c UpdateItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier of the item to edit.
func (c UpdateItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Draft returns the replacement item data.
func (c UpdateItemCommand) Draft() ItemDraft {
	return c.draft
}

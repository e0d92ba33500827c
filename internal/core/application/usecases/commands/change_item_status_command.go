package commands

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/guard"
)

var ErrChangeItemStatusCommandIsNotConstructed = errors.New(
	"ChangeItemStatusCommand must be created via NewChangeItemStatusCommand constructor",
)

// ChangeItemStatusCommand represents a request from the production floor to
// set an item's status. Any member of the valid set may be requested; item
// statuses have no enforced ordering.
type ChangeItemStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemID  kernel.UUID
	status  order.ItemStatus

	guard guard.ConstructorGuard
}

// NewChangeItemStatusCommand creates a command to set an item's production status.
func NewChangeItemStatusCommand(
	orderID kernel.UUID, itemID kernel.UUID, status order.ItemStatus,
) (ChangeItemStatusCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		itemID.Validate(),
		status.Validate(),
	); err != nil {
		return ChangeItemStatusCommand{}, err
	}

	return ChangeItemStatusCommand{
		orderID: orderID,
		itemID:  itemID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeItemStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeItemStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order owning the item.
func (c ChangeItemStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier of the item to update.
func (c ChangeItemStatusCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Status returns the requested production status.
func (c ChangeItemStatusCommand) Status() order.ItemStatus {
	return c.status
}

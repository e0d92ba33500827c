package commands

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var ErrRecalculateOrderTotalsCommandIsNotConstructed = errors.New(
	"RecalculateOrderTotalsCommand must be created via NewRecalculateOrderTotalsCommand constructor",
)

// RecalculateOrderTotalsCommand represents a request to re-derive an order's
// expected cash-on-delivery amount from its current items and delivery fee.
// The reconciliation is idempotent and never changes statuses, so the command
// is safe to issue against any order at any time.
type RecalculateOrderTotalsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRecalculateOrderTotalsCommand creates a command to reconcile an order's totals.
func NewRecalculateOrderTotalsCommand(orderID kernel.UUID) (RecalculateOrderTotalsCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RecalculateOrderTotalsCommand{}, err
	}

	return RecalculateOrderTotalsCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecalculateOrderTotalsCommand) Validate() error {
	return c.guard.Validate(ErrRecalculateOrderTotalsCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to reconcile.
func (c RecalculateOrderTotalsCommand) OrderID() kernel.UUID {
	return c.orderID
}

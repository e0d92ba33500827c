package commands

import (
	"context"
)

// UnarchiveOrderCommandHandler handles restoring an archived order to the
// active set. Only archived orders qualify; anything else fails with
// order.ErrIllegalTransition.
type UnarchiveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUnarchiveOrderCommandHandler creates a handler for unarchive operations.
func NewUnarchiveOrderCommandHandler(uowFactory OrderUoWFactory) UnarchiveOrderCommandHandler {
	return UnarchiveOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the unarchive command.
func (h UnarchiveOrderCommandHandler) Handle(ctx context.Context, cmd UnarchiveOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Unarchive(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

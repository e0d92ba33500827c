package commands

import (
	"context"
)

// ChangeItemStatusCommandHandler handles item-level production status updates.
// After applying the new status the aggregate runs its completion roll-up:
// once every item on the order is Finished the order itself is forced to Done
// within the same transaction. Archived orders are left archived.
type ChangeItemStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeItemStatusCommandHandler creates a handler for item status updates.
func NewChangeItemStatusCommandHandler(uowFactory OrderUoWFactory) ChangeItemStatusCommandHandler {
	return ChangeItemStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item status command.
func (h ChangeItemStatusCommandHandler) Handle(ctx context.Context, cmd ChangeItemStatusCommand) error {
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

	if err = aggregate.ChangeItemStatus(cmd.ItemID(), cmd.Status()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
)

// AddItemCommandHandler handles attaching a new line item to an existing order.
// The aggregate rejects the mutation with order.ErrItemsLocked once the order
// has been confirmed, and reconciles the expected cash-on-delivery amount
// before the order is persisted.
type AddItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddItemCommandHandler creates a handler for item addition operations.
func NewAddItemCommandHandler(uowFactory OrderUoWFactory) AddItemCommandHandler {
	return AddItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item addition command.
func (h AddItemCommandHandler) Handle(ctx context.Context, cmd AddItemCommand) error {
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

	draft := cmd.Draft()
	if _, err = aggregate.AddItem(
		cmd.ItemID(), draft.DesignName(), draft.SizeText(), draft.Quantity(), draft.UnitPrice(),
	); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

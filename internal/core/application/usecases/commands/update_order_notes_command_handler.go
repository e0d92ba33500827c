package commands

import (
	"context"
)

// UpdateOrderNotesCommandHandler handles replacing an order's internal notes.
// Notes stay editable in every status, archived orders included.
type UpdateOrderNotesCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderNotesCommandHandler creates a handler for notes updates.
func NewUpdateOrderNotesCommandHandler(uowFactory OrderUoWFactory) UpdateOrderNotesCommandHandler {
	return UpdateOrderNotesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the notes update command.
func (h UpdateOrderNotesCommandHandler) Handle(ctx context.Context, cmd UpdateOrderNotesCommand) error {
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

	aggregate.UpdateNotes(cmd.Notes())

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

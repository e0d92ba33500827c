package commands

import (
	"context"
)

// RecalculateOrderTotalsCommandHandler re-derives an order's expected
// cash-on-delivery amount and persists the result. The mutation paths already
// reconcile synchronously; this command exists as an explicit trigger for
// staff and for the periodic totals audit job.
type RecalculateOrderTotalsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRecalculateOrderTotalsCommandHandler creates a handler for totals reconciliation.
func NewRecalculateOrderTotalsCommandHandler(uowFactory OrderUoWFactory) RecalculateOrderTotalsCommandHandler {
	return RecalculateOrderTotalsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reconciliation command.
func (h RecalculateOrderTotalsCommandHandler) Handle(ctx context.Context, cmd RecalculateOrderTotalsCommand) error {
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

	if err = aggregate.RecalculateExpectedCOD(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

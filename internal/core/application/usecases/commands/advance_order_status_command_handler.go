package commands

import (
	"context"
	"errors"

	"printshop/internal/core/domain/model/batch"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/services"
	"printshop/internal/pkg/errs"
)

// AdvanceOrderStatusCommandHandler orchestrates order lifecycle transitions.
//
// Confirming an order is the one compound transition: the handler applies the
// Confirmed status, lets the BatchAllocator group any unbatched items into a
// newly created batch, and immediately advances the order to InProduction.
// The batch insert and both status changes land in the same transaction, so an
// observer never sees a confirmed order whose items are not scheduled.
//
// Batch codes share the sequence-plus-unique-constraint scheme with order
// codes; on a code conflict the whole command is retried once with a fresh
// transaction.
type AdvanceOrderStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewAdvanceOrderStatusCommandHandler creates a handler for order transitions.
// Requires a UoWFactory since confirmation writes both aggregates.
func NewAdvanceOrderStatusCommandHandler(uowFactory UoWFactory) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition command.
// Returns order.ErrIllegalTransition (wrapped) when the requested status is
// not reachable from the order's current status.
func (h AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := h.advance(ctx, cmd)
	if errors.Is(err, errs.ErrCodeConflict) {
		err = h.advance(ctx, cmd)
	}

	return err
}

func (h AdvanceOrderStatusCommandHandler) advance(ctx context.Context, cmd AdvanceOrderStatusCommand) error {
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

	if err = aggregate.Advance(cmd.Target()); err != nil {
		return err
	}

	if cmd.Target() == order.Confirmed {
		if err = h.allocateAndStartProduction(ctx, uow, aggregate); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h AdvanceOrderStatusCommandHandler) allocateAndStartProduction(
	ctx context.Context, uow UoW, aggregate *order.Order,
) error {
	batchRepo := uow.BatchRepository()

	created, err := services.NewBatchAllocator().AllocateIfNeeded(aggregate, func() (*batch.Batch, error) {
		seq, seqErr := batchRepo.NextSequence(ctx)
		if seqErr != nil {
			return nil, seqErr
		}

		code, codeErr := batch.NewCode(seq)
		if codeErr != nil {
			return nil, codeErr
		}

		return batch.NewBatch(kernel.NewUUID(), code, "")
	})
	if err != nil {
		return err
	}

	if created != nil {
		if err = batchRepo.Add(ctx, created); err != nil {
			return err
		}
	}

	return aggregate.Advance(order.InProduction)
}

package commands

import (
	"context"
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Generates the next sequential order code, builds the aggregate with its
// initial items, and persists it in one transaction.
//
// Code generation is not atomic against concurrent creators: the sequence is
// read as max+1 and the unique constraint on the code column is the safety
// net. On a code conflict the handler retries once with a fresh transaction
// and a freshly computed sequence.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// The expected cash-on-delivery amount is derived inside the aggregate while
// the items are attached; it is never taken from the request.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := h.createOrder(ctx, cmd)
	if errors.Is(err, errs.ErrCodeConflict) {
		err = h.createOrder(ctx, cmd)
	}

	return err
}

func (h CreateOrderCommandHandler) createOrder(ctx context.Context, cmd CreateOrderCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	seq, err := orderRepo.NextSequence(ctx)
	if err != nil {
		return err
	}

	code, err := order.NewCode(seq)
	if err != nil {
		return err
	}

	customer, err := order.NewCustomer(
		cmd.CustomerName(), cmd.CustomerPhone(), cmd.CustomerAddress(), cmd.CustomerCity(),
	)
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(), code, cmd.Brand(), cmd.UsageType(), customer, cmd.DeliveryFee(),
	)
	if err != nil {
		return err
	}

	for _, draft := range cmd.Items() {
		if _, err = aggregate.AddItem(
			kernel.NewUUID(), draft.DesignName(), draft.SizeText(), draft.Quantity(), draft.UnitPrice(),
		); err != nil {
			return err
		}
	}

	if notes := cmd.InternalNotes(); notes != "" {
		aggregate.UpdateNotes(notes)
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

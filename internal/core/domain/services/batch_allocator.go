package services

import (
	"printshop/internal/core/domain/model/batch"
	"printshop/internal/core/domain/model/order"
)

// BatchAllocator is a domain service responsible for grouping an order's
// not-yet-batched items into a new production batch when the order is
// confirmed.
//
// Business rules:
//   - At most one new batch is created per allocation
//   - Every item with a null batch reference joins the new batch and is
//     reseeded to ToProduce
//   - Items already referencing a batch are never reassigned
//   - An order whose items are all batched yields a no-op, making repeated
//     allocation safe and guaranteeing at most one unbatched cohort per order
//
// Example usage:
//
//	allocator := services.NewBatchAllocator()
//	created, err := allocator.AllocateIfNeeded(o, func() (*batch.Batch, error) {
//	    seq, err := batchRepo.NextSequence(ctx)
//	    if err != nil {
//	        return nil, err
//	    }
//	    code, err := batch.NewCode(seq)
//	    if err != nil {
//	        return nil, err
//	    }
//	    return batch.NewBatch(kernel.NewUUID(), code, "")
//	})
//	if created != nil {
//	    // persist the new batch alongside the updated order
//	}
type BatchAllocator struct{}

// NewBatchAllocator creates a new BatchAllocator instance.
func NewBatchAllocator() BatchAllocator {
	return BatchAllocator{}
}

// AllocateIfNeeded examines the order's items and, if any are unbatched,
// creates exactly one new batch via newBatch and assigns the whole unbatched
// cohort to it.
//
// Returns:
//   - (nil, nil) when every item already references a batch - an idempotent
//     no-op, not an error
//   - (*batch.Batch, nil) with the newly created batch on success; the caller
//     is responsible for persisting both the batch and the updated order
//   - (nil, error) if the order is invalid or batch creation fails; the order
//     is left unchanged in that case
func (a BatchAllocator) AllocateIfNeeded(
	o *order.Order, newBatch func() (*batch.Batch, error),
) (*batch.Batch, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if !o.HasUnbatchedItems() {
		return nil, nil
	}

	b, err := newBatch()
	if err != nil {
		return nil, err
	}

	if err = b.Validate(); err != nil {
		return nil, err
	}

	if _, err = o.AssignItemsToBatch(b.ID()); err != nil {
		return nil, err
	}

	return b, nil
}

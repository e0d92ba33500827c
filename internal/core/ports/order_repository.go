package ports

import (
	"context"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order is stored together with its line items; loading an order always
// yields the complete aggregate so lifecycle rules can be enforced in memory.
type OrderRepository interface {
	// Add persists a new order aggregate and its items to storage.
	// Returns an error wrapping errs.ErrCodeConflict if the generated order
	// code collides under the store's uniqueness constraint; callers retry
	// once with a freshly computed sequence number.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, including item
	// inserts, edits, and removals performed on the aggregate since it was
	// loaded.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, items included.
	// Returns an error wrapping errs.ErrObjectNotFound for unknown identifiers.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActive retrieves all orders that are not archived.
	// Used by the totals audit job to re-verify financial reconciliation.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// NextSequence returns the next sequential number for order code
	// generation. Not atomic against concurrent creators; the unique
	// constraint on codes is the safety net.
	NextSequence(ctx context.Context) (int64, error)
}

package ports

import (
	"context"

	"printshop/internal/core/domain/model/batch"
	"printshop/internal/core/domain/model/kernel"
)

// BatchRepository defines the persistence contract for production batches.
// Batches are append-only: this core creates them during allocation and never
// deletes them.
type BatchRepository interface {
	// Add persists a new batch to storage.
	// Returns an error wrapping errs.ErrCodeConflict if the generated batch
	// code collides under the store's uniqueness constraint.
	Add(ctx context.Context, aggregate *batch.Batch) error

	// Get retrieves a batch by its unique identifier.
	// Returns an error wrapping errs.ErrObjectNotFound for unknown identifiers.
	Get(ctx context.Context, id kernel.UUID) (*batch.Batch, error)

	// NextSequence returns the next sequential number for batch code generation.
	NextSequence(ctx context.Context) (int64, error)
}

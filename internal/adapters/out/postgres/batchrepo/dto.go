// Package batchrepo provides data transfer objects and mapping functions for
// production batch persistence.
package batchrepo

import (
	"time"

	"printshop/internal/core/domain/model/batch"
	"printshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BatchDTO represents the database structure for persisting production batches.
// Items reference batches through order_items.batch_id; the batch row itself
// is append-only.
type BatchDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq       int64     `gorm:"index"`
	Code      string    `gorm:"uniqueIndex"`
	Notes     string
	CreatedAt time.Time
}

// TableName specifies the database table name for batch entities.
func (BatchDTO) TableName() string {
	return "batches"
}

// fromDomain converts a batch domain entity to its database representation.
func fromDomain(aggregate *batch.Batch) BatchDTO {
	return BatchDTO{
		ID:        aggregate.ID().Bytes(),
		Seq:       aggregate.Code().Sequence(),
		Code:      aggregate.Code().String(),
		Notes:     aggregate.Notes(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a batch domain entity using RestoreBatch.
func toDomain(dto BatchDTO) (*batch.Batch, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	code, err := batch.CodeFromString(dto.Code)
	if err != nil {
		return nil, err
	}

	return batch.RestoreBatch(id, code, dto.Notes, dto.CreatedAt)
}

package batch

import (
	"errors"
	"time"

	"printshop/internal/core/domain/model/kernel"
)

// ErrBatchIsNotConstructed is returned when a Batch instance was not created
// through the NewBatch or RestoreBatch factory methods.
var ErrBatchIsNotConstructed = errors.New("Batch must be created via NewBatch or RestoreBatch constructor")

// Batch is a named grouping of items released to production together.
// A batch is referenced by zero or more order items through a weak reference;
// it does not own the items and is never deleted once created.
type Batch struct {
	id        kernel.UUID
	code      Code
	notes     string
	createdAt time.Time

	isConstructed bool
}

// NewBatch creates a new production batch with a freshly generated code.
func NewBatch(id kernel.UUID, code Code, notes string) (*Batch, error) {
	b := &Batch{
		notes:         notes,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setCode(code),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBatch reconstructs a batch from persistence.
func RestoreBatch(id kernel.UUID, code Code, notes string, createdAt time.Time) (*Batch, error) {
	b, err := NewBatch(id, code, notes)
	if err != nil {
		return nil, err
	}

	b.createdAt = createdAt
	return b, nil
}

// Validate ensures the Batch instance was properly constructed through a factory method.
func (b *Batch) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBatchIsNotConstructed
	}
	return nil
}

// IsEqual compares two batches by their unique identifiers.
func (b *Batch) IsEqual(other *Batch) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the batch's unique identifier.
func (b *Batch) ID() kernel.UUID {
	return b.id
}

// Code returns the batch's human-readable code.
func (b *Batch) Code() Code {
	return b.code
}

// Notes returns the optional batch notes.
func (b *Batch) Notes() string {
	return b.notes
}

// CreatedAt returns the creation timestamp.
func (b *Batch) CreatedAt() time.Time {
	return b.createdAt
}

func (b *Batch) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Batch) setCode(code Code) error {
	if err := code.Validate(); err != nil {
		return err
	}
	b.code = code
	return nil
}

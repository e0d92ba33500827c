package order

import (
	"errors"
	"fmt"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem or RestoreItem factory methods.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")

// Item is one product line within an order: a design to print, in a given
// size, quantity and unit price. Items are exclusively owned by their order
// and never outlive it; all mutations go through the Order aggregate so the
// editability lock and total reconciliation cannot be bypassed.
//
// Invariants:
//   - quantity is positive and unit price is non-negative at all times
//   - lineTotal == quantity x unitPrice, recomputed on every edit
//   - the batch reference, once set, is never cleared or reassigned
type Item struct {
	id         kernel.UUID
	designName string
	sizeText   string
	quantity   int
	unitPrice  kernel.Money
	lineTotal  kernel.Money
	status     ItemStatus
	batchID    *kernel.UUID

	isConstructed bool
}

// NewItem creates a new order item in ToProduce status with no batch assigned.
// The line total is computed immediately from quantity and unit price.
func NewItem(
	id kernel.UUID, designName string, sizeText string, quantity int, unitPrice kernel.Money,
) (*Item, error) {
	item := &Item{
		status:        ToProduce,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.edit(designName, sizeText, quantity, unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an item from persistence, including its production
// status and optional batch reference. The line total is taken as stored; it
// was computed at creation or edit time and is not re-derived lazily.
func RestoreItem(
	id kernel.UUID,
	designName string,
	sizeText string,
	quantity int,
	unitPrice kernel.Money,
	lineTotal kernel.Money,
	status ItemStatus,
	batchID *kernel.UUID,
) (*Item, error) {
	item := &Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.edit(designName, sizeText, quantity, unitPrice),
		item.setStatus(status),
		lineTotal.Validate(),
	); err != nil {
		return nil, err
	}

	item.lineTotal = lineTotal
	if batchID != nil {
		if err := batchID.Validate(); err != nil {
			return nil, err
		}
		item.batchID = batchID
	}

	return item, nil
}

// Validate ensures the Item instance was properly constructed through a factory method.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// DesignName returns the name of the design to print.
func (i *Item) DesignName() string {
	return i.designName
}

// SizeText returns the free-form size descriptor.
func (i *Item) SizeText() string {
	return i.sizeText
}

// Quantity returns the number of units ordered.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price of one unit.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// LineTotal returns quantity x unit price as computed at creation or last edit.
func (i *Item) LineTotal() kernel.Money {
	return i.lineTotal
}

// Status returns the item's production status.
func (i *Item) Status() ItemStatus {
	return i.status
}

// Batch returns the identifier of the production batch the item belongs to.
// Returns nil if the item has not been batched yet.
func (i *Item) Batch() *kernel.UUID {
	return i.batchID
}

// edit validates and applies the editable fields, recomputing the line total.
func (i *Item) edit(designName string, sizeText string, quantity int, unitPrice kernel.Money) error {
	if designName == "" {
		return errs.NewValueIsRequiredError("design name")
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if err := unitPrice.Validate(); err != nil {
		return err
	}

	lineTotal, err := unitPrice.MultiplyBy(quantity)
	if err != nil {
		return err
	}

	i.designName = designName
	i.sizeText = sizeText
	i.quantity = quantity
	i.unitPrice = unitPrice
	i.lineTotal = lineTotal
	return nil
}

// setStatus validates and applies a production status.
func (i *Item) setStatus(status ItemStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}

	i.status = status
	return nil
}

// assignToBatch sets the batch reference and reseeds the production status.
// The aggregate guarantees this is only called for unbatched items; once set
// the reference is never cleared or reassigned.
func (i *Item) assignToBatch(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}

	i.batchID = &batchID
	i.status = ToProduce
	return nil
}

// setID validates and sets the item's unique identifier.
func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

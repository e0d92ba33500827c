package order

import (
	"errors"
	"fmt"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrItemsLocked is returned when an item mutation is attempted on an order
	// whose status no longer permits it. Items are editable only while the
	// order is New or PendingConfirmation.
	ErrItemsLocked = errors.New("order items are locked")

	// ErrBrandIsRequired is returned when an order is created without a brand.
	ErrBrandIsRequired = errs.NewValueIsRequiredError("brand")
)

// Order is the aggregate root for one customer transaction. It owns its line
// items exclusively and is the single place where the lifecycle rules live:
// the status machine, the item editability lock, the expected cash-on-delivery
// reconciliation, and the completion roll-up.
//
// Order maintains these invariants:
//   - ExpectedCOD() == sum of item line totals + delivery fee, recomputed
//     after every item mutation and never stored stale
//   - items may be added, edited, or removed only while the status is New or
//     PendingConfirmation
//   - once at least one item exists and every item is Finished, the order is
//     forced to Done by the roll-up (archived orders excepted)
//   - can only be created through NewOrder or RestoreOrder
type Order struct {
	id            kernel.UUID
	code          Code
	brand         string
	usageType     string
	customer      Customer
	status        Status
	expectedCOD   kernel.Money
	deliveryFee   kernel.Money
	internalNotes string
	items         []*Item
	createdAt     time.Time
	updatedAt     time.Time

	isConstructed bool
}

// NewOrder creates a new Order in New status with zero items.
// The expected cash-on-delivery amount starts at the delivery fee, keeping the
// reconciliation invariant true from the first moment.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - code: generated human-readable order code
//   - brand: the brand the printed goods belong to (required)
//   - usageType: free-form usage descriptor
//   - customer: validated customer contact details
//   - deliveryFee: authoritative delivery fee input
func NewOrder(
	id kernel.UUID,
	code Code,
	brand string,
	usageType string,
	customer Customer,
	deliveryFee kernel.Money,
) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:        New,
		usageType:     usageType,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCode(code),
		o.setBrand(brand),
		o.setCustomer(customer),
		o.setDeliveryFee(deliveryFee),
	); err != nil {
		return nil, err
	}

	return o, o.recalculateExpectedCOD()
}

// RestoreOrder reconstructs an order aggregate from persistence, including its
// items. The stored expected cash-on-delivery amount is kept as-is; it was
// reconciled synchronously on every mutation and is trusted on read.
func RestoreOrder(
	id kernel.UUID,
	code Code,
	brand string,
	usageType string,
	customer Customer,
	status Status,
	expectedCOD kernel.Money,
	deliveryFee kernel.Money,
	internalNotes string,
	items []*Item,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		usageType:     usageType,
		internalNotes: internalNotes,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCode(code),
		o.setBrand(brand),
		o.setCustomer(customer),
		status.Validate(),
		expectedCOD.Validate(),
		o.setDeliveryFee(deliveryFee),
	); err != nil {
		return nil, err
	}

	o.status = status
	o.expectedCOD = expectedCOD

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	o.items = items

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Code returns the order's human-readable code.
func (o *Order) Code() Code {
	return o.code
}

// Brand returns the brand the order belongs to.
func (o *Order) Brand() string {
	return o.brand
}

// UsageType returns the free-form usage descriptor.
func (o *Order) UsageType() string {
	return o.usageType
}

// Customer returns the customer contact details.
func (o *Order) Customer() Customer {
	return o.customer
}

// Status returns the current lifecycle status of the order.
func (o *Order) Status() Status {
	return o.status
}

// ExpectedCOD returns the derived expected cash-on-delivery amount.
func (o *Order) ExpectedCOD() kernel.Money {
	return o.expectedCOD
}

// DeliveryFee returns the authoritative delivery fee.
func (o *Order) DeliveryFee() kernel.Money {
	return o.deliveryFee
}

// InternalNotes returns the order's internal notes.
func (o *Order) InternalNotes() string {
	return o.internalNotes
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last update timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Items returns the order's line items. The returned slice is a copy; the
// items themselves are owned by the aggregate and must not be mutated directly.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// Item returns the line item with the given identifier or an ObjectNotFoundError.
func (o *Order) Item(itemID kernel.UUID) (*Item, error) {
	if err := itemID.Validate(); err != nil {
		return nil, err
	}

	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item, nil
		}
	}

	return nil, errs.NewObjectNotFoundError("item", itemID.String())
}

// AddItem attaches a new line item to the order and synchronously reconciles
// the expected cash-on-delivery amount.
//
// Fails with ErrItemsLocked if the order status no longer permits item
// mutation, leaving the aggregate untouched.
func (o *Order) AddItem(
	id kernel.UUID, designName string, sizeText string, quantity int, unitPrice kernel.Money,
) (*Item, error) {
	if err := o.ensureEditable(); err != nil {
		return nil, err
	}

	item, err := NewItem(id, designName, sizeText, quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	o.items = append(o.items, item)
	if err = o.recalculateExpectedCOD(); err != nil {
		return nil, err
	}

	return item, nil
}

// UpdateItem edits an existing line item and synchronously reconciles the
// expected cash-on-delivery amount. The line total is recomputed from the new
// quantity and unit price.
func (o *Order) UpdateItem(
	itemID kernel.UUID, designName string, sizeText string, quantity int, unitPrice kernel.Money,
) error {
	if err := o.ensureEditable(); err != nil {
		return err
	}

	item, err := o.Item(itemID)
	if err != nil {
		return err
	}

	if err = item.edit(designName, sizeText, quantity, unitPrice); err != nil {
		return err
	}

	return o.recalculateExpectedCOD()
}

// RemoveItem detaches a line item from the order and synchronously reconciles
// the expected cash-on-delivery amount.
func (o *Order) RemoveItem(itemID kernel.UUID) error {
	if err := o.ensureEditable(); err != nil {
		return err
	}

	if _, err := o.Item(itemID); err != nil {
		return err
	}

	items := make([]*Item, 0, len(o.items)-1)
	for _, item := range o.items {
		if !item.ID().IsEqual(itemID) {
			items = append(items, item)
		}
	}
	o.items = items

	return o.recalculateExpectedCOD()
}

// Advance moves the order to the requested status.
//
// The request must match the single legal next state for the current status
// (or Archived, which is reachable from any other status); otherwise it fails
// with ErrIllegalTransition and the aggregate is left unchanged. The
// Confirmed -> InProduction auto-advance after batch allocation is
// orchestrated by the command layer as a second Advance call within the same
// unit of work.
func (o *Order) Advance(target Status) error {
	newStatus, err := o.status.Advance(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Archive soft-removes the order from active views. The prior status is
// discarded; no resume state is retained. Archiving an archived order fails
// with ErrIllegalTransition.
func (o *Order) Archive() error {
	return o.Advance(Archived)
}

// Unarchive resets an archived order to New. Fails with ErrIllegalTransition
// if the order is not archived.
func (o *Order) Unarchive() error {
	if o.status != Archived {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, o.status, New)
	}
	return o.Advance(New)
}

// ChangeItemStatus sets an item's production status to any member of the valid
// set (no sequencing is enforced at this level) and then runs the completion
// roll-up: once the order has at least one item and every item is Finished,
// the order status is forced to Done.
func (o *Order) ChangeItemStatus(itemID kernel.UUID, status ItemStatus) error {
	item, err := o.Item(itemID)
	if err != nil {
		return err
	}

	if err = item.setStatus(status); err != nil {
		return err
	}

	o.touch()
	o.rollUpCompletion()
	return nil
}

// HasUnbatchedItems reports whether any item still has no batch reference.
func (o *Order) HasUnbatchedItems() bool {
	for _, item := range o.items {
		if item.Batch() == nil {
			return true
		}
	}
	return false
}

// AssignItemsToBatch assigns every currently unbatched item to the given batch
// and reseeds its production status to ToProduce. Items already referencing a
// batch are left untouched; the reference is never reassigned. Returns the
// number of items assigned.
func (o *Order) AssignItemsToBatch(batchID kernel.UUID) (int, error) {
	if err := batchID.Validate(); err != nil {
		return 0, err
	}

	assigned := 0
	for _, item := range o.items {
		if item.Batch() != nil {
			continue
		}
		if err := item.assignToBatch(batchID); err != nil {
			return assigned, err
		}
		assigned++
	}

	if assigned > 0 {
		o.touch()
		// Allocation rewrites item statuses, so the roll-up contract applies
		// here as well. All assigned items are ToProduce, making it a no-op
		// unless every remaining item was already Finished.
		o.rollUpCompletion()
	}

	return assigned, nil
}

// RecalculateExpectedCOD re-derives the expected cash-on-delivery amount from
// the current item set plus the delivery fee. It is idempotent and touches
// only monetary fields and the update timestamp, never statuses. Exposed as
// the reconciliation trigger for callers such as the totals audit job.
func (o *Order) RecalculateExpectedCOD() error {
	return o.recalculateExpectedCOD()
}

// UpdateNotes replaces the order's internal notes.
func (o *Order) UpdateNotes(notes string) {
	o.internalNotes = notes
	o.touch()
}

// ensureEditable fails with ErrItemsLocked unless the order status still
// permits item-level mutation.
func (o *Order) ensureEditable() error {
	if !o.status.IsEditable() {
		return fmt.Errorf("%w: order is %s", ErrItemsLocked, o.status)
	}
	return nil
}

// rollUpCompletion forces the order to Done once it has at least one item and
// every item's production status is Finished. This is the one transition not
// driven by a direct request. Archived orders are exempt: archiving is an
// explicit administrative action and a late item-status change must not
// resurrect the order.
func (o *Order) rollUpCompletion() {
	if len(o.items) == 0 || o.status == Archived {
		return
	}

	for _, item := range o.items {
		if item.Status() != Finished {
			return
		}
	}

	o.status = Done
	o.touch()
}

// recalculateExpectedCOD sums the line totals of all attached items, adds the
// delivery fee, and stores the result. Runs synchronously after every item
// mutation so the stored amount is never stale.
func (o *Order) recalculateExpectedCOD() error {
	total := kernel.ZeroMoney()

	var err error
	for _, item := range o.items {
		if total, err = total.Add(item.LineTotal()); err != nil {
			return err
		}
	}

	if total, err = total.Add(o.deliveryFee); err != nil {
		return err
	}

	o.expectedCOD = total
	o.touch()
	return nil
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCode(code Code) error {
	if err := code.Validate(); err != nil {
		return err
	}
	o.code = code
	return nil
}

func (o *Order) setBrand(brand string) error {
	if brand == "" {
		return ErrBrandIsRequired
	}
	o.brand = brand
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setDeliveryFee(fee kernel.Money) error {
	if err := fee.Validate(); err != nil {
		return err
	}
	o.deliveryFee = fee
	return nil
}

package commands

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemDraftIsNotConstructed = errors.New(
		"ItemDraft must be created via NewItemDraft constructor",
	)
)

// ItemDraft carries the line item data submitted with a new order. It is a
// thin, validated transport shape; the Order aggregate applies the full item
// rules when the drafts are attached.
type ItemDraft struct { //nolint:recvcheck //using for validation
	designName string
	sizeText   string
	quantity   int
	unitPrice  kernel.Money

	guard guard.ConstructorGuard
}

// NewItemDraft creates a draft for one order line item.
// Validates that the design name is not empty, the quantity is positive, and
// the unit price is a constructed Money value.
func NewItemDraft(designName string, sizeText string, quantity int, unitPrice kernel.Money) (ItemDraft, error) {
	if designName == "" {
		return ItemDraft{}, errs.NewValueIsRequiredError("design name")
	}
	if quantity <= 0 {
		return ItemDraft{}, errs.NewValueIsInvalidError("quantity")
	}
	if err := unitPrice.Validate(); err != nil {
		return ItemDraft{}, err
	}

	return ItemDraft{
		designName: designName,
		sizeText:   sizeText,
		quantity:   quantity,
		unitPrice:  unitPrice,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the draft was created through the constructor.
func (d ItemDraft) Validate() error {
	return d.guard.Validate(ErrItemDraftIsNotConstructed)
}

// DesignName returns the name of the design to print.
func (d ItemDraft) DesignName() string {
	return d.designName
}

// SizeText returns the free-form size descriptor.
func (d ItemDraft) SizeText() string {
	return d.sizeText
}

// Quantity returns the number of units ordered.
func (d ItemDraft) Quantity() int {
	return d.quantity
}

// UnitPrice returns the price of one unit.
func (d ItemDraft) UnitPrice() kernel.Money {
	return d.unitPrice
}

// CreateOrderCommand represents a request to register a new custom-print order
// together with its initial line items.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	fee, _ := kernel.ParseMoney("5.00")
//	draft, _ := NewItemDraft("Phoenix logo", "XL", 2, unitPrice)
//	cmd, err := NewCreateOrderCommand(orderID, "NorthPrint", "retail",
//	    "Amina", "0661234567", "12 Rue des Fleurs", "Casablanca",
//	    fee, "deliver after 18h", []ItemDraft{draft})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	brand           string
	usageType       string
	customerName    string
	customerPhone   string
	customerAddress string
	customerCity    string
	deliveryFee     kernel.Money
	internalNotes   string
	items           []ItemDraft

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates the order ID, the delivery fee, and every item draft. Brand and
// customer phone are revalidated by the domain model when the aggregate is
// built, so only structural checks happen here.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	brand string,
	usageType string,
	customerName string,
	customerPhone string,
	customerAddress string,
	customerCity string,
	deliveryFee kernel.Money,
	internalNotes string,
	items []ItemDraft,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		brand:           brand,
		usageType:       usageType,
		customerName:    customerName,
		customerPhone:   customerPhone,
		customerAddress: customerAddress,
		customerCity:    customerCity,
		internalNotes:   internalNotes,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setDeliveryFee(deliveryFee),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Brand returns the brand the printed goods belong to.
func (c CreateOrderCommand) Brand() string {
	return c.brand
}

// UsageType returns the free-form usage descriptor.
func (c CreateOrderCommand) UsageType() string {
	return c.usageType
}

// CustomerName returns the customer's name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the customer's phone number.
func (c CreateOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// CustomerAddress returns the customer's street address.
func (c CreateOrderCommand) CustomerAddress() string {
	return c.customerAddress
}

// CustomerCity returns the customer's city.
func (c CreateOrderCommand) CustomerCity() string {
	return c.customerCity
}

// DeliveryFee returns the authoritative delivery fee.
func (c CreateOrderCommand) DeliveryFee() kernel.Money {
	return c.deliveryFee
}

// InternalNotes returns the optional internal notes.
func (c CreateOrderCommand) InternalNotes() string {
	return c.internalNotes
}

// Items returns the submitted line item drafts.
func (c CreateOrderCommand) Items() []ItemDraft {
	return c.items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setDeliveryFee(deliveryFee kernel.Money) error {
	if err := deliveryFee.Validate(); err != nil {
		return err
	}

	c.deliveryFee = deliveryFee
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemDraft) error {
	for _, draft := range items {
		if err := draft.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}

// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The order row carries the customer contact inline and owns its item rows;
// deleting an order cascades to the items. The code column is the uniqueness
// safety net for the non-atomic sequence generation.
type OrderDTO struct {
	ID            uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Seq           int64       `gorm:"index"`
	Code          string      `gorm:"uniqueIndex"`
	Brand         string      `gorm:"index"`
	UsageType     string
	Customer      CustomerDTO `gorm:"embedded;embeddedPrefix:customer_"`
	Status        string      `gorm:"index"`
	ExpectedCOD   int64       `gorm:"column:expected_cod"`
	DeliveryFee   int64
	InternalNotes string
	Items         []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// CustomerDTO represents the embedded customer contact within the order table.
type CustomerDTO struct {
	Name    string
	Phone   string
	Address string
	City    string
}

// ItemDTO represents the database structure for persisting order line items.
// Items always belong to exactly one order; the batch reference is nullable
// and set once during allocation.
type ItemDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID  `gorm:"type:uuid;index"`
	BatchID    *uuid.UUID `gorm:"type:uuid;index"`
	DesignName string
	SizeText   string
	Quantity   int
	UnitPrice  int64
	LineTotal  int64
	Status     string `gorm:"index"`
	CreatedAt  time.Time
}

// TableName specifies the database table name for order item entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation,
// items included.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, itemFromDomain(aggregate.ID(), item))
	}

	return OrderDTO{
		ID:        aggregate.ID().Bytes(),
		Seq:       aggregate.Code().Sequence(),
		Code:      aggregate.Code().String(),
		Brand:     aggregate.Brand(),
		UsageType: aggregate.UsageType(),
		Customer: CustomerDTO{
			Name:    aggregate.Customer().Name(),
			Phone:   aggregate.Customer().Phone(),
			Address: aggregate.Customer().Address(),
			City:    aggregate.Customer().City(),
		},
		Status:        aggregate.Status().String(),
		ExpectedCOD:   aggregate.ExpectedCOD().Amount(),
		DeliveryFee:   aggregate.DeliveryFee().Amount(),
		InternalNotes: aggregate.InternalNotes(),
		Items:         itemDTOs,
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
	}
}

func itemFromDomain(orderID kernel.UUID, item *order.Item) ItemDTO {
	var batchID *uuid.UUID
	if id := item.Batch(); id != nil {
		raw := id.Bytes()
		batchID = &raw
	}

	return ItemDTO{
		ID:         item.ID().Bytes(),
		OrderID:    orderID.Bytes(),
		BatchID:    batchID,
		DesignName: item.DesignName(),
		SizeText:   item.SizeText(),
		Quantity:   item.Quantity(),
		UnitPrice:  item.UnitPrice().Amount(),
		LineTotal:  item.LineTotal().Amount(),
		Status:     item.Status().String(),
	}
}

// toDomain converts database DTOs to an order domain aggregate.
// Reconstructs the complete aggregate including items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	code, err := order.CodeFromString(dto.Code)
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(
		dto.Customer.Name, dto.Customer.Phone, dto.Customer.Address, dto.Customer.City,
	)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	expectedCOD, err := kernel.NewMoney(dto.ExpectedCOD)
	if err != nil {
		return nil, err
	}

	deliveryFee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id, code, dto.Brand, dto.UsageType, customer, status,
		expectedCOD, deliveryFee, dto.InternalNotes, items,
		dto.CreatedAt, dto.UpdatedAt,
	)
}

func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var batchID *kernel.UUID
	if dto.BatchID != nil {
		bID, batchErr := kernel.UUIDFromBytes((*dto.BatchID)[:])
		if batchErr != nil {
			return nil, batchErr
		}
		batchID = &bID
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	lineTotal, err := kernel.NewMoney(dto.LineTotal)
	if err != nil {
		return nil, err
	}

	status, err := order.ItemStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(
		id, dto.DesignName, dto.SizeText, dto.Quantity,
		unitPrice, lineTotal, status, batchID,
	)
}

// Package queries contains read-side operations in the CQRS architecture.
// Query handlers bypass the domain model and read the order, item, and batch
// tables directly, returning flat response shapes for the transport layer.
package queries

import (
	"errors"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its full detail: customer contact,
// monetary amounts, and every line item with its production status and batch.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	detail, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown order
//	}
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve one order by its identifier.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to retrieve.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse represents one order with its complete detail.
type GetOrderQueryResponse struct {
	ID              kernel.UUID
	Code            string
	Brand           string
	UsageType       string
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	CustomerCity    string
	Status          string
	ExpectedCOD     kernel.Money
	DeliveryFee     kernel.Money
	InternalNotes   string
	Items           []GetOrderItemResponse
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// GetOrderItemResponse represents one line item within an order detail.
// BatchCode is empty while the item has not been allocated to a batch.
type GetOrderItemResponse struct {
	ID         kernel.UUID
	DesignName string
	SizeText   string
	Quantity   int
	UnitPrice  kernel.Money
	LineTotal  kernel.Money
	Status     string
	BatchCode  string
}

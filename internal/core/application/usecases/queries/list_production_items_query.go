package queries

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/guard"
)

var ErrListProductionItemsQueryIsNotConstructed = errors.New(
	"ListProductionItemsQuery must be created via NewListProductionItemsQuery constructor",
)

// ListProductionItemsQuery retrieves the production floor view: one row per
// line item across all orders, joined with its order code and batch code.
// All filters are optional and combine with AND.
//
// Items belonging to archived orders are excluded; archived work does not
// appear on the floor.
type ListProductionItemsQuery struct {
	batchID *kernel.UUID
	status  *order.ItemStatus
	brand   string

	guard guard.ConstructorGuard
}

// NewListProductionItemsQuery creates a query over the production floor view.
//   - batchID: only items in this batch, nil for all batches
//   - status: exact production status, nil for all statuses
//   - brand: exact brand match of the owning order, empty for all brands
func NewListProductionItemsQuery(
	batchID *kernel.UUID,
	status *order.ItemStatus,
	brand string,
) (ListProductionItemsQuery, error) {
	if batchID != nil {
		if err := batchID.Validate(); err != nil {
			return ListProductionItemsQuery{}, err
		}
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListProductionItemsQuery{}, err
		}
	}

	return ListProductionItemsQuery{
		batchID: batchID,
		status:  status,
		brand:   brand,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListProductionItemsQueryIsNotConstructed if validation fails.
func (q ListProductionItemsQuery) Validate() error {
	return q.guard.Validate(ErrListProductionItemsQueryIsNotConstructed)
}

// BatchID returns the batch filter, nil when unfiltered.
func (q ListProductionItemsQuery) BatchID() *kernel.UUID {
	return q.batchID
}

// Status returns the item status filter, nil when unfiltered.
func (q ListProductionItemsQuery) Status() *order.ItemStatus {
	return q.status
}

// Brand returns the brand filter, empty when unfiltered.
func (q ListProductionItemsQuery) Brand() string {
	return q.brand
}

// ListProductionItemsQueryResponse represents one row on the production floor
// view. BatchCode is empty while the item has not been allocated to a batch.
type ListProductionItemsQueryResponse struct {
	ItemID     kernel.UUID
	OrderID    kernel.UUID
	OrderCode  string
	Brand      string
	BatchCode  string
	DesignName string
	SizeText   string
	Quantity   int
	Status     string
}

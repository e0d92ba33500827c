package queries

import (
	"errors"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves the order board: one summary row per order,
// newest first. All filters are optional and combine with AND.
//
// Archived orders are excluded unless the status filter explicitly asks for
// them, so the default board only shows live work.
//
// Example:
//
//	status := order.Confirmed
//	query, err := NewListOrdersQuery(&status, "NorthPrint", "amina", nil, nil)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewListOrdersQueryHandler(db)
//	rows, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	status      *order.Status
	brand       string
	search      string
	createdFrom *time.Time
	createdTo   *time.Time

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query over the order board.
//   - status: exact lifecycle status, nil for all non-archived orders
//   - brand: exact brand match, empty for all brands
//   - search: case-insensitive substring match against order code, customer
//     name, and customer phone; empty to disable
//   - createdFrom/createdTo: inclusive creation time bounds, nil for unbounded
func NewListOrdersQuery(
	status *order.Status,
	brand string,
	search string,
	createdFrom *time.Time,
	createdTo *time.Time,
) (ListOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	return ListOrdersQuery{
		status:      status,
		brand:       brand,
		search:      search,
		createdFrom: createdFrom,
		createdTo:   createdTo,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the status filter, nil when unfiltered.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// Brand returns the brand filter, empty when unfiltered.
func (q ListOrdersQuery) Brand() string {
	return q.brand
}

// Search returns the free-text filter, empty when unfiltered.
func (q ListOrdersQuery) Search() string {
	return q.search
}

// CreatedFrom returns the inclusive lower creation time bound, nil when unbounded.
func (q ListOrdersQuery) CreatedFrom() *time.Time {
	return q.createdFrom
}

// CreatedTo returns the inclusive upper creation time bound, nil when unbounded.
func (q ListOrdersQuery) CreatedTo() *time.Time {
	return q.createdTo
}

// ListOrdersQueryResponse represents one row on the order board.
type ListOrdersQueryResponse struct {
	ID            kernel.UUID
	Code          string
	Brand         string
	CustomerName  string
	CustomerPhone string
	Status        string
	ExpectedCOD   kernel.Money
	ItemCount     int
	CreatedAt     time.Time
}

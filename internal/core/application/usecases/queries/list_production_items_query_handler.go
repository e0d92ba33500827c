package queries

import (
	"context"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListProductionItemsQueryHandler retrieves production floor rows from the
// database: items joined with their owning order and optional batch.
type ListProductionItemsQueryHandler struct {
	db *gorm.DB
}

// NewListProductionItemsQueryHandler creates a handler for production floor queries.
// Requires a GORM database connection for query execution.
func NewListProductionItemsQueryHandler(db *gorm.DB) ListProductionItemsQueryHandler {
	return ListProductionItemsQueryHandler{db: db}
}

// Handle executes the query. Results are grouped by batch code and ordered by
// order code within a batch, matching how work is picked up on the floor.
func (h ListProductionItemsQueryHandler) Handle(
	ctx context.Context,
	query ListProductionItemsQuery,
) ([]ListProductionItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			i.id,
			o.id,
			o.code,
			o.brand,
			COALESCE(b.code, ''),
			i.design_name,
			i.size_text,
			i.quantity,
			i.status
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		LEFT JOIN batches b ON b.id = i.batch_id
		WHERE o.status != ?
	`
	args := []any{order.Archived.String()}

	if batchID := query.BatchID(); batchID != nil {
		sql += " AND i.batch_id = ?"
		args = append(args, batchID.String())
	}

	if status := query.Status(); status != nil {
		sql += " AND i.status = ?"
		args = append(args, status.String())
	}

	if brand := query.Brand(); brand != "" {
		sql += " AND o.brand = ?"
		args = append(args, brand)
	}

	sql += " ORDER BY COALESCE(b.code, ''), o.code, i.created_at, i.id"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := make([]ListProductionItemsQueryResponse, 0)
	for rows.Next() {
		var response ListProductionItemsQueryResponse
		var itemID, orderID uuid.UUID

		if err = rows.Scan(
			&itemID,
			&orderID,
			&response.OrderCode,
			&response.Brand,
			&response.BatchCode,
			&response.DesignName,
			&response.SizeText,
			&response.Quantity,
			&response.Status,
		); err != nil {
			return nil, err
		}

		if response.ItemID, err = kernel.UUIDFromBytes(itemID[:]); err != nil {
			return nil, err
		}
		if response.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}

		responses = append(responses, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}

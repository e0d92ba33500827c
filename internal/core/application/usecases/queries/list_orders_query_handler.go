package queries

import (
	"context"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves order board rows from the database.
// Filters are applied in SQL; the item count comes from a correlated
// subquery so the board never loads full aggregates.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order board queries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted newest first.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			o.id,
			o.code,
			o.brand,
			o.customer_name,
			o.customer_phone,
			o.status,
			o.expected_cod,
			(SELECT COUNT(*) FROM order_items i WHERE i.order_id = o.id),
			o.created_at
		FROM orders o
		WHERE 1=1
	`
	args := make([]any, 0)

	if status := query.Status(); status != nil {
		sql += " AND o.status = ?"
		args = append(args, status.String())
	} else {
		sql += " AND o.status != ?"
		args = append(args, order.Archived.String())
	}

	if brand := query.Brand(); brand != "" {
		sql += " AND o.brand = ?"
		args = append(args, brand)
	}

	if search := query.Search(); search != "" {
		sql += ` AND (o.code ILIKE ? OR o.customer_name ILIKE ? OR o.customer_phone ILIKE ?)`
		pattern := "%" + search + "%"
		args = append(args, pattern, pattern, pattern)
	}

	if from := query.CreatedFrom(); from != nil {
		sql += " AND o.created_at >= ?"
		args = append(args, *from)
	}

	if to := query.CreatedTo(); to != nil {
		sql += " AND o.created_at <= ?"
		args = append(args, *to)
	}

	sql += " ORDER BY o.created_at DESC, o.id DESC"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := make([]ListOrdersQueryResponse, 0)
	for rows.Next() {
		var response ListOrdersQueryResponse
		var id uuid.UUID
		var expectedCOD int64

		if err = rows.Scan(
			&id,
			&response.Code,
			&response.Brand,
			&response.CustomerName,
			&response.CustomerPhone,
			&response.Status,
			&expectedCOD,
			&response.ItemCount,
			&response.CreatedAt,
		); err != nil {
			return nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if response.ExpectedCOD, err = kernel.NewMoney(expectedCOD); err != nil {
			return nil, err
		}

		responses = append(responses, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}

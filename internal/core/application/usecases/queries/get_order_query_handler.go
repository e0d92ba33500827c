package queries

import (
	"context"
	"database/sql"
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order and its items from the database.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	query, _ := NewGetOrderQuery(orderID)
//
//	detail, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%s expects %s on delivery\n", detail.Code, detail.ExpectedCOD)
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query.
// Returns an error wrapping errs.ErrObjectNotFound for unknown identifiers.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	response, err := h.loadOrder(ctx, query)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	items, err := h.loadItems(ctx, query)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.Items = items

	return response, nil
}

func (h GetOrderQueryHandler) loadOrder(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			brand,
			usage_type,
			customer_name,
			customer_phone,
			customer_address,
			customer_city,
			status,
			expected_cod,
			delivery_fee,
			internal_notes,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	var response GetOrderQueryResponse
	var id uuid.UUID
	var expectedCOD, deliveryFee int64

	err := row.Scan(
		&id,
		&response.Code,
		&response.Brand,
		&response.UsageType,
		&response.CustomerName,
		&response.CustomerPhone,
		&response.CustomerAddress,
		&response.CustomerCity,
		&response.Status,
		&expectedCOD,
		&deliveryFee,
		&response.InternalNotes,
		&response.CreatedAt,
		&response.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.ExpectedCOD, err = kernel.NewMoney(expectedCOD); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.DeliveryFee, err = kernel.NewMoney(deliveryFee); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return response, nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, query GetOrderQuery) ([]GetOrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			i.design_name,
			i.size_text,
			i.quantity,
			i.unit_price,
			i.line_total,
			i.status,
			COALESCE(b.code, '')
		FROM order_items i
		LEFT JOIN batches b ON b.id = i.batch_id
		WHERE i.order_id = ?
		ORDER BY i.created_at, i.id
	`, query.OrderID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]GetOrderItemResponse, 0)
	for rows.Next() {
		var item GetOrderItemResponse
		var id uuid.UUID
		var unitPrice, lineTotal int64

		if err = rows.Scan(
			&id,
			&item.DesignName,
			&item.SizeText,
			&item.Quantity,
			&unitPrice,
			&lineTotal,
			&item.Status,
			&item.BatchCode,
		); err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.UnitPrice, err = kernel.NewMoney(unitPrice); err != nil {
			return nil, err
		}
		if item.LineTotal, err = kernel.NewMoney(lineTotal); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

package queries_test

import (
	"testing"
	"time"

	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		id := kernel.NewUUID()

		query, err := queries.NewGetOrderQuery(id)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, id, query.OrderID())
	})

	t.Run("invalid order ID", func(t *testing.T) {
		_, err := queries.NewGetOrderQuery(kernel.UUID{})

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var query queries.GetOrderQuery

		require.ErrorIs(t, query.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
	})
}

func TestNewListOrdersQuery(t *testing.T) {
	t.Run("no filters", func(t *testing.T) {
		query, err := queries.NewListOrdersQuery(nil, "", "", nil, nil)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Nil(t, query.Status())
		assert.Empty(t, query.Brand())
	})

	t.Run("all filters", func(t *testing.T) {
		status := order.Confirmed
		from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 1, 0)

		query, err := queries.NewListOrdersQuery(&status, "NorthPrint", "amina", &from, &to)

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, *query.Status())
		assert.Equal(t, "NorthPrint", query.Brand())
		assert.Equal(t, "amina", query.Search())
		assert.Equal(t, from, *query.CreatedFrom())
		assert.Equal(t, to, *query.CreatedTo())
	})

	t.Run("invalid status filter", func(t *testing.T) {
		status := order.Unknown

		_, err := queries.NewListOrdersQuery(&status, "", "", nil, nil)

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var query queries.ListOrdersQuery

		require.ErrorIs(t, query.Validate(), queries.ErrListOrdersQueryIsNotConstructed)
	})
}

func TestNewListProductionItemsQuery(t *testing.T) {
	t.Run("no filters", func(t *testing.T) {
		query, err := queries.NewListProductionItemsQuery(nil, nil, "")

		require.NoError(t, err)
		require.NoError(t, query.Validate())
	})

	t.Run("all filters", func(t *testing.T) {
		batchID := kernel.NewUUID()
		status := order.InProgress

		query, err := queries.NewListProductionItemsQuery(&batchID, &status, "NorthPrint")

		require.NoError(t, err)
		assert.True(t, query.BatchID().IsEqual(batchID))
		assert.Equal(t, order.InProgress, *query.Status())
		assert.Equal(t, "NorthPrint", query.Brand())
	})

	t.Run("invalid batch ID", func(t *testing.T) {
		var batchID kernel.UUID

		_, err := queries.NewListProductionItemsQuery(&batchID, nil, "")

		require.Error(t, err)
	})

	t.Run("invalid item status", func(t *testing.T) {
		status := order.ItemStatusUnknown

		_, err := queries.NewListProductionItemsQuery(nil, &status, "")

		require.Error(t, err)
	})
}

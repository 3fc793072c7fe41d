package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartLinesFiltersInactiveProducts(t *testing.T) {
	store, mock := newMockStore(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "quantity", "created_at",
		"p_id", "p_name", "p_price", "p_compare_price", "p_images", "p_inventory", "p_is_active",
	}).AddRow("ci1", 8, now, "p1", "Whole Milk", "1.89", nil, []byte(`[]`), 50, true)

	mock.ExpectQuery(`JOIN products p ON ci\.product_id = p\.id WHERE ci\.user_id = \? AND p\.is_active = TRUE ORDER BY ci\.created_at`).
		WithArgs("u1").
		WillReturnRows(rows)

	lines, err := store.CartLines(context.Background(), "u1")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	require.Len(t, lines, 1)
	assert.Equal(t, 8, lines[0].Quantity)
	assert.True(t, lines[0].Product.Price.Equal(decimal.RequireFromString("1.89")))
	assert.Equal(t, []string{}, lines[0].Product.Images)
}

func TestDeleteCartItemScopedToOwner(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(`DELETE FROM cart_items WHERE id = \? AND user_id = \?`).
		WithArgs("ci1", "u2").
		WillReturnResult(sqlmock.NewResult(0, 0))

	affected, err := store.DeleteCartItem(context.Background(), "ci1", "u2")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, int64(0), affected)
}

func TestClearCartItemsScopedToUser(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(`DELETE FROM cart_items WHERE user_id = \?`).
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 3))

	count, err := store.ClearCartItems(context.Background(), "u1")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, int64(3), count)
}

package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bigshop/bigshop-golang/internal/services"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db), mock
}

func productColumnNames() []string {
	return []string{
		"id", "name", "slug", "description", "short_description", "sku",
		"price", "compare_price", "category_id", "inventory", "weight",
		"images", "tags", "meta_title", "meta_description",
		"is_active", "is_featured", "created_at", "updated_at",
	}
}

func productRow(rows *sqlmock.Rows, id, name, price string) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(
		id, name, "slug-"+id, nil, nil, nil,
		price, nil, "cat-1", 10, nil,
		[]byte(`["img"]`), []byte(`["tag"]`), nil, nil,
		true, false, now, now,
	)
}

func TestListProductsAlwaysFiltersActive(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT .+ FROM products p WHERE p\.is_active = TRUE ORDER BY p\.created_at DESC LIMIT \? OFFSET \?`).
		WithArgs(20, 0).
		WillReturnRows(productRow(sqlmock.NewRows(productColumnNames()), "p1", "Bananas", "2.80"))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM products p WHERE p\.is_active = TRUE`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	products, total, err := store.ListProducts(context.Background(), services.ProductFilter{Limit: 20})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, 1, total)
	require.Len(t, products, 1)
	assert.Equal(t, "Bananas", products[0].Name)
	assert.True(t, products[0].IsActive)
	assert.Equal(t, []string{"img"}, products[0].Images)
}

func TestListProductsAppliesAllFilters(t *testing.T) {
	store, mock := newMockStore(t)

	min := decimal.RequireFromString("1.5")
	max := decimal.RequireFromString("9.99")
	featured := true

	mock.ExpectQuery(`SELECT .+ FROM products p WHERE p\.is_active = TRUE`+
		` AND p\.category_id = \? AND p\.name LIKE \? AND p\.price >= \?`+
		` AND p\.price <= \? AND p\.is_featured = \? ORDER BY p\.price ASC LIMIT \? OFFSET \?`).
		WithArgs("cat-1", "%milk%", min.String(), max.String(), featured, 10, 5).
		WillReturnRows(sqlmock.NewRows(productColumnNames()))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM products p WHERE p\.is_active = TRUE`+
		` AND p\.category_id = \? AND p\.name LIKE \? AND p\.price >= \?`+
		` AND p\.price <= \? AND p\.is_featured = \?`).
		WithArgs("cat-1", "%milk%", min.String(), max.String(), featured).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	products, total, err := store.ListProducts(context.Background(), services.ProductFilter{
		CategoryID: "cat-1",
		Search:     "milk",
		MinPrice:   &min,
		MaxPrice:   &max,
		Featured:   &featured,
		SortBy:     "price",
		SortOrder:  "asc",
		Limit:      10,
		Offset:     5,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, 0, total)
	assert.Empty(t, products)
}

func TestListProductsPriceBoundsOnly(t *testing.T) {
	store, mock := newMockStore(t)

	min := decimal.RequireFromString("2")

	mock.ExpectQuery(`FROM products p WHERE p\.is_active = TRUE AND p\.price >= \? ORDER BY`).
		WithArgs(min.String(), 20, 0).
		WillReturnRows(productRow(sqlmock.NewRows(productColumnNames()), "p1", "Gala Apples", "3.50"))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM products p WHERE p\.is_active = TRUE AND p\.price >= \?`).
		WithArgs(min.String()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	products, _, err := store.ListProducts(context.Background(), services.ProductFilter{MinPrice: &min, Limit: 20})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	require.Len(t, products, 1)
	assert.True(t, products[0].Price.GreaterThanOrEqual(min))
}

func TestListProductsUnknownSortFallsBack(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`ORDER BY p\.created_at DESC`).
		WithArgs(20, 0).
		WillReturnRows(sqlmock.NewRows(productColumnNames()))
	mock.ExpectQuery(`SELECT COUNT\(\*\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	_, _, err := store.ListProducts(context.Background(), services.ProductFilter{SortBy: "inventory; DROP TABLE products", Limit: 20})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProductByIDRequiresActive(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`WHERE p\.id = \? AND p\.is_active = TRUE`).
		WithArgs("p-inactive").
		WillReturnError(sql.ErrNoRows)

	_, err := store.GetProductByID(context.Background(), "p-inactive")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProductByIDBuildsCategorySummary(t *testing.T) {
	store, mock := newMockStore(t)

	now := time.Now()
	columns := append(productColumnNames(), "c_id", "c_name", "c_slug", "c_description")
	rows := sqlmock.NewRows(columns).AddRow(
		"p1", "Whole Milk", "whole-milk", nil, nil, nil,
		"2.50", nil, "cat-1", 50, nil,
		[]byte(`[]`), []byte(`[]`), nil, nil,
		true, true, now, now,
		"cat-1", "Dairy Products", "dairy-products", nil,
	)
	mock.ExpectQuery(`LEFT JOIN categories c ON p\.category_id = c\.id`).
		WithArgs("p1").
		WillReturnRows(rows)

	product, err := store.GetProductByID(context.Background(), "p1")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	require.NotNil(t, product.Category)
	assert.Equal(t, "Dairy Products", product.Category.Name)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("2.50")))
}

func TestFirstProductByNameMatchesSubstring(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`WHERE p\.is_active = TRUE AND p\.name LIKE \? LIMIT 1`).
		WithArgs("%milk%").
		WillReturnRows(productRow(sqlmock.NewRows(productColumnNames()), "p1", "Whole Milk", "2.50"))

	product, err := store.FirstProductByName(context.Background(), "milk")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, "Whole Milk", product.Name)
}

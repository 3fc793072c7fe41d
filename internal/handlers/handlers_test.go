package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bigshop/bigshop-golang/internal/assistant"
	"github.com/bigshop/bigshop-golang/internal/handlers"
	"github.com/bigshop/bigshop-golang/internal/models"
	"github.com/bigshop/bigshop-golang/internal/routes"
	"github.com/bigshop/bigshop-golang/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeCatalog struct {
	page       *services.ProductPage
	product    *models.Product
	err        error
	lastFilter services.ProductFilter
}

func (f *fakeCatalog) ListProducts(ctx context.Context, filter services.ProductFilter) (*services.ProductPage, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	if f.page == nil {
		return &services.ProductPage{Data: []models.Product{}}, nil
	}
	return f.page, nil
}

func (f *fakeCatalog) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.product == nil {
		return nil, services.ErrProductNotFound
	}
	return f.product, nil
}

type fakeCart struct {
	cart     *services.Cart
	mutation *services.CartMutation
	clear    *services.ClearResult
	err      error

	lastUserID    string
	lastProductID string
	lastItemID    string
	lastQuantity  int
}

func (f *fakeCart) GetCart(ctx context.Context, userID string) (*services.Cart, error) {
	f.lastUserID = userID
	if f.err != nil {
		return nil, f.err
	}
	if f.cart == nil {
		return &services.Cart{Items: []models.CartLine{}, TotalAmount: "0.00"}, nil
	}
	return f.cart, nil
}

func (f *fakeCart) AddToCart(ctx context.Context, userID, productID string, quantity int) (*services.CartMutation, error) {
	f.lastUserID, f.lastProductID, f.lastQuantity = userID, productID, quantity
	if f.err != nil {
		return nil, f.err
	}
	return f.mutation, nil
}

func (f *fakeCart) UpdateCartItem(ctx context.Context, userID, itemID string, quantity int) (*services.CartMutation, error) {
	f.lastUserID, f.lastItemID, f.lastQuantity = userID, itemID, quantity
	if f.err != nil {
		return nil, f.err
	}
	return f.mutation, nil
}

func (f *fakeCart) RemoveFromCart(ctx context.Context, userID, itemID string) (*services.CartMutation, error) {
	f.lastUserID, f.lastItemID = userID, itemID
	if f.err != nil {
		return nil, f.err
	}
	return f.mutation, nil
}

func (f *fakeCart) ClearCart(ctx context.Context, userID string) (*services.ClearResult, error) {
	f.lastUserID = userID
	if f.err != nil {
		return nil, f.err
	}
	return f.clear, nil
}

type fakeAssistant struct {
	result *assistant.ChatResult
	err    error

	lastMessage string
}

func (f *fakeAssistant) Chat(ctx context.Context, userID, message, conversationID string) (*assistant.ChatResult, error) {
	f.lastMessage = message
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakeCategories struct {
	categories []models.Category
	err        error
}

func (f *fakeCategories) ListCategories(ctx context.Context) ([]models.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.categories, nil
}

type fixture struct {
	catalog    *fakeCatalog
	cart       *fakeCart
	assistant  *fakeAssistant
	categories *fakeCategories
	router     *gin.Engine
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		catalog:    &fakeCatalog{},
		cart:       &fakeCart{},
		assistant:  &fakeAssistant{},
		categories: &fakeCategories{},
	}
	h := &handlers.Handlers{
		Catalog:    f.catalog,
		Cart:       f.cart,
		Assistant:  f.assistant,
		Categories: f.categories,
		Log:        zap.NewNop(),
	}
	f.router = routes.SetupRouter(h, "http://localhost:3000")
	return f
}

func (f *fixture) request(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestGetProductsPassesFilters(t *testing.T) {
	f := newFixture(t)

	w := f.request(t, http.MethodGet, "/api/v1/products?search=milk&minPrice=1.50&maxPrice=9.99&featured=true&sortBy=price&sortOrder=desc&limit=5&offset=10", "")
	assert.Equal(t, http.StatusOK, w.Code)

	filter := f.catalog.lastFilter
	assert.Equal(t, "milk", filter.Search)
	require.NotNil(t, filter.MinPrice)
	assert.True(t, filter.MinPrice.Equal(decimal.RequireFromString("1.50")))
	require.NotNil(t, filter.MaxPrice)
	assert.True(t, filter.MaxPrice.Equal(decimal.RequireFromString("9.99")))
	require.NotNil(t, filter.Featured)
	assert.True(t, *filter.Featured)
	assert.Equal(t, "price", filter.SortBy)
	assert.Equal(t, "desc", filter.SortOrder)
	assert.Equal(t, 5, filter.Limit)
	assert.Equal(t, 10, filter.Offset)
}

func TestGetProductsRejectsBadParams(t *testing.T) {
	f := newFixture(t)

	for _, path := range []string{
		"/api/v1/products?limit=abc",
		"/api/v1/products?limit=-1",
		"/api/v1/products?offset=-5",
		"/api/v1/products?sortBy=inventory",
		"/api/v1/products?sortOrder=sideways",
		"/api/v1/products?minPrice=cheap",
		"/api/v1/products?featured=kinda",
	} {
		w := f.request(t, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.Equal(t, "validation_error", decodeBody(t, w)["error"], path)
	}
}

func TestGetProductNotFound(t *testing.T) {
	f := newFixture(t)

	w := f.request(t, http.MethodGet, "/api/v1/products/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "not_found", body["error"])
	assert.NotContains(t, body, "details")
}

func TestAddToCartValidation(t *testing.T) {
	f := newFixture(t)

	for _, body := range []string{
		`{}`,
		`{"productId":"p1"}`,
		`{"productId":"p1","quantity":0}`,
		`{"productId":"p1","quantity":-2}`,
		`{"quantity":3}`,
	} {
		w := f.request(t, http.MethodPost, "/api/v1/cart/u1", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestAddToCartCreated(t *testing.T) {
	f := newFixture(t)
	f.cart.mutation = &services.CartMutation{
		Item:    &models.CartItem{ID: "ci1", Quantity: 3},
		Message: "Product added to cart successfully",
	}

	w := f.request(t, http.MethodPost, "/api/v1/cart/u1", `{"productId":"p1","quantity":3}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "u1", f.cart.lastUserID)
	assert.Equal(t, "p1", f.cart.lastProductID)
	assert.Equal(t, 3, f.cart.lastQuantity)
}

func TestAddToCartInsufficientStock(t *testing.T) {
	f := newFixture(t)
	f.cart.err = &services.InsufficientStockError{Available: 2, Requested: 5}

	w := f.request(t, http.MethodPost, "/api/v1/cart/u1", `{"productId":"p1","quantity":5}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "insufficient_stock", body["error"])
	assert.Contains(t, body["message"], "available 2")
}

func TestUpdateCartItemZeroQuantityAllowed(t *testing.T) {
	f := newFixture(t)
	f.cart.mutation = &services.CartMutation{Deleted: true, Message: "Product removed from cart successfully"}

	w := f.request(t, http.MethodPut, "/api/v1/cart/u1/items/ci1", `{"quantity":0}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ci1", f.cart.lastItemID)
	assert.Equal(t, 0, f.cart.lastQuantity)
}

func TestUpdateCartItemValidation(t *testing.T) {
	f := newFixture(t)

	for _, body := range []string{`{}`, `{"quantity":-1}`, `{"quantity":"two"}`} {
		w := f.request(t, http.MethodPut, "/api/v1/cart/u1/items/ci1", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestDeleteCartItemNotFound(t *testing.T) {
	f := newFixture(t)
	f.cart.err = services.ErrCartItemNotFound

	w := f.request(t, http.MethodDelete, "/api/v1/cart/u1/items/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClearCart(t *testing.T) {
	f := newFixture(t)
	f.cart.clear = &services.ClearResult{Message: "Cart cleared successfully", DeletedCount: 4}

	w := f.request(t, http.MethodDelete, "/api/v1/cart/u1", "")
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(4), body["deletedCount"])
}

func TestChatValidation(t *testing.T) {
	f := newFixture(t)

	for _, body := range []string{
		`{}`,
		`{"message":""}`,
		`{"message":` + `"` + strings.Repeat("a", 1001) + `"}`,
	} {
		w := f.request(t, http.MethodPost, "/api/v1/ai/chat/u1", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestChatUnavailable(t *testing.T) {
	f := newFixture(t)
	f.assistant.err = services.ErrAssistantUnavailable

	w := f.request(t, http.MethodPost, "/api/v1/ai/chat/u1", `{"message":"hi"}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "assistant_unavailable", decodeBody(t, w)["error"])
}

func TestChatSuccess(t *testing.T) {
	f := newFixture(t)
	f.assistant.result = &assistant.ChatResult{
		Message:         "Found 1 product(s)",
		FunctionResults: []assistant.Operation{{Function: "search_products"}},
		Model:           "keyword-assistant",
	}

	w := f.request(t, http.MethodPost, "/api/v1/ai/chat/u1", `{"message":"find milk"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "find milk", f.assistant.lastMessage)

	body := decodeBody(t, w)
	assert.Equal(t, "Found 1 product(s)", body["message"])
}

func TestGetCategories(t *testing.T) {
	f := newFixture(t)
	f.categories.categories = []models.Category{{ID: "c1", Name: "Dairy Products", Slug: "dairy-products"}}

	w := f.request(t, http.MethodGet, "/api/v1/categories", "")
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	data, ok := body["data"].([]interface{})
	require.True(t, ok)
	assert.Len(t, data, 1)
}

func TestStubEndpoints(t *testing.T) {
	f := newFixture(t)

	for _, tc := range []struct {
		method, path string
	}{
		{http.MethodPost, "/api/v1/products"},
		{http.MethodGet, "/api/v1/orders"},
		{http.MethodPost, "/api/v1/orders"},
	} {
		w := f.request(t, tc.method, tc.path, "")
		assert.Equal(t, http.StatusOK, w.Code, tc.path)
		assert.Contains(t, decodeBody(t, w)["message"], "coming soon", tc.path)
	}
}

func TestErrorDetailsOnlyInDevelopment(t *testing.T) {
	f := newFixture(t)
	f.catalog.err = stubFailure{}

	w := f.request(t, http.MethodGet, "/api/v1/products", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, decodeBody(t, w), "details")

	dev := newFixture(t)
	dev.catalog.err = stubFailure{}
	devHandlers := &handlers.Handlers{
		Catalog:    dev.catalog,
		Cart:       dev.cart,
		Assistant:  dev.assistant,
		Categories: dev.categories,
		Log:        zap.NewNop(),
		Dev:        true,
	}
	dev.router = routes.SetupRouter(devHandlers, "http://localhost:3000")

	w = dev.request(t, http.MethodGet, "/api/v1/products", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, decodeBody(t, w), "details")
}

type stubFailure struct{}

func (stubFailure) Error() string { return "boom" }

func TestCORSPreflight(t *testing.T) {
	f := newFixture(t)

	w := f.request(t, http.MethodOptions, "/api/v1/products", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

package handlers

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bigshop/bigshop-golang/internal/assistant"
	"github.com/bigshop/bigshop-golang/internal/models"
	"github.com/bigshop/bigshop-golang/internal/services"
)

// Service interfaces consumed by the HTTP layer. Tests substitute fakes.

type CatalogService interface {
	ListProducts(ctx context.Context, f services.ProductFilter) (*services.ProductPage, error)
	GetProductByID(ctx context.Context, id string) (*models.Product, error)
}

type CartService interface {
	GetCart(ctx context.Context, userID string) (*services.Cart, error)
	AddToCart(ctx context.Context, userID, productID string, quantity int) (*services.CartMutation, error)
	UpdateCartItem(ctx context.Context, userID, itemID string, quantity int) (*services.CartMutation, error)
	RemoveFromCart(ctx context.Context, userID, itemID string) (*services.CartMutation, error)
	ClearCart(ctx context.Context, userID string) (*services.ClearResult, error)
}

type AssistantService interface {
	Chat(ctx context.Context, userID, message, conversationID string) (*assistant.ChatResult, error)
}

type CategoryStore interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
}

// Handlers holds all dependencies for the HTTP handlers.
type Handlers struct {
	DB         *sql.DB
	Catalog    CatalogService
	Cart       CartService
	Assistant  AssistantService
	Categories CategoryStore
	Log        *zap.Logger

	// Dev controls whether internal error details reach clients.
	Dev bool
}

// respondError writes the JSON error envelope. Internal details are only
// attached in development mode.
func (h *Handlers) respondError(c *gin.Context, status int, code, message string, err error) {
	body := gin.H{"error": code, "message": message}
	if h.Dev && err != nil {
		body["details"] = err.Error()
	}
	c.JSON(status, body)
}

// respondServiceError maps service errors to HTTP statuses: not-found to
// 404, bad quantities to 400, stock conflicts to 409, a missing assistant
// credential to 503, everything else to 500 with the given safe message.
func (h *Handlers) respondServiceError(c *gin.Context, err error, fallback string) {
	var stockErr *services.InsufficientStockError
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		h.respondError(c, http.StatusNotFound, "not_found", "Product not found or inactive", nil)
	case errors.Is(err, services.ErrCartItemNotFound):
		h.respondError(c, http.StatusNotFound, "not_found", "Cart item not found", nil)
	case errors.Is(err, services.ErrInvalidQuantity):
		h.respondError(c, http.StatusBadRequest, "validation_error", services.ErrInvalidQuantity.Error(), nil)
	case errors.As(err, &stockErr):
		h.respondError(c, http.StatusConflict, "insufficient_stock", stockErr.Error(), nil)
	case errors.Is(err, services.ErrAssistantUnavailable):
		h.respondError(c, http.StatusServiceUnavailable, "assistant_unavailable", "AI assistant temporarily unavailable", nil)
	default:
		h.respondError(c, http.StatusInternalServerError, "internal_error", fallback, err)
	}
}

// HealthCheck is the handler for GET /health: liveness plus a database
// reachability probe.
func (h *Handlers) HealthCheck(c *gin.Context) {
	database := "connected"
	status := "ok"
	if err := h.DB.PingContext(c.Request.Context()); err != nil {
		database = "disconnected"
		status = "unavailable"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"database":  database,
	})
}

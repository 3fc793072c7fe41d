package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/bigshop/bigshop-golang/internal/models"
)

// CartStore is the cart access the cart service needs.
type CartStore interface {
	CartLines(ctx context.Context, userID string) ([]models.CartLine, error)
	FindCartItem(ctx context.Context, userID, productID string) (*models.CartItem, error)
	GetCartItemWithProduct(ctx context.Context, itemID, userID string) (*models.CartItem, *models.Product, error)
	InsertCartItem(ctx context.Context, item *models.CartItem) error
	UpdateCartItemQuantity(ctx context.Context, item *models.CartItem) error
	DeleteCartItem(ctx context.Context, itemID, userID string) (int64, error)
	ClearCartItems(ctx context.Context, userID string) (int64, error)
}

// Cart is the enriched cart response: rows plus totals.
type Cart struct {
	Items       []models.CartLine `json:"items"`
	TotalItems  int               `json:"totalItems"`
	TotalAmount string            `json:"totalAmount"`
}

// CartMutation is the result of an add/update/remove call.
type CartMutation struct {
	Item    *models.CartItem `json:"item,omitempty"`
	Product *models.Product  `json:"product,omitempty"`
	Deleted bool             `json:"deleted,omitempty"`
	Message string           `json:"message"`
}

// ClearResult reports how many rows a clear removed.
type ClearResult struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deletedCount"`
}

// CartService implements add/update/remove/clear with stock validation.
// The read-inventory-then-write sequence is not transactionally isolated;
// two concurrent adds can both pass the check.
type CartService struct {
	carts    CartStore
	products ProductStore
	log      *zap.Logger
}

func NewCartService(carts CartStore, products ProductStore, log *zap.Logger) *CartService {
	return &CartService{carts: carts, products: products, log: log}
}

// GetCart returns the user's cart with totals. Inactive products are
// filtered out by the store join. An empty cart is not an error.
func (s *CartService) GetCart(ctx context.Context, userID string) (*Cart, error) {
	lines, err := s.carts.CartLines(ctx, userID)
	if err != nil {
		s.log.Error("error getting cart", zap.String("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	totalItems := 0
	totalAmount := decimal.Zero
	for _, line := range lines {
		totalItems += line.Quantity
		totalAmount = totalAmount.Add(line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	return &Cart{
		Items:       lines,
		TotalItems:  totalItems,
		TotalAmount: totalAmount.StringFixed(2),
	}, nil
}

// AddToCart validates the product and its inventory, then either inserts a
// new row or adds the quantity onto the existing one. The combined quantity
// is re-validated against inventory before the update lands.
func (s *CartService) AddToCart(ctx context.Context, userID, productID string, quantity int) (*CartMutation, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.products.GetProductByID(ctx, productID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		s.log.Error("error adding to cart", zap.String("product_id", productID), zap.Error(err))
		return nil, fmt.Errorf("failed to add product to cart: %w", err)
	}

	if product.Inventory < quantity {
		return nil, &InsufficientStockError{Available: product.Inventory, Requested: quantity}
	}

	now := time.Now()

	existing, err := s.carts.FindCartItem(ctx, userID, productID)
	switch {
	case err == nil:
		newQuantity := existing.Quantity + quantity
		if product.Inventory < newQuantity {
			return nil, &InsufficientStockError{Available: product.Inventory, Requested: newQuantity}
		}
		existing.Quantity = newQuantity
		existing.UpdatedAt = now
		if err := s.carts.UpdateCartItemQuantity(ctx, existing); err != nil {
			s.log.Error("error updating cart row", zap.String("item_id", existing.ID), zap.Error(err))
			return nil, fmt.Errorf("failed to add product to cart: %w", err)
		}
		return &CartMutation{Item: existing, Product: product, Message: "Cart updated successfully"}, nil

	case errors.Is(err, sql.ErrNoRows):
		item := &models.CartItem{
			ID:        uuid.NewString(),
			UserID:    userID,
			ProductID: productID,
			Quantity:  quantity,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.carts.InsertCartItem(ctx, item); err != nil {
			s.log.Error("error inserting cart row", zap.String("product_id", productID), zap.Error(err))
			return nil, fmt.Errorf("failed to add product to cart: %w", err)
		}
		return &CartMutation{Item: item, Product: product, Message: "Product added to cart successfully"}, nil

	default:
		s.log.Error("error reading cart row", zap.String("product_id", productID), zap.Error(err))
		return nil, fmt.Errorf("failed to add product to cart: %w", err)
	}
}

// UpdateCartItem sets a row's quantity. Quantity zero deletes the row.
// The row must belong to the requesting user.
func (s *CartService) UpdateCartItem(ctx context.Context, userID, itemID string, quantity int) (*CartMutation, error) {
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}

	item, product, err := s.carts.GetCartItemWithProduct(ctx, itemID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCartItemNotFound
	}
	if err != nil {
		s.log.Error("error updating cart item", zap.String("item_id", itemID), zap.Error(err))
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}

	if quantity == 0 {
		if _, err := s.carts.DeleteCartItem(ctx, itemID, userID); err != nil {
			s.log.Error("error deleting cart item", zap.String("item_id", itemID), zap.Error(err))
			return nil, fmt.Errorf("failed to update cart item: %w", err)
		}
		return &CartMutation{Deleted: true, Message: "Product removed from cart successfully"}, nil
	}

	if product.Inventory < quantity {
		return nil, &InsufficientStockError{Available: product.Inventory, Requested: quantity}
	}

	item.Quantity = quantity
	item.UpdatedAt = time.Now()
	if err := s.carts.UpdateCartItemQuantity(ctx, item); err != nil {
		s.log.Error("error updating cart item", zap.String("item_id", itemID), zap.Error(err))
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}

	return &CartMutation{Item: item, Product: product, Message: "Cart item updated successfully"}, nil
}

// RemoveFromCart deletes one row scoped to the owning user.
func (s *CartService) RemoveFromCart(ctx context.Context, userID, itemID string) (*CartMutation, error) {
	affected, err := s.carts.DeleteCartItem(ctx, itemID, userID)
	if err != nil {
		s.log.Error("error removing cart item", zap.String("item_id", itemID), zap.Error(err))
		return nil, fmt.Errorf("failed to remove product from cart: %w", err)
	}
	if affected == 0 {
		return nil, ErrCartItemNotFound
	}
	return &CartMutation{Deleted: true, Message: "Product removed from cart successfully"}, nil
}

// ClearCart deletes every row belonging to the user.
func (s *CartService) ClearCart(ctx context.Context, userID string) (*ClearResult, error) {
	count, err := s.carts.ClearCartItems(ctx, userID)
	if err != nil {
		s.log.Error("error clearing cart", zap.String("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}
	return &ClearResult{Message: "Cart cleared successfully", DeletedCount: count}, nil
}

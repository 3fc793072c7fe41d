package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem defines the struct for the 'cart_items' table. At most one row
// exists per (user, product) pair; that invariant lives in the upsert logic,
// not in a database constraint.
type CartItem struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"userId" db:"user_id"`
	ProductID string    `json:"productId" db:"product_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// CartProduct is the product snapshot joined onto a cart row.
type CartProduct struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Price        decimal.Decimal  `json:"price"`
	ComparePrice *decimal.Decimal `json:"comparePrice"`
	Images       []string         `json:"images"`
	Inventory    int              `json:"inventory"`
	IsActive     bool             `json:"isActive"`
}

// CartLine is one enriched cart row as returned by GET /cart.
type CartLine struct {
	ID        string      `json:"id"`
	Quantity  int         `json:"quantity"`
	CreatedAt time.Time   `json:"createdAt"`
	Product   CartProduct `json:"product"`
}

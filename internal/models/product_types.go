package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the model for the 'products' table. Nullable columns use
// pointers so empty values serialize cleanly.
type Product struct {
	ID               string           `json:"id" db:"id"`
	Name             string           `json:"name" db:"name"`
	Slug             string           `json:"slug" db:"slug"`
	Description      *string          `json:"description" db:"description"`
	ShortDescription *string          `json:"shortDescription" db:"short_description"`
	SKU              *string          `json:"sku" db:"sku"`

	// --- Pricing & Stock ---
	Price        decimal.Decimal  `json:"price" db:"price"`
	ComparePrice *decimal.Decimal `json:"comparePrice" db:"compare_price"`
	Inventory    int              `json:"inventory" db:"inventory"`

	CategoryID string           `json:"categoryId" db:"category_id"`
	Weight     *decimal.Decimal `json:"weight,omitempty" db:"weight"`

	// --- Media & SEO (JSON columns) ---
	Images          []string `json:"images"`
	Tags            []string `json:"tags"`
	MetaTitle       *string  `json:"metaTitle,omitempty" db:"meta_title"`
	MetaDescription *string  `json:"metaDescription,omitempty" db:"meta_description"`

	// --- Flags ---
	IsActive   bool `json:"isActive" db:"is_active"`
	IsFeatured bool `json:"isFeatured" db:"is_featured"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	// Join (populated manually on single-product lookups)
	Category *CategorySummary `json:"category,omitempty" db:"-"`
}

// CategorySummary is the slice of category data embedded in a product detail
// response.
type CategorySummary struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
}

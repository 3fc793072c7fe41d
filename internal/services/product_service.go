package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/bigshop/bigshop-golang/internal/models"
)

// Pagination bounds applied to every listing.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ProductFilter carries the optional listing filters. All set filters are
// combined with AND.
type ProductFilter struct {
	CategoryID string
	Search     string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Featured   *bool
	SortBy     string
	SortOrder  string
	Limit      int
	Offset     int
}

// ProductPage is one page of listing results.
type ProductPage struct {
	Data    []models.Product `json:"data"`
	Total   int              `json:"total"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
	HasMore bool             `json:"hasMore"`
}

// ProductStore is the catalog access the product service needs.
type ProductStore interface {
	ListProducts(ctx context.Context, f ProductFilter) ([]models.Product, int, error)
	GetProductByID(ctx context.Context, id string) (*models.Product, error)
	FirstProductByName(ctx context.Context, name string) (*models.Product, error)
}

// ProductService builds filtered, sorted, paginated listings and single
// product lookups over the catalog store.
type ProductService struct {
	store ProductStore
	log   *zap.Logger
}

func NewProductService(store ProductStore, log *zap.Logger) *ProductService {
	return &ProductService{store: store, log: log}
}

// ListProducts returns active products matching the filter. Storage errors
// collapse to a generic failure; validation happens before this call.
func (s *ProductService) ListProducts(ctx context.Context, f ProductFilter) (*ProductPage, error) {
	if f.Limit <= 0 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	data, total, err := s.store.ListProducts(ctx, f)
	if err != nil {
		s.log.Error("error getting products", zap.Error(err))
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	return &ProductPage{
		Data:    data,
		Total:   total,
		Limit:   f.Limit,
		Offset:  f.Offset,
		HasMore: f.Offset+f.Limit < total,
	}, nil
}

// GetProductByID returns one active product with its category summary.
// Missing or inactive products report ErrProductNotFound, distinct from
// storage errors.
func (s *ProductService) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.store.GetProductByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		s.log.Error("error getting product by id", zap.String("product_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

// FindProductByName resolves free text to the first active product whose
// name contains it.
func (s *ProductService) FindProductByName(ctx context.Context, name string) (*models.Product, error) {
	product, err := s.store.FirstProductByName(ctx, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		s.log.Error("error searching product by name", zap.String("name", name), zap.Error(err))
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	return product, nil
}

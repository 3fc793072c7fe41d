package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/bigshop/bigshop-golang/internal/services"
)

type listProductsQuery struct {
	Category  string `form:"category"`
	Search    string `form:"search"`
	MinPrice  string `form:"minPrice"`
	MaxPrice  string `form:"maxPrice"`
	Featured  *bool  `form:"featured"`
	SortBy    string `form:"sortBy" binding:"omitempty,oneof=name price created featured"`
	SortOrder string `form:"sortOrder" binding:"omitempty,oneof=asc desc"`
	Limit     *int   `form:"limit" binding:"omitempty,gte=0"`
	Offset    *int   `form:"offset" binding:"omitempty,gte=0"`
}

// GetProducts is the handler for GET /api/v1/products.
func (h *Handlers) GetProducts(c *gin.Context) {
	var q listProductsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.respondError(c, http.StatusBadRequest, "validation_error", "Invalid query parameters", err)
		return
	}

	filter := services.ProductFilter{
		CategoryID: q.Category,
		Search:     q.Search,
		Featured:   q.Featured,
		SortBy:     q.SortBy,
		SortOrder:  q.SortOrder,
	}
	if q.MinPrice != "" {
		min, err := decimal.NewFromString(q.MinPrice)
		if err != nil {
			h.respondError(c, http.StatusBadRequest, "validation_error", "minPrice must be a decimal number", err)
			return
		}
		filter.MinPrice = &min
	}
	if q.MaxPrice != "" {
		max, err := decimal.NewFromString(q.MaxPrice)
		if err != nil {
			h.respondError(c, http.StatusBadRequest, "validation_error", "maxPrice must be a decimal number", err)
			return
		}
		filter.MaxPrice = &max
	}
	if q.Limit != nil {
		filter.Limit = *q.Limit
	}
	if q.Offset != nil {
		filter.Offset = *q.Offset
	}

	page, err := h.Catalog.ListProducts(c.Request.Context(), filter)
	if err != nil {
		h.Log.Error("list products failed", zap.Error(err))
		h.respondServiceError(c, err, "Failed to fetch products")
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetProduct is the handler for GET /api/v1/products/:id.
func (h *Handlers) GetProduct(c *gin.Context) {
	product, err := h.Catalog.GetProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondServiceError(c, err, "Failed to fetch product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": product})
}

// CreateProduct is a placeholder for the admin product endpoint.
func (h *Handlers) CreateProduct(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Create product endpoint - coming soon"})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type addToCartInput struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

type updateCartItemInput struct {
	// Pointer so an explicit zero (remove the line) passes validation.
	Quantity *int `json:"quantity" binding:"required,gte=0"`
}

// GetCart is the handler for GET /api/v1/cart/:userId.
func (h *Handlers) GetCart(c *gin.Context) {
	cart, err := h.Cart.GetCart(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.Log.Error("get cart failed", zap.Error(err))
		h.respondServiceError(c, err, "Failed to fetch cart")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": cart})
}

// AddToCart is the handler for POST /api/v1/cart/:userId.
func (h *Handlers) AddToCart(c *gin.Context) {
	var input addToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.respondError(c, http.StatusBadRequest, "validation_error", "productId and a positive quantity are required", err)
		return
	}

	mutation, err := h.Cart.AddToCart(c.Request.Context(), c.Param("userId"), input.ProductID, input.Quantity)
	if err != nil {
		h.respondServiceError(c, err, "Failed to add item to cart")
		return
	}
	c.JSON(http.StatusCreated, mutation)
}

// UpdateCartItem is the handler for PUT /api/v1/cart/:userId/items/:itemId.
func (h *Handlers) UpdateCartItem(c *gin.Context) {
	var input updateCartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.respondError(c, http.StatusBadRequest, "validation_error", "quantity must be a non-negative integer", err)
		return
	}

	mutation, err := h.Cart.UpdateCartItem(c.Request.Context(), c.Param("userId"), c.Param("itemId"), *input.Quantity)
	if err != nil {
		h.respondServiceError(c, err, "Failed to update cart item")
		return
	}
	c.JSON(http.StatusOK, mutation)
}

// DeleteCartItem is the handler for DELETE /api/v1/cart/:userId/items/:itemId.
func (h *Handlers) DeleteCartItem(c *gin.Context) {
	mutation, err := h.Cart.RemoveFromCart(c.Request.Context(), c.Param("userId"), c.Param("itemId"))
	if err != nil {
		h.respondServiceError(c, err, "Failed to remove cart item")
		return
	}
	c.JSON(http.StatusOK, mutation)
}

// ClearCart is the handler for DELETE /api/v1/cart/:userId.
func (h *Handlers) ClearCart(c *gin.Context) {
	result, err := h.Cart.ClearCart(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.Log.Error("clear cart failed", zap.Error(err))
		h.respondServiceError(c, err, "Failed to clear cart")
		return
	}
	c.JSON(http.StatusOK, result)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetOrders is a placeholder for the order history endpoint.
func (h *Handlers) GetOrders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Get orders endpoint - coming soon"})
}

// CreateOrder is a placeholder for the checkout endpoint.
func (h *Handlers) CreateOrder(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Create order endpoint - coming soon"})
}

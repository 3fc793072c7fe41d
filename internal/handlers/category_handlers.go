package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetCategories is the handler for GET /api/v1/categories.
func (h *Handlers) GetCategories(c *gin.Context) {
	categories, err := h.Categories.ListCategories(c.Request.Context())
	if err != nil {
		h.Log.Error("list categories failed", zap.Error(err))
		h.respondError(c, http.StatusInternalServerError, "internal_error", "Failed to fetch categories", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": categories})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type chatInput struct {
	Message        string `json:"message" binding:"required,min=1,max=1000"`
	ConversationID string `json:"conversationId"`
}

// ChatAssistant is the handler for POST /api/v1/ai/chat/:userId.
func (h *Handlers) ChatAssistant(c *gin.Context) {
	var input chatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.respondError(c, http.StatusBadRequest, "validation_error", "message is required and must be 1-1000 characters", err)
		return
	}

	result, err := h.Assistant.Chat(c.Request.Context(), c.Param("userId"), input.Message, input.ConversationID)
	if err != nil {
		h.Log.Error("assistant chat failed", zap.Error(err))
		h.respondServiceError(c, err, "Failed to process request")
		return
	}
	c.JSON(http.StatusOK, result)
}

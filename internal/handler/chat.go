package handler

import (
	"net/http"

	"mindlift/internal/logger"
	"mindlift/internal/model"
	"mindlift/internal/service"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	assistant *service.Assistant
	sessions  *service.SessionService
}

func NewChatHandler(assistant *service.Assistant, sessions *service.SessionService) *ChatHandler {
	return &ChatHandler{assistant: assistant, sessions: sessions}
}

// POST /api/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid message format"})
		return
	}

	userID := c.GetString("user_id")
	result, err := h.assistant.Respond(c.Request.Context(), req.Message, req.Conversation)
	if err != nil {
		fail(c, err)
		return
	}
	logger.Info("chat.replied", "uid", userID, "type", result.Type)

	// Persist the exchange when the caller supplied an owned session.
	if req.SessionID != "" {
		if _, err := h.sessions.AppendMessage(req.SessionID, userID, "user", req.Message); err == nil {
			h.sessions.AppendMessage(req.SessionID, userID, "assistant", result.Reply)
		} else {
			logger.Warn("chat.session_append_failed", "uid", userID, "session", req.SessionID, "err", err)
		}
	}

	c.JSON(http.StatusOK, result)
}

package handler

import (
	"net/http"

	"mindlift/internal/model"
	"mindlift/internal/service"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessions *service.SessionService
}

func NewSessionHandler(sessions *service.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// GET /api/chat/sessions
func (h *SessionHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sessions": h.sessions.List(c.GetString("user_id"))})
}

// POST /api/chat/sessions — title is optional, so an empty body is fine.
func (h *SessionHandler) Create(c *gin.Context) {
	var req model.SessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
	}
	session := h.sessions.Create(c.GetString("user_id"), req.Title)
	c.JSON(http.StatusCreated, gin.H{"session": session})
}

// GET /api/chat/sessions/:sessionId
func (h *SessionHandler) Get(c *gin.Context) {
	session := h.sessions.Get(c.Param("sessionId"), c.GetString("user_id"))
	if session == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// PUT /api/chat/sessions/:sessionId
func (h *SessionHandler) Rename(c *gin.Context) {
	var req model.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	session := h.sessions.Rename(c.Param("sessionId"), c.GetString("user_id"), req.Title)
	if session == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// POST /api/chat/sessions/:sessionId/messages
func (h *SessionHandler) AppendMessage(c *gin.Context) {
	var req model.HistoryItem
	if err := c.ShouldBindJSON(&req); err != nil || req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "role and content are required"})
		return
	}

	msg, err := h.sessions.AppendMessage(c.Param("sessionId"), c.GetString("user_id"), req.Role, req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

// DELETE /api/chat/sessions/:sessionId
func (h *SessionHandler) Delete(c *gin.Context) {
	if !h.sessions.Delete(c.Param("sessionId"), c.GetString("user_id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "session deleted"})
}

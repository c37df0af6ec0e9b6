package handler

import (
	"net/http"
	"strconv"

	"mindlift/internal/logger"
	"mindlift/internal/model"
	"mindlift/internal/service"

	"github.com/gin-gonic/gin"
)

type MoodHandler struct {
	mood *service.MoodService
}

func NewMoodHandler(mood *service.MoodService) *MoodHandler {
	return &MoodHandler{mood: mood}
}

// GET /api/mood?limit=&stats=true
func (h *MoodHandler) List(c *gin.Context) {
	userID := c.GetString("user_id")

	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	resp := gin.H{"entries": h.mood.List(userID, limit)}
	if c.Query("stats") == "true" {
		resp["stats"] = h.mood.Stats(userID)
	}
	c.JSON(http.StatusOK, resp)
}

// POST /api/mood
func (h *MoodHandler) Record(c *gin.Context) {
	var req model.MoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mood must be an integer between 1 and 5"})
		return
	}

	userID := c.GetString("user_id")
	entry, err := h.mood.Record(userID, req.Mood, req.Note, req.Date)
	if err != nil {
		fail(c, err)
		return
	}
	logger.Info("mood.recorded", "uid", userID, "mood", entry.Mood, "date", entry.Date)
	c.JSON(http.StatusCreated, gin.H{"entry": entry})
}

// GET /api/mood/stats
func (h *MoodHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"stats": h.mood.Stats(c.GetString("user_id"))})
}

// GET /api/mood/:entryId
func (h *MoodHandler) Get(c *gin.Context) {
	entry := h.mood.Get(c.Param("entryId"), c.GetString("user_id"))
	if entry == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "mood entry not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

// DELETE /api/mood/:entryId
func (h *MoodHandler) Delete(c *gin.Context) {
	if !h.mood.Delete(c.Param("entryId"), c.GetString("user_id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "mood entry not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "mood entry deleted"})
}

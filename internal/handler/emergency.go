package handler

import (
	"net/http"

	"mindlift/internal/logger"
	"mindlift/internal/model"
	"mindlift/internal/service"

	"github.com/gin-gonic/gin"
)

type EmergencyHandler struct {
	emergency *service.EmergencyService
}

func NewEmergencyHandler(emergency *service.EmergencyService) *EmergencyHandler {
	return &EmergencyHandler{emergency: emergency}
}

// GET /api/emergency/contacts?category=|crisis=true
func (h *EmergencyHandler) Contacts(c *gin.Context) {
	switch {
	case c.Query("crisis") == "true":
		c.JSON(http.StatusOK, gin.H{"contacts": h.emergency.CrisisContacts()})
	case c.Query("category") != "":
		c.JSON(http.StatusOK, gin.H{"contacts": h.emergency.ContactsByCategory(c.Query("category"))})
	default:
		c.JSON(http.StatusOK, gin.H{"contacts": h.emergency.Contacts()})
	}
}

// GET /api/emergency/resources?walkIn=true
func (h *EmergencyHandler) Resources(c *gin.Context) {
	if c.Query("walkIn") == "true" {
		c.JSON(http.StatusOK, gin.H{"resources": h.emergency.WalkInResources()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"resources": h.emergency.Resources()})
}

// GET /api/emergency/stats
func (h *EmergencyHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"stats": h.emergency.Stats()})
}

// GET /api/emergency/log
func (h *EmergencyHandler) Logs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"logs": h.emergency.UserLogs(c.GetString("user_id"))})
}

// POST /api/emergency/log
func (h *EmergencyHandler) LogContact(c *gin.Context) {
	var req model.EmergencyLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "contact id and type are required"})
		return
	}

	userID := c.GetString("user_id")
	log, err := h.emergency.LogContact(userID, req.ContactID, req.ContactType)
	if err != nil {
		fail(c, err)
		return
	}
	logger.Info("emergency.contact_logged", "uid", userID, "contact", log.ContactID, "type", log.ContactType)
	c.JSON(http.StatusCreated, gin.H{"log": log})
}

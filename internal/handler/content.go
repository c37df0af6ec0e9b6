package handler

import (
	"net/http"

	"mindlift/internal/model"
	"mindlift/internal/service"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	content *service.ContentService
}

func NewContentHandler(content *service.ContentService) *ContentHandler {
	return &ContentHandler{content: content}
}

// GET /api/content?category=|featured=true|search=|categories=true
func (h *ContentHandler) List(c *gin.Context) {
	switch {
	case c.Query("categories") == "true":
		c.JSON(http.StatusOK, gin.H{"categories": h.content.Categories()})
	case c.Query("search") != "":
		c.JSON(http.StatusOK, gin.H{"articles": h.content.Search(c.Query("search"))})
	case c.Query("featured") == "true":
		c.JSON(http.StatusOK, gin.H{"articles": h.content.Featured()})
	case c.Query("category") != "":
		c.JSON(http.StatusOK, gin.H{"articles": h.content.ByCategory(c.Query("category"))})
	default:
		c.JSON(http.StatusOK, gin.H{"articles": h.content.All()})
	}
}

// GET /api/content/:articleId
func (h *ContentHandler) Get(c *gin.Context) {
	article := h.content.ByID(c.Param("articleId"))
	if article == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}

// GET /api/content/progress?articleId=|type=bookmarks|type=completed
func (h *ContentHandler) GetProgress(c *gin.Context) {
	userID := c.GetString("user_id")

	if articleID := c.Query("articleId"); articleID != "" {
		c.JSON(http.StatusOK, gin.H{"progress": h.content.Progress(userID, articleID)})
		return
	}
	switch c.Query("type") {
	case "bookmarks":
		c.JSON(http.StatusOK, gin.H{"bookmarks": h.content.Bookmarks(userID)})
	case "completed":
		c.JSON(http.StatusOK, gin.H{"completed": h.content.Completed(userID)})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "articleId or type=bookmarks|completed is required"})
	}
}

// POST /api/content/progress
func (h *ContentHandler) UpdateProgress(c *gin.Context) {
	var req model.ProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.ArticleID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "article id is required"})
		return
	}

	progress := h.content.UpsertProgress(c.GetString("user_id"), req.ArticleID, req.Completed, req.Bookmarked, req.ReadingProgress)
	c.JSON(http.StatusOK, gin.H{"progress": progress})
}

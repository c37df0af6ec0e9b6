package handler

import (
	"errors"
	"net/http"

	"mindlift/internal/apperr"
	"mindlift/internal/logger"

	"github.com/gin-gonic/gin"
)

// fail maps a service error onto the HTTP status taxonomy. Unclassified
// errors are logged server-side and surface as a generic 500.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": errMessage(err)})
	case errors.Is(err, apperr.ErrAuth):
		c.JSON(http.StatusUnauthorized, gin.H{"error": errMessage(err)})
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": errMessage(err)})
	case errors.Is(err, apperr.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": errMessage(err)})
	case errors.Is(err, apperr.ErrUpstream):
		logger.Error("upstream failure", "path", c.FullPath(), "err", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "assistant temporarily unavailable"})
	default:
		logger.Error("internal error", "path", c.FullPath(), "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func errMessage(err error) string {
	return err.Error()
}

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"studyshare-backend/common"

	"github.com/gin-gonic/gin"
)

// respondError maps a service/repository error onto the HTTP error
// taxonomy and writes the JSON error body. Internal failures are
// logged and surfaced as a generic message.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrMissingCredential), errors.Is(err, common.ErrInvalidCredential):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, common.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, common.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, common.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		slog.Error("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
	}
}

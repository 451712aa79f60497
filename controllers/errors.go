package controllers

import (
	"errors"
	"net/http"

	"github.com/Varun6712/smart-calories/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service errors to responses. Storage and other internal
// errors are logged in full but answered with msg only.
func respondError(c *gin.Context, logger *zap.Logger, err error, msg string) {
	_ = c.Error(err)
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrUpstream), errors.Is(err, services.ErrMalformedEstimation):
		logger.Warn("estimation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "estimation failed", "detail": err.Error()})
	default:
		logger.Error(msg, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}

func estimationOutcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, services.ErrValidation):
		return "validation"
	case errors.Is(err, services.ErrMalformedEstimation):
		return "malformed"
	case errors.Is(err, services.ErrUpstream):
		return "upstream"
	default:
		return "error"
	}
}

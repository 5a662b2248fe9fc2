package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/karkhana/factory_ledger_app/internal/apperrors"
	"github.com/karkhana/factory_ledger_app/internal/middleware"
)

// requestLogger returns the request-scoped logger for a handler.
func requestLogger(c *gin.Context) *slog.Logger {
	return middleware.GetLoggerFromContext(c)
}

// callerID returns the audit identity for the request.
func callerID(c *gin.Context) string {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		return middleware.DefaultUserID
	}
	return userID
}

// respondError maps service errors onto HTTP statuses. Typed accounting
// errors wrap the generic sentinels, so errors.Is covers both.
func respondError(c *gin.Context, logger *slog.Logger, err error, msg string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		logger.Warn(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}

// parseDateQuery reads a YYYY-MM-DD query parameter, using fallback when the
// parameter is absent. The second return is false when the value is invalid.
func parseDateQuery(c *gin.Context, name string, fallback time.Time) (time.Time, bool) {
	raw := c.DefaultQuery(name, fallback.Format("2006-01-02"))
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " format. Use YYYY-MM-DD"})
		return time.Time{}, false
	}
	return parsed, true
}

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/contractor_marketplace/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// statusForError maps a service error to the HTTP status and the message shown to the caller.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden, "Forbidden"
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		return http.StatusBadRequest, "Insufficient funds"
	case errors.Is(err, apperrors.ErrInvalidAmount):
		return http.StatusBadRequest, "Amount must be a positive value with at most two decimals"
	case errors.Is(err, apperrors.ErrDepositCapExceeded):
		return http.StatusBadRequest, apperrors.ErrDepositCapExceeded.Error()
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// respondError writes the mapped status with an {"error": ...} body.
// Client errors are logged at warn, everything else at error.
func respondError(c *gin.Context, logger *slog.Logger, err error, logMsg string) {
	status, msg := statusForError(err)
	if status >= http.StatusInternalServerError {
		logger.Error(logMsg, slog.String("error", err.Error()))
	} else {
		logger.Warn(logMsg, slog.String("error", err.Error()), slog.Int("status", status))
	}
	c.JSON(status, gin.H{"error": msg})
}

package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/SscSPs/contractor_marketplace/internal/apperrors"
	portssvc "github.com/SscSPs/contractor_marketplace/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// ProfileIDHeader carries the caller's profile id.
const ProfileIDHeader = "profile_id"

// ProfileAuth creates a Gin middleware handler that resolves the caller profile
// from the profile_id header. Requests without a known profile get 401.
func ProfileAuth(profiles portssvc.ProfileReaderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		raw := strings.TrimSpace(c.GetHeader(ProfileIDHeader))
		if raw == "" {
			logger.Warn("profile_id header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "profile_id header required"})
			return
		}

		profileID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || profileID <= 0 {
			logger.Warn("profile_id header malformed", slog.String("header", raw))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "profile_id header must be a positive integer"})
			return
		}

		profile, err := profiles.GetProfile(c.Request.Context(), profileID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				logger.Warn("Unknown profile", slog.Int64("profile_id", profileID))
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown profile"})
				return
			}
			logger.Error("Failed to resolve profile", slog.Int64("profile_id", profileID), slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve profile"})
			return
		}

		// Add profile id to the logger
		enrichedLogger := logger.With(slog.Int64("profile_id", profile.ID))
		c.Set(string(loggerKey), enrichedLogger)
		c.Request = c.Request.WithContext(WithLogger(c.Request.Context(), enrichedLogger))
		setProfile(c, profile)

		c.Next()
	}
}

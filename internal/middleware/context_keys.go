package middleware

import (
	"context"

	"github.com/SscSPs/contractor_marketplace/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// profileKey is the key used to store the resolved caller profile.
const profileKey = contextKey("profile")

// setProfile stores the caller profile in both the gin and the request context.
func setProfile(c *gin.Context, profile *domain.Profile) {
	c.Set(string(profileKey), profile)
	c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), profileKey, profile))
}

// GetProfileFromContext retrieves the caller profile resolved by ProfileAuth.
// It returns the profile and a boolean indicating if it was found.
func GetProfileFromContext(c *gin.Context) (*domain.Profile, bool) {
	profileVal, exists := c.Get(string(profileKey))
	if !exists {
		// check in the request context as well
		profile, ok := c.Request.Context().Value(profileKey).(*domain.Profile)
		return profile, ok && profile != nil
	}

	profile, ok := profileVal.(*domain.Profile)
	if !ok || profile == nil {
		return nil, false
	}
	return profile, true
}

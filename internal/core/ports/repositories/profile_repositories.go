package repositories

import (
	"context"

	"github.com/SscSPs/contractor_marketplace/internal/core/domain"
)

// ProfileReader defines read operations for profile data
type ProfileReader interface {
	// FindProfileByID retrieves a profile, or apperrors.ErrNotFound.
	FindProfileByID(ctx context.Context, profileID int64) (*domain.Profile, error)
}

// ProfileRepositoryFacade combines all profile-related repository interfaces
type ProfileRepositoryFacade interface {
	ProfileReader
}

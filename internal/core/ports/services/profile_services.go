package services

import (
	"context"

	"github.com/SscSPs/contractor_marketplace/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProfileReaderSvc resolves profiles by id.
type ProfileReaderSvc interface {
	// GetProfile retrieves a profile, or apperrors.ErrNotFound.
	GetProfile(ctx context.Context, profileID int64) (*domain.Profile, error)
}

// BalanceSvc applies capped deposits to profile balances.
type BalanceSvc interface {
	// Deposit adds amount to the profile balance when it does not exceed a quarter of the
	// client's unpaid in-progress work.
	Deposit(ctx context.Context, profileID int64, amount decimal.Decimal) (*domain.Profile, error)
}

// ProfileSvcFacade combines all profile-related service interfaces
type ProfileSvcFacade interface {
	ProfileReaderSvc
	BalanceSvc
}

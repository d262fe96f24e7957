package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/contractor_marketplace/internal/apperrors"
	"github.com/SscSPs/contractor_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/contractor_marketplace/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/contractor_marketplace/internal/core/ports/services"
	"github.com/SscSPs/contractor_marketplace/internal/platform/metrics"
	"github.com/shopspring/decimal"
)

// profileService resolves profiles and guards deposits.
type profileService struct {
	BaseService
	profileRepo       portsrepo.ProfileReader
	uow               portsrepo.UnitOfWork
	depositClientOnly bool
	now               func() time.Time
}

// ProfileServiceOption is a functional option for configuring the profile service
type ProfileServiceOption func(*profileService)

// WithDepositClientsOnly rejects deposits to non-client profiles with ErrForbidden.
func WithDepositClientsOnly(enabled bool) ProfileServiceOption {
	return func(s *profileService) {
		s.depositClientOnly = enabled
	}
}

// WithProfileClock overrides the clock used for balance timestamps.
func WithProfileClock(now func() time.Time) ProfileServiceOption {
	return func(s *profileService) {
		s.now = now
	}
}

// NewProfileService creates a new profile service with the provided options
func NewProfileService(profileRepo portsrepo.ProfileReader, uow portsrepo.UnitOfWork, options ...ProfileServiceOption) portssvc.ProfileSvcFacade {
	svc := &profileService{
		profileRepo: profileRepo,
		uow:         uow,
		now:         time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.ProfileSvcFacade = (*profileService)(nil)

// GetProfile retrieves a profile by id.
func (s *profileService) GetProfile(ctx context.Context, profileID int64) (*domain.Profile, error) {
	profile, err := s.profileRepo.FindProfileByID(ctx, profileID)
	if err != nil {
		if isBusinessError(err) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to get profile", slog.Int64("profile_id", profileID))
		return nil, fmt.Errorf("failed to get profile %d: %w", profileID, err)
	}
	return profile, nil
}

// Deposit credits amount to the profile when it does not exceed a quarter of the
// unpaid in-progress work the profile owes as a client. Nothing changes on rejection.
func (s *profileService) Deposit(ctx context.Context, profileID int64, amount decimal.Decimal) (*domain.Profile, error) {
	if !amount.IsPositive() {
		metrics.RecordDeposit(apperrors.ErrInvalidAmount, 0)
		return nil, fmt.Errorf("deposit amount must be positive: %w", apperrors.ErrInvalidAmount)
	}
	// Range first: both checks must run before any arithmetic rescales the amount.
	if !domain.WithinMoneyRange(amount) {
		metrics.RecordDeposit(apperrors.ErrInvalidAmount, 0)
		return nil, fmt.Errorf("deposit amount exceeds %d integer digits: %w", domain.MaxIntegerDigits, apperrors.ErrInvalidAmount)
	}
	if !domain.HasMoneyScale(amount) {
		metrics.RecordDeposit(apperrors.ErrInvalidAmount, 0)
		return nil, fmt.Errorf("deposit amount has more than %d fraction digits: %w", domain.MoneyScale, apperrors.ErrInvalidAmount)
	}

	var updated *domain.Profile
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx portsrepo.LedgerTx) error {
		profiles, err := tx.LockProfiles(ctx, profileID)
		if err != nil {
			return err
		}
		profile, ok := profiles[profileID]
		if !ok {
			return fmt.Errorf("profile %d: %w", profileID, apperrors.ErrNotFound)
		}
		if s.depositClientOnly && !profile.IsClient() {
			return fmt.Errorf("profile %d is a %s: %w", profileID, profile.Type, apperrors.ErrForbidden)
		}

		totalUnpaid, err := tx.SumUnpaidInProgressPriceForClient(ctx, profileID)
		if err != nil {
			return err
		}
		limit := domain.DepositCap(totalUnpaid)
		if amount.GreaterThan(limit) {
			return fmt.Errorf("deposit above limit %s: %w", limit.StringFixed(domain.MoneyScale), apperrors.ErrDepositCapExceeded)
		}

		updated, err = tx.CreditProfile(ctx, profileID, amount, s.now().UTC())
		return err
	})

	metrics.RecordDeposit(err, amount.InexactFloat64())

	if err != nil {
		if isBusinessError(err) {
			s.LogWarn(ctx, "Deposit rejected", slog.Int64("profile_id", profileID), slog.String("reason", err.Error()))
			return nil, err
		}
		s.LogError(ctx, err, "Deposit failed", slog.Int64("profile_id", profileID))
		return nil, fmt.Errorf("failed to deposit to profile %d: %w", profileID, err)
	}

	s.LogInfo(ctx, "Deposit applied",
		slog.Int64("profile_id", profileID),
		slog.String("amount", amount.StringFixed(domain.MoneyScale)))
	return updated, nil
}

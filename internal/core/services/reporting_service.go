package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/contractor_marketplace/internal/apperrors"
	"github.com/SscSPs/contractor_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/contractor_marketplace/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/contractor_marketplace/internal/core/ports/services"
)

const (
	DefaultBestClientsLimit = 2
	MaxBestClientsLimit     = 100
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	defaultLimit  int
	maxLimit      int
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithBestClientsLimits sets the default and maximum row counts for BestClients.
func WithBestClientsLimits(defaultLimit, maxLimit int) ReportingServiceOption {
	return func(s *reportingService) {
		if defaultLimit > 0 {
			s.defaultLimit = defaultLimit
		}
		if maxLimit > 0 {
			s.maxLimit = maxLimit
		}
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repo portsrepo.ReportingRepository, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		reportingRepo: repo,
		defaultLimit:  DefaultBestClientsLimit,
		maxLimit:      MaxBestClientsLimit,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// BestProfession returns the contractor profession with the highest paid total in [start, end].
// Equal totals go to the alphabetically first profession.
func (s *reportingService) BestProfession(ctx context.Context, start, end time.Time) (*domain.ProfessionEarnings, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}

	rows, err := s.reportingRepo.SumPaidByContractorProfession(ctx, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate earnings by profession",
			slog.String("start", start.Format(time.RFC3339)),
			slog.String("end", end.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to aggregate earnings by profession: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	best := rows[0]
	for _, row := range rows[1:] {
		if row.Total.GreaterThan(best.Total) || (row.Total.Equal(best.Total) && row.Profession < best.Profession) {
			best = row
		}
	}

	s.LogInfo(ctx, "Best profession report generated",
		slog.String("profession", best.Profession),
		slog.Int("group_count", len(rows)))
	return &best, nil
}

// BestClients returns up to limit clients ordered by total paid in [start, end], highest first.
// Equal totals are ordered by profile id.
func (s *reportingService) BestClients(ctx context.Context, start, end time.Time, limit int) ([]domain.ClientPayment, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}
	if limit == 0 {
		limit = s.defaultLimit
	}
	if limit < 0 || limit > s.maxLimit {
		return nil, fmt.Errorf("limit must be between 1 and %d: %w", s.maxLimit, apperrors.ErrValidation)
	}

	rows, err := s.reportingRepo.SumPaidByClient(ctx, start, end, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate payments by client",
			slog.String("start", start.Format(time.RFC3339)),
			slog.String("end", end.Format(time.RFC3339)),
			slog.Int("limit", limit))
		return nil, fmt.Errorf("failed to aggregate payments by client: %w", err)
	}

	ranked := make([]domain.ClientPayment, len(rows))
	copy(ranked, rows)
	sort.SliceStable(ranked, func(i, j int) bool {
		if !ranked[i].TotalPaid.Equal(ranked[j].TotalPaid) {
			return ranked[i].TotalPaid.GreaterThan(ranked[j].TotalPaid)
		}
		return ranked[i].ProfileID < ranked[j].ProfileID
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	s.LogInfo(ctx, "Best clients report generated", slog.Int("row_count", len(ranked)))
	return ranked, nil
}

func validateRange(start, end time.Time) error {
	if start.After(end) {
		return fmt.Errorf("start %s is after end %s: %w", start.Format(time.RFC3339), end.Format(time.RFC3339), apperrors.ErrValidation)
	}
	return nil
}

package services

import (
	"context"
	"errors"
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

// jobService lists outstanding jobs and executes job payments.
type jobService struct {
	BaseService
	jobRepo portsrepo.JobReader
	uow     portsrepo.UnitOfWork
	now     func() time.Time
}

// JobServiceOption is a functional option for configuring the job service
type JobServiceOption func(*jobService)

// WithJobClock overrides the clock used for payment dates.
func WithJobClock(now func() time.Time) JobServiceOption {
	return func(s *jobService) {
		s.now = now
	}
}

// NewJobService creates a new job service with the provided options
func NewJobService(jobRepo portsrepo.JobReader, uow portsrepo.UnitOfWork, options ...JobServiceOption) portssvc.JobSvcFacade {
	svc := &jobService{
		jobRepo: jobRepo,
		uow:     uow,
		now:     time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.JobSvcFacade = (*jobService)(nil)

// ListUnpaidJobs returns unpaid jobs on the caller's in-progress contracts.
func (s *jobService) ListUnpaidJobs(ctx context.Context, callerID int64) ([]domain.JobWithContract, error) {
	jobs, err := s.jobRepo.ListUnpaidJobsInProgressForParty(ctx, callerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list unpaid jobs", slog.Int64("profile_id", callerID))
		return nil, fmt.Errorf("failed to list unpaid jobs: %w", err)
	}
	return visibleOutstandingJobs(callerID, jobs), nil
}

// PayForJob moves the job price from the contract client to the contractor and marks the job paid.
// The balance check and the three mutations run in one unit of work, so two payments
// drawing on the same client cannot both pass the check.
func (s *jobService) PayForJob(ctx context.Context, callerID, jobID int64) (*domain.Job, error) {
	var (
		paidJob *domain.Job
		price   decimal.Decimal
	)

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx portsrepo.LedgerTx) error {
		job, err := tx.LockJobWithContract(ctx, jobID)
		if err != nil {
			return err
		}
		if job.Paid {
			return fmt.Errorf("job %d is already paid: %w", jobID, apperrors.ErrNotFound)
		}
		if err := authorizePayment(callerID, job.Contract); err != nil {
			return err
		}

		clientID, contractorID := job.Contract.ClientID, job.Contract.ContractorID
		profiles, err := tx.LockProfiles(ctx, clientID, contractorID)
		if err != nil {
			return err
		}
		client, ok := profiles[clientID]
		if !ok {
			return fmt.Errorf("client profile %d: %w", clientID, apperrors.ErrNotFound)
		}
		if _, ok := profiles[contractorID]; !ok {
			return fmt.Errorf("contractor profile %d: %w", contractorID, apperrors.ErrNotFound)
		}

		price = job.Price
		if client.Balance.LessThan(price) {
			return fmt.Errorf("balance %s is below job price %s: %w", client.Balance.StringFixed(domain.MoneyScale), price.StringFixed(domain.MoneyScale), apperrors.ErrInsufficientFunds)
		}

		now := s.now().UTC()
		if _, err := tx.DebitProfile(ctx, clientID, price, now); err != nil {
			return err
		}
		if _, err := tx.CreditProfile(ctx, contractorID, price, now); err != nil {
			return err
		}
		paidJob, err = tx.MarkJobPaid(ctx, jobID, now)
		return err
	})

	metrics.RecordJobPayment(err, price.InexactFloat64())

	if err != nil {
		attrs := []any{slog.Int64("profile_id", callerID), slog.Int64("job_id", jobID)}
		if isBusinessError(err) {
			s.LogWarn(ctx, "Job payment rejected", append(attrs, slog.String("reason", err.Error()))...)
			return nil, err
		}
		s.LogError(ctx, err, "Job payment failed", attrs...)
		return nil, fmt.Errorf("failed to pay for job %d: %w", jobID, err)
	}

	s.LogInfo(ctx, "Job paid",
		slog.Int64("profile_id", callerID),
		slog.Int64("job_id", jobID),
		slog.String("price", price.StringFixed(domain.MoneyScale)))
	return paidJob, nil
}

// isBusinessError tells rejected operations apart from store failures.
func isBusinessError(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound) ||
		errors.Is(err, apperrors.ErrForbidden) ||
		errors.Is(err, apperrors.ErrInsufficientFunds) ||
		errors.Is(err, apperrors.ErrInvalidAmount) ||
		errors.Is(err, apperrors.ErrDepositCapExceeded) ||
		errors.Is(err, apperrors.ErrValidation)
}

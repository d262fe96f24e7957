package repositories

import (
	"context"

	"github.com/SscSPs/contractor_marketplace/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JobReader defines read operations for jobs.
// Reads here take no locks. Payment and deposit use the LedgerTx variants of
// FindJobWithContract and SumUnpaidInProgressPriceForClient inside WithinTx.
type JobReader interface {
	// FindJobWithContract retrieves a job with its owning contract, or apperrors.ErrNotFound.
	FindJobWithContract(ctx context.Context, jobID int64) (*domain.JobWithContract, error)

	// ListUnpaidJobsInProgressForParty lists unpaid jobs on in-progress contracts the profile belongs to.
	ListUnpaidJobsInProgressForParty(ctx context.Context, profileID int64) ([]domain.JobWithContract, error)

	// SumUnpaidInProgressPriceForClient sums unpaid job prices on the client's in-progress contracts.
	SumUnpaidInProgressPriceForClient(ctx context.Context, clientID int64) (decimal.Decimal, error)
}

// JobRepositoryFacade combines all job-related repository interfaces
type JobRepositoryFacade interface {
	JobReader
}

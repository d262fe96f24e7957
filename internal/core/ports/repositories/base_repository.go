package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/contractor_marketplace/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UnitOfWork runs a read-check-write sequence as one serialized unit.
type UnitOfWork interface {
	// WithinTx calls fn inside a single transaction. Any error returned by fn
	// rolls back every mutation made through the LedgerTx.
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx LedgerTx) error) error
}

// LedgerTx is the set of locked reads and balance mutations available inside a unit of work.
type LedgerTx interface {
	// LockJobWithContract fetches a job and its contract and locks the job row.
	LockJobWithContract(ctx context.Context, jobID int64) (*domain.JobWithContract, error)

	// LockProfiles locks the given profiles in ascending id order and returns them keyed by id.
	// Missing ids are simply absent from the result.
	LockProfiles(ctx context.Context, profileIDs ...int64) (map[int64]domain.Profile, error)

	// SumUnpaidInProgressPriceForClient sums unpaid job prices on the client's in-progress contracts.
	SumUnpaidInProgressPriceForClient(ctx context.Context, clientID int64) (decimal.Decimal, error)

	// DebitProfile subtracts amount only when the balance covers it, otherwise
	// it fails with apperrors.ErrInsufficientFunds.
	DebitProfile(ctx context.Context, profileID int64, amount decimal.Decimal, now time.Time) (*domain.Profile, error)

	// CreditProfile adds amount to the balance.
	CreditProfile(ctx context.Context, profileID int64, amount decimal.Decimal, now time.Time) (*domain.Profile, error)

	// MarkJobPaid sets paid and the payment date on a job that is still unpaid.
	// An already paid job yields apperrors.ErrNotFound.
	MarkJobPaid(ctx context.Context, jobID int64, paidAt time.Time) (*domain.Job, error)
}

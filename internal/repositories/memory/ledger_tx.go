package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/contractor_marketplace/internal/apperrors"
	"github.com/SscSPs/contractor_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/contractor_marketplace/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// ledgerTx runs with the store lock already held by WithinTx.
type ledgerTx struct {
	store *Store
}

var _ portsrepo.LedgerTx = (*ledgerTx)(nil)

func (t *ledgerTx) LockJobWithContract(_ context.Context, jobID int64) (*domain.JobWithContract, error) {
	return t.store.jobWithContract(jobID)
}

func (t *ledgerTx) LockProfiles(_ context.Context, profileIDs ...int64) (map[int64]domain.Profile, error) {
	ids := append([]int64(nil), profileIDs...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make(map[int64]domain.Profile, len(ids))
	for _, id := range ids {
		if p, ok := t.store.profiles[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (t *ledgerTx) SumUnpaidInProgressPriceForClient(_ context.Context, clientID int64) (decimal.Decimal, error) {
	return t.store.sumUnpaidInProgress(clientID), nil
}

func (t *ledgerTx) DebitProfile(_ context.Context, profileID int64, amount decimal.Decimal, now time.Time) (*domain.Profile, error) {
	p, ok := t.store.profiles[profileID]
	if !ok {
		return nil, fmt.Errorf("profile %d: %w", profileID, apperrors.ErrNotFound)
	}
	if p.Balance.LessThan(amount) {
		return nil, fmt.Errorf("debit %s from profile %d: %w", amount.StringFixed(domain.MoneyScale), profileID, apperrors.ErrInsufficientFunds)
	}
	p.Balance = p.Balance.Sub(amount)
	p.UpdatedAt = now
	t.store.profiles[profileID] = p
	return &p, nil
}

func (t *ledgerTx) CreditProfile(_ context.Context, profileID int64, amount decimal.Decimal, now time.Time) (*domain.Profile, error) {
	p, ok := t.store.profiles[profileID]
	if !ok {
		return nil, fmt.Errorf("profile %d: %w", profileID, apperrors.ErrNotFound)
	}
	p.Balance = p.Balance.Add(amount)
	p.UpdatedAt = now
	t.store.profiles[profileID] = p
	return &p, nil
}

func (t *ledgerTx) MarkJobPaid(_ context.Context, jobID int64, paidAt time.Time) (*domain.Job, error) {
	j, ok := t.store.jobs[jobID]
	if !ok || j.Paid {
		return nil, fmt.Errorf("unpaid job %d: %w", jobID, apperrors.ErrNotFound)
	}
	j.Paid = true
	j.PaymentDate = &paidAt
	j.UpdatedAt = paidAt
	t.store.jobs[jobID] = j
	out := cloneJob(j)
	return &out, nil
}

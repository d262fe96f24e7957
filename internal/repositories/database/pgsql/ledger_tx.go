package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/contractor_marketplace/internal/apperrors"
	"github.com/SscSPs/contractor_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/contractor_marketplace/internal/core/ports/repositories"
	"github.com/SscSPs/contractor_marketplace/internal/models"
	"github.com/SscSPs/contractor_marketplace/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// PgxUnitOfWork runs ledger operations inside a pgx transaction.
type PgxUnitOfWork struct {
	BaseRepository
}

func newPgxUnitOfWork(pool pgxPool) *PgxUnitOfWork {
	return &PgxUnitOfWork{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UnitOfWork = (*PgxUnitOfWork)(nil)

// WithinTx commits when fn succeeds and rolls back otherwise.
func (u *PgxUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, tx portsrepo.LedgerTx) error) (err error) {
	tx, err := u.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rbErr := u.Rollback(ctx, tx); rbErr != nil {
				err = errors.Join(err, rbErr)
			}
		}
	}()

	if err = fn(ctx, &pgxLedgerTx{tx: tx}); err != nil {
		return err
	}
	return u.Commit(ctx, tx)
}

// pgxLedgerTx implements LedgerTx on an open transaction.
type pgxLedgerTx struct {
	tx pgx.Tx
}

var _ portsrepo.LedgerTx = (*pgxLedgerTx)(nil)

func (t *pgxLedgerTx) LockJobWithContract(ctx context.Context, jobID int64) (*domain.JobWithContract, error) {
	return findJobWithContract(ctx, t.tx, jobID, true)
}

// LockProfiles takes row locks in id order so concurrent transfers cannot deadlock.
func (t *pgxLedgerTx) LockProfiles(ctx context.Context, profileIDs ...int64) (map[int64]domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = ANY($1) ORDER BY id FOR UPDATE`

	rows, err := t.tx.Query(ctx, query, profileIDs)
	if err != nil {
		return nil, apperrors.StoreFailure("failed to lock profiles", err)
	}
	defer rows.Close()

	profiles := make(map[int64]domain.Profile, len(profileIDs))
	for rows.Next() {
		m, err := scanProfile(rows)
		if err != nil {
			return nil, apperrors.StoreFailure("failed to scan locked profile row", err)
		}
		profiles[m.ID] = mapping.ToDomainProfile(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.StoreFailure("failed iterating locked profile rows", err)
	}
	return profiles, nil
}

func (t *pgxLedgerTx) SumUnpaidInProgressPriceForClient(ctx context.Context, clientID int64) (decimal.Decimal, error) {
	return sumUnpaidInProgressPriceForClient(ctx, t.tx, clientID)
}

// DebitProfile only matches rows whose balance covers amount.
func (t *pgxLedgerTx) DebitProfile(ctx context.Context, profileID int64, amount decimal.Decimal, now time.Time) (*domain.Profile, error) {
	query := `
		UPDATE profiles
		SET balance = balance - $2, updated_at = $3
		WHERE id = $1 AND balance >= $2
		RETURNING ` + profileColumns

	m, err := scanProfile(t.tx.QueryRow(ctx, query, profileID, amount, now))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isCheckViolation(err, "") {
			return nil, fmt.Errorf("debit %s from profile %d: %w", amount.StringFixed(domain.MoneyScale), profileID, apperrors.ErrInsufficientFunds)
		}
		return nil, apperrors.StoreFailure("failed to debit profile", err)
	}
	profile := mapping.ToDomainProfile(m)
	return &profile, nil
}

func (t *pgxLedgerTx) CreditProfile(ctx context.Context, profileID int64, amount decimal.Decimal, now time.Time) (*domain.Profile, error) {
	query := `
		UPDATE profiles
		SET balance = balance + $2, updated_at = $3
		WHERE id = $1
		RETURNING ` + profileColumns

	m, err := scanProfile(t.tx.QueryRow(ctx, query, profileID, amount, now))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("profile %d: %w", profileID, apperrors.ErrNotFound)
		}
		return nil, apperrors.StoreFailure("failed to credit profile", err)
	}
	profile := mapping.ToDomainProfile(m)
	return &profile, nil
}

// MarkJobPaid only matches jobs that are still unpaid.
func (t *pgxLedgerTx) MarkJobPaid(ctx context.Context, jobID int64, paidAt time.Time) (*domain.Job, error) {
	query := `
		UPDATE jobs j
		SET paid = TRUE, payment_date = $2, updated_at = $2
		WHERE j.id = $1 AND NOT j.paid
		RETURNING ` + jobColumns

	var m models.Job
	if err := t.tx.QueryRow(ctx, query, jobID, paidAt).Scan(jobScanTargets(&m)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("unpaid job %d: %w", jobID, apperrors.ErrNotFound)
		}
		return nil, apperrors.StoreFailure("failed to mark job paid", err)
	}
	job := mapping.ToDomainJob(m)
	return &job, nil
}

package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/contractor_marketplace/internal/apperrors"
	"github.com/SscSPs/contractor_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/contractor_marketplace/internal/core/ports/repositories"
	"github.com/SscSPs/contractor_marketplace/internal/models"
	"github.com/SscSPs/contractor_marketplace/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const jobColumns = `j.id, j.contract_id, j.description, j.price, j.paid, j.payment_date, j.created_at, j.updated_at`

type PgxJobRepository struct {
	BaseRepository
}

// newPgxJobRepository creates a new repository for job data.
func newPgxJobRepository(pool *pgxpool.Pool) *PgxJobRepository {
	return &PgxJobRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JobRepositoryFacade = (*PgxJobRepository)(nil)

func jobScanTargets(m *models.Job) []any {
	return []any{&m.ID, &m.ContractID, &m.Description, &m.Price, &m.Paid, &m.PaymentDate, &m.CreatedAt, &m.UpdatedAt}
}

func scanJobWithContract(row rowScanner) (domain.JobWithContract, error) {
	var (
		j models.Job
		c models.Contract
	)
	targets := append(jobScanTargets(&j), contractScanTargets(&c)...)
	if err := row.Scan(targets...); err != nil {
		return domain.JobWithContract{}, err
	}
	return mapping.ToDomainJobWithContract(j, c), nil
}

func findJobWithContract(ctx context.Context, q dbtx, jobID int64, forUpdate bool) (*domain.JobWithContract, error) {
	query := `
		SELECT ` + jobColumns + `, ` + contractColumns + `
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		WHERE j.id = $1`
	if forUpdate {
		query += ` FOR UPDATE OF j`
	}

	job, err := scanJobWithContract(q.QueryRow(ctx, query, jobID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("job %d: %w", jobID, apperrors.ErrNotFound)
		}
		return nil, apperrors.StoreFailure("failed to find job", err)
	}
	return &job, nil
}

func sumUnpaidInProgressPriceForClient(ctx context.Context, q dbtx, clientID int64) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(j.price), 0)
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		WHERE c.client_id = $1 AND c.status = $2 AND NOT j.paid`

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, clientID, string(models.ContractInProgress)).Scan(&total); err != nil {
		return decimal.Zero, apperrors.StoreFailure("failed to sum unpaid jobs", err)
	}
	return total, nil
}

// FindJobWithContract retrieves a job together with its contract.
func (r *PgxJobRepository) FindJobWithContract(ctx context.Context, jobID int64) (*domain.JobWithContract, error) {
	return findJobWithContract(ctx, r.Pool, jobID, false)
}

// ListUnpaidJobsInProgressForParty lists unpaid jobs on in-progress contracts of a profile ordered by id.
func (r *PgxJobRepository) ListUnpaidJobsInProgressForParty(ctx context.Context, profileID int64) ([]domain.JobWithContract, error) {
	query := `
		SELECT ` + jobColumns + `, ` + contractColumns + `
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		WHERE (c.client_id = $1 OR c.contractor_id = $1)
		  AND c.status = $2
		  AND NOT j.paid
		ORDER BY j.id`

	rows, err := r.Pool.Query(ctx, query, profileID, string(models.ContractInProgress))
	if err != nil {
		return nil, apperrors.StoreFailure("failed to list unpaid jobs", err)
	}
	defer rows.Close()

	var jobs []domain.JobWithContract
	for rows.Next() {
		job, err := scanJobWithContract(rows)
		if err != nil {
			return nil, apperrors.StoreFailure("failed to scan job row", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.StoreFailure("failed iterating job rows", err)
	}
	return jobs, nil
}

// SumUnpaidInProgressPriceForClient sums unpaid job prices on the client's in-progress contracts.
func (r *PgxJobRepository) SumUnpaidInProgressPriceForClient(ctx context.Context, clientID int64) (decimal.Decimal, error) {
	return sumUnpaidInProgressPriceForClient(ctx, r.Pool, clientID)
}

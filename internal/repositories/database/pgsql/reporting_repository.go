package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/contractor_marketplace/internal/apperrors"
	"github.com/SscSPs/contractor_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/contractor_marketplace/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// SumPaidByContractorProfession sums paid job prices per contractor profession.
func (r *reportingRepository) SumPaidByContractorProfession(ctx context.Context, start, end time.Time) ([]domain.ProfessionEarnings, error) {
	query := `
		SELECT p.profession, SUM(j.price) AS total
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		JOIN profiles p ON p.id = c.contractor_id
		WHERE j.paid AND j.payment_date BETWEEN $1 AND $2
		GROUP BY p.profession
		ORDER BY total DESC, p.profession ASC`

	rows, err := r.Pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, apperrors.StoreFailure("failed to aggregate earnings by profession", err)
	}
	defer rows.Close()

	var result []domain.ProfessionEarnings
	for rows.Next() {
		var (
			profession string
			total      decimal.Decimal
		)
		if err := rows.Scan(&profession, &total); err != nil {
			return nil, apperrors.StoreFailure("failed to scan profession earnings row", err)
		}
		result = append(result, domain.ProfessionEarnings{Profession: profession, Total: total})
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.StoreFailure("failed iterating profession earnings rows", err)
	}
	return result, nil
}

// SumPaidByClient sums paid job prices per client and keeps the top limit rows.
func (r *reportingRepository) SumPaidByClient(ctx context.Context, start, end time.Time, limit int) ([]domain.ClientPayment, error) {
	query := `
		SELECT p.id, p.first_name, p.last_name, SUM(j.price) AS paid
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		JOIN profiles p ON p.id = c.client_id
		WHERE j.paid AND j.payment_date BETWEEN $1 AND $2
		GROUP BY p.id, p.first_name, p.last_name
		ORDER BY paid DESC, p.id ASC
		LIMIT $3`

	rows, err := r.Pool.Query(ctx, query, start, end, limit)
	if err != nil {
		return nil, apperrors.StoreFailure("failed to aggregate payments by client", err)
	}
	defer rows.Close()

	var result []domain.ClientPayment
	for rows.Next() {
		var (
			row                 domain.ClientPayment
			firstName, lastName string
		)
		if err := rows.Scan(&row.ProfileID, &firstName, &lastName, &row.TotalPaid); err != nil {
			return nil, apperrors.StoreFailure("failed to scan client payment row", err)
		}
		row.FullName = domain.Profile{FirstName: firstName, LastName: lastName}.FullName()
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.StoreFailure("failed iterating client payment rows", err)
	}
	return result, nil
}

package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/contractor_marketplace/internal/core/domain"
)

// ReportingRepository aggregates paid jobs whose payment date lies in [start, end], both ends inclusive.
type ReportingRepository interface {
	// SumPaidByContractorProfession groups by the contractor's profession,
	// ordered by total descending then profession ascending.
	SumPaidByContractorProfession(ctx context.Context, start, end time.Time) ([]domain.ProfessionEarnings, error)

	// SumPaidByClient groups by client, ordered by total descending then profile id ascending,
	// returning at most limit rows.
	SumPaidByClient(ctx context.Context, start, end time.Time, limit int) ([]domain.ClientPayment, error)
}

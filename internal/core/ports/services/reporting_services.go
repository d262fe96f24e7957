package services

import (
	"context"
	"time"

	"github.com/SscSPs/contractor_marketplace/internal/core/domain"
)

// ReportingService computes aggregate reports over paid jobs.
type ReportingService interface {
	// BestProfession returns the contractor profession that earned the most in [start, end].
	// It returns nil without error when nothing was paid in range.
	BestProfession(ctx context.Context, start, end time.Time) (*domain.ProfessionEarnings, error)

	// BestClients returns the clients who paid the most in [start, end], highest first.
	// A zero limit selects the configured default.
	BestClients(ctx context.Context, start, end time.Time, limit int) ([]domain.ClientPayment, error)
}

package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/contractor_marketplace/internal/apperrors"
	"github.com/SscSPs/contractor_marketplace/internal/repositories/seed"
	"github.com/SscSPs/contractor_marketplace/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedDataset inserts the dataset in one batch. Rows whose id already exists are left untouched.
func SeedDataset(ctx context.Context, pool *pgxpool.Pool, data seed.Dataset) error {
	batch := &pgx.Batch{}

	for _, p := range data.Profiles {
		m := mapping.ToModelProfile(p)
		batch.Queue(`
			INSERT INTO profiles (id, first_name, last_name, profession, balance, type)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO NOTHING`,
			m.ID, m.FirstName, m.LastName, m.Profession, m.Balance, string(m.Type))
	}
	for _, c := range data.Contracts {
		m := mapping.ToModelContract(c)
		batch.Queue(`
			INSERT INTO contracts (id, terms, status, client_id, contractor_id)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO NOTHING`,
			m.ID, m.Terms, string(m.Status), m.ClientID, m.ContractorID)
	}
	for _, j := range data.Jobs {
		m := mapping.ToModelJob(j)
		batch.Queue(`
			INSERT INTO jobs (id, contract_id, description, price, paid, payment_date)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO NOTHING`,
			m.ID, m.ContractID, m.Description, m.Price, m.Paid, m.PaymentDate)
	}

	// Keep BIGSERIAL sequences ahead of the explicit ids.
	for _, table := range []string{"profiles", "contracts", "jobs"} {
		batch.Queue(fmt.Sprintf(`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), GREATEST((SELECT MAX(id) FROM %[1]s), 1))`, table))
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return apperrors.StoreFailure("failed to begin seed transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	br := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return apperrors.StoreFailure(fmt.Sprintf("failed to apply seed statement %d", i), err)
		}
	}
	if err := br.Close(); err != nil {
		return apperrors.StoreFailure("failed to close seed batch", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return apperrors.StoreFailure("failed to commit seed transaction", err)
	}
	return nil
}

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
)

const contractColumns = `c.id, c.terms, c.status, c.client_id, c.contractor_id, c.created_at, c.updated_at`

type PgxContractRepository struct {
	BaseRepository
}

// newPgxContractRepository creates a new repository for contract data.
func newPgxContractRepository(pool *pgxpool.Pool) *PgxContractRepository {
	return &PgxContractRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ContractRepositoryFacade = (*PgxContractRepository)(nil)

func contractScanTargets(m *models.Contract) []any {
	return []any{&m.ID, &m.Terms, &m.Status, &m.ClientID, &m.ContractorID, &m.CreatedAt, &m.UpdatedAt}
}

// FindContractForParty retrieves a contract only when profileID is one of its parties.
func (r *PgxContractRepository) FindContractForParty(ctx context.Context, contractID, profileID int64) (*domain.Contract, error) {
	query := `
		SELECT ` + contractColumns + `
		FROM contracts c
		WHERE c.id = $1 AND (c.client_id = $2 OR c.contractor_id = $2)`

	var m models.Contract
	if err := r.Pool.QueryRow(ctx, query, contractID, profileID).Scan(contractScanTargets(&m)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("contract %d: %w", contractID, apperrors.ErrNotFound)
		}
		return nil, apperrors.StoreFailure("failed to find contract", err)
	}
	contract := mapping.ToDomainContract(m)
	return &contract, nil
}

// ListActiveContractsForParty lists non-terminated contracts of a profile ordered by id.
func (r *PgxContractRepository) ListActiveContractsForParty(ctx context.Context, profileID int64) ([]domain.Contract, error) {
	query := `
		SELECT ` + contractColumns + `
		FROM contracts c
		WHERE (c.client_id = $1 OR c.contractor_id = $1) AND c.status <> $2
		ORDER BY c.id`

	rows, err := r.Pool.Query(ctx, query, profileID, string(models.ContractTerminated))
	if err != nil {
		return nil, apperrors.StoreFailure("failed to list contracts", err)
	}
	defer rows.Close()

	var contracts []models.Contract
	for rows.Next() {
		var m models.Contract
		if err := rows.Scan(contractScanTargets(&m)...); err != nil {
			return nil, apperrors.StoreFailure("failed to scan contract row", err)
		}
		contracts = append(contracts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.StoreFailure("failed iterating contract rows", err)
	}
	return mapping.ToDomainContracts(contracts), nil
}

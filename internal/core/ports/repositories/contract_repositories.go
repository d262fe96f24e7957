package repositories

import (
	"context"

	"github.com/SscSPs/contractor_marketplace/internal/core/domain"
)

// ContractReader defines party-filtered read operations for contracts.
type ContractReader interface {
	// FindContractForParty returns the contract only when profileID is its client or contractor,
	// otherwise apperrors.ErrNotFound.
	FindContractForParty(ctx context.Context, contractID, profileID int64) (*domain.Contract, error)

	// ListActiveContractsForParty lists non-terminated contracts the profile belongs to, ordered by id.
	ListActiveContractsForParty(ctx context.Context, profileID int64) ([]domain.Contract, error)
}

// ContractRepositoryFacade combines all contract-related repository interfaces
type ContractRepositoryFacade interface {
	ContractReader
}

package services

import (
	"context"

	"github.com/SscSPs/contractor_marketplace/internal/core/domain"
)

// ContractReaderSvc exposes contracts to their parties only.
type ContractReaderSvc interface {
	// GetContract returns a contract the caller is party to, or apperrors.ErrNotFound.
	GetContract(ctx context.Context, callerID, contractID int64) (*domain.Contract, error)

	// ListContracts returns the caller's non-terminated contracts.
	ListContracts(ctx context.Context, callerID int64) ([]domain.Contract, error)
}

// ContractSvcFacade combines all contract-related service interfaces
type ContractSvcFacade interface {
	ContractReaderSvc
}

package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/contractor_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/contractor_marketplace/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/contractor_marketplace/internal/core/ports/services"
)

type contractService struct {
	BaseService
	contractRepo portsrepo.ContractReader
}

// NewContractService creates a new contract service.
func NewContractService(contractRepo portsrepo.ContractReader) portssvc.ContractSvcFacade {
	return &contractService{contractRepo: contractRepo}
}

var _ portssvc.ContractSvcFacade = (*contractService)(nil)

// GetContract returns the contract when the caller is its client or contractor.
func (s *contractService) GetContract(ctx context.Context, callerID, contractID int64) (*domain.Contract, error) {
	contract, err := s.contractRepo.FindContractForParty(ctx, contractID, callerID)
	if err != nil {
		if isBusinessError(err) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to get contract",
			slog.Int64("profile_id", callerID),
			slog.Int64("contract_id", contractID))
		return nil, fmt.Errorf("failed to get contract %d: %w", contractID, err)
	}
	if err := authorizeView(callerID, *contract); err != nil {
		return nil, err
	}
	return contract, nil
}

// ListContracts returns the caller's contracts that are not terminated.
func (s *contractService) ListContracts(ctx context.Context, callerID int64) ([]domain.Contract, error) {
	contracts, err := s.contractRepo.ListActiveContractsForParty(ctx, callerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list contracts", slog.Int64("profile_id", callerID))
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	return visibleContracts(callerID, contracts), nil
}

package services

import (
	"fmt"

	"github.com/SscSPs/contractor_marketplace/internal/apperrors"
	"github.com/SscSPs/contractor_marketplace/internal/core/domain"
)

// authorizeView hides a contract from profiles that are not party to it.
// Outsiders get ErrNotFound so contract ids cannot be probed.
func authorizeView(callerID int64, contract domain.Contract) error {
	if !contract.IsParty(callerID) {
		return fmt.Errorf("contract %d: %w", contract.ID, apperrors.ErrNotFound)
	}
	return nil
}

// authorizePayment allows only the contract client to pay for a job.
func authorizePayment(callerID int64, contract domain.Contract) error {
	if !contract.IsClient(callerID) {
		return fmt.Errorf("profile %d may not pay under contract %d: %w", callerID, contract.ID, apperrors.ErrForbidden)
	}
	return nil
}

// visibleContracts keeps the non-terminated contracts the caller is party to.
// Stores push this filter into their queries; it is applied again here on the fetched rows.
func visibleContracts(callerID int64, contracts []domain.Contract) []domain.Contract {
	visible := make([]domain.Contract, 0, len(contracts))
	for _, c := range contracts {
		if c.IsParty(callerID) && c.IsActive() {
			visible = append(visible, c)
		}
	}
	return visible
}

// visibleOutstandingJobs keeps unpaid in-progress jobs on contracts the caller is party to.
func visibleOutstandingJobs(callerID int64, jobs []domain.JobWithContract) []domain.JobWithContract {
	visible := make([]domain.JobWithContract, 0, len(jobs))
	for _, j := range jobs {
		if j.Contract.IsParty(callerID) && j.IsOutstanding() {
			visible = append(visible, j)
		}
	}
	return visible
}

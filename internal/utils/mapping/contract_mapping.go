package mapping

import (
	"github.com/SscSPs/contractor_marketplace/internal/core/domain"
	"github.com/SscSPs/contractor_marketplace/internal/models"
)

// ToModelContract converts a domain Contract to a model Contract
func ToModelContract(d domain.Contract) models.Contract {
	return models.Contract{
		ID:           d.ID,
		Terms:        d.Terms,
		Status:       models.ContractStatus(d.Status),
		ClientID:     d.ClientID,
		ContractorID: d.ContractorID,
		Timestamps:   ToModelTimestamps(d.Timestamps),
	}
}

// ToDomainContract converts a model Contract to a domain Contract
func ToDomainContract(m models.Contract) domain.Contract {
	return domain.Contract{
		ID:           m.ID,
		Terms:        m.Terms,
		Status:       domain.ContractStatus(m.Status),
		ClientID:     m.ClientID,
		ContractorID: m.ContractorID,
		Timestamps:   ToDomainTimestamps(m.Timestamps),
	}
}

// ToDomainContracts converts a slice of model Contracts
func ToDomainContracts(ms []models.Contract) []domain.Contract {
	out := make([]domain.Contract, len(ms))
	for i, m := range ms {
		out[i] = ToDomainContract(m)
	}
	return out
}

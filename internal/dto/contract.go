package dto

import (
	"time"

	"github.com/SscSPs/contractor_marketplace/internal/core/domain"
)

// ContractResponse defines the data returned for a contract.
type ContractResponse struct {
	ID           int64                 `json:"id"`
	Terms        string                `json:"terms"`
	Status       domain.ContractStatus `json:"status"`
	ClientID     int64                 `json:"clientId"`
	ContractorID int64                 `json:"contractorId"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

// ToContractResponse converts a domain.Contract to ContractResponse DTO
func ToContractResponse(c *domain.Contract) ContractResponse {
	return ContractResponse{
		ID:           c.ID,
		Terms:        c.Terms,
		Status:       c.Status,
		ClientID:     c.ClientID,
		ContractorID: c.ContractorID,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// ToContractResponses converts a slice of contracts, never yielding a nil list.
func ToContractResponses(contracts []domain.Contract) []ContractResponse {
	resp := make([]ContractResponse, 0, len(contracts))
	for i := range contracts {
		resp = append(resp, ToContractResponse(&contracts[i]))
	}
	return resp
}

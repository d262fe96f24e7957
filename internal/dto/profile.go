package dto

import (
	"time"

	"github.com/SscSPs/contractor_marketplace/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DepositRequest is the body of a balance deposit.
// Amount accepts a JSON number or a numeric string.
type DepositRequest struct {
	Amount *decimal.Decimal `json:"amount" binding:"required"`
}

// ProfileResponse defines the data returned for a profile.
type ProfileResponse struct {
	ID         int64              `json:"id"`
	FirstName  string             `json:"firstName"`
	LastName   string             `json:"lastName"`
	Profession string             `json:"profession"`
	Balance    decimal.Decimal    `json:"balance"`
	Type       domain.ProfileType `json:"type"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

// ToProfileResponse converts a domain.Profile to ProfileResponse DTO
func ToProfileResponse(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		ID:         p.ID,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Profession: p.Profession,
		Balance:    p.Balance,
		Type:       p.Type,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

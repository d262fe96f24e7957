package domain

import (
	"github.com/shopspring/decimal"
)

// ProfileType tells whether a profile buys work or performs it.
type ProfileType string

const (
	ClientProfile     ProfileType = "client"
	ContractorProfile ProfileType = "contractor"
)

// Profile is a marketplace participant holding a balance.
// Balance only moves through job payments and deposits.
type Profile struct {
	ID         int64           `json:"id"`
	FirstName  string          `json:"firstName"`
	LastName   string          `json:"lastName"`
	Profession string          `json:"profession"`
	Balance    decimal.Decimal `json:"balance"` // NUMERIC(12,2), never negative
	Type       ProfileType     `json:"type"`
	Timestamps
}

// FullName joins first and last name the way reports display them.
func (p Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}

// IsClient reports whether the profile is of client type.
func (p Profile) IsClient() bool {
	return p.Type == ClientProfile
}

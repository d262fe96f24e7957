package models

import (
	"github.com/shopspring/decimal"
)

// ProfileType mirrors the profiles.type CHECK constraint.
type ProfileType string

const (
	ClientProfile     ProfileType = "client"
	ContractorProfile ProfileType = "contractor"
)

// Profile is a row of the profiles table.
type Profile struct {
	ID         int64           `db:"id"`
	FirstName  string          `db:"first_name"`
	LastName   string          `db:"last_name"`
	Profession string          `db:"profession"`
	Balance    decimal.Decimal `db:"balance"`
	Type       ProfileType     `db:"type"`
	Timestamps
}

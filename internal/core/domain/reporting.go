package domain

import (
	"github.com/shopspring/decimal"
)

// ProfessionEarnings is the total earned by contractors of one profession.
type ProfessionEarnings struct {
	Profession string          `json:"profession"`
	Total      decimal.Decimal `json:"total"`
}

// ClientPayment is the total one client paid for jobs.
type ClientPayment struct {
	ProfileID int64           `json:"id"`
	FullName  string          `json:"fullName"`
	TotalPaid decimal.Decimal `json:"paid"`
}

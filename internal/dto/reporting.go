package dto

import (
	"github.com/SscSPs/contractor_marketplace/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportRangeQuery holds the inclusive time range of a report.
// Both bounds accept RFC3339, "YYYY-MM-DD HH:MM:SS" or "YYYY-MM-DD".
type ReportRangeQuery struct {
	Start string `form:"start" binding:"required,reportdate"`
	End   string `form:"end" binding:"required,reportdate"`
}

// BestClientsQuery adds an optional result limit to a report range.
// An absent limit selects the configured default.
type BestClientsQuery struct {
	ReportRangeQuery
	Limit *int `form:"limit" binding:"omitempty,min=1"`
}

// ProfessionEarningsResponse is the best-earning profession in a range.
type ProfessionEarningsResponse struct {
	Profession string          `json:"profession"`
	Total      decimal.Decimal `json:"total"`
}

// ClientPaymentResponse is one entry of the best clients report.
type ClientPaymentResponse struct {
	ID       int64           `json:"id"`
	FullName string          `json:"fullName"`
	Paid     decimal.Decimal `json:"paid"`
}

// ToProfessionEarningsResponse converts the domain report row.
func ToProfessionEarningsResponse(pe *domain.ProfessionEarnings) ProfessionEarningsResponse {
	return ProfessionEarningsResponse{Profession: pe.Profession, Total: pe.Total}
}

// ToClientPaymentsResponse converts best clients rows, never yielding a nil list.
func ToClientPaymentsResponse(rows []domain.ClientPayment) []ClientPaymentResponse {
	resp := make([]ClientPaymentResponse, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, ClientPaymentResponse{ID: r.ProfileID, FullName: r.FullName, Paid: r.TotalPaid})
	}
	return resp
}

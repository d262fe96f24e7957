package dto

import (
	"time"

	"github.com/SscSPs/contractor_marketplace/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JobResponse defines the data returned for a job.
type JobResponse struct {
	ID          int64             `json:"id"`
	ContractID  int64             `json:"contractId"`
	Description string            `json:"description"`
	Price       decimal.Decimal   `json:"price"`
	Paid        bool              `json:"paid"`
	PaymentDate *time.Time        `json:"paymentDate"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
	Contract    *ContractResponse `json:"contract,omitempty"`
}

// ToJobResponse converts a domain.Job to JobResponse DTO
func ToJobResponse(j *domain.Job) JobResponse {
	return JobResponse{
		ID:          j.ID,
		ContractID:  j.ContractID,
		Description: j.Description,
		Price:       j.Price,
		Paid:        j.Paid,
		PaymentDate: j.PaymentDate,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
}

// ToJobWithContractResponse converts a job and embeds its contract.
func ToJobWithContractResponse(j *domain.JobWithContract) JobResponse {
	resp := ToJobResponse(&j.Job)
	contract := ToContractResponse(&j.Contract)
	resp.Contract = &contract
	return resp
}

// ToJobWithContractResponses converts unpaid jobs with their contracts.
func ToJobWithContractResponses(jobs []domain.JobWithContract) []JobResponse {
	resp := make([]JobResponse, 0, len(jobs))
	for i := range jobs {
		resp = append(resp, ToJobWithContractResponse(&jobs[i]))
	}
	return resp
}

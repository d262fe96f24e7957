package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Job is a priced unit of work under a contract.
// Once Paid is true, Price and Paid never change and PaymentDate is set.
type Job struct {
	ID          int64           `json:"id"`
	ContractID  int64           `json:"contractId"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Paid        bool            `json:"paid"`
	PaymentDate *time.Time      `json:"paymentDate"`
	Timestamps
}

// JobWithContract is a job together with the contract that owns it.
type JobWithContract struct {
	Job
	Contract Contract `json:"contract"`
}

// IsOutstanding is true for unpaid jobs whose contract is in progress.
func (j JobWithContract) IsOutstanding() bool {
	return !j.Paid && j.Contract.Status == ContractInProgress
}

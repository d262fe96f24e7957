package models

// ContractStatus mirrors the contracts.status CHECK constraint.
type ContractStatus string

const (
	ContractNew        ContractStatus = "new"
	ContractInProgress ContractStatus = "in_progress"
	ContractTerminated ContractStatus = "terminated"
)

// Contract is a row of the contracts table.
type Contract struct {
	ID           int64          `db:"id"`
	Terms        string         `db:"terms"`
	Status       ContractStatus `db:"status"`
	ClientID     int64          `db:"client_id"`
	ContractorID int64          `db:"contractor_id"`
	Timestamps
}

package domain

// ContractStatus is the lifecycle state of a contract.
type ContractStatus string

const (
	ContractNew        ContractStatus = "new"
	ContractInProgress ContractStatus = "in_progress"
	ContractTerminated ContractStatus = "terminated"
)

// Contract links a client profile with a contractor profile.
// ClientID == ContractorID is not rejected.
type Contract struct {
	ID           int64          `json:"id"`
	Terms        string         `json:"terms"`
	Status       ContractStatus `json:"status"`
	ClientID     int64          `json:"clientId"`
	ContractorID int64          `json:"contractorId"`
	Timestamps
}

// IsParty reports whether profileID is the client or the contractor of the contract.
func (c Contract) IsParty(profileID int64) bool {
	return profileID == c.ClientID || profileID == c.ContractorID
}

// IsClient reports whether profileID is the paying side of the contract.
func (c Contract) IsClient(profileID int64) bool {
	return profileID == c.ClientID
}

// IsActive is true for every status except terminated.
func (c Contract) IsActive() bool {
	return c.Status != ContractTerminated
}

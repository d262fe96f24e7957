package services

import (
	"context"

	"github.com/SscSPs/contractor_marketplace/internal/core/domain"
)

// JobReaderSvc lists jobs visible to a caller.
type JobReaderSvc interface {
	// ListUnpaidJobs returns unpaid jobs on the caller's in-progress contracts.
	ListUnpaidJobs(ctx context.Context, callerID int64) ([]domain.JobWithContract, error)
}

// PaymentSvc moves money from a client to a contractor for a job.
type PaymentSvc interface {
	// PayForJob transfers the job price from the contract client to the contractor
	// and marks the job paid, all in one unit.
	PayForJob(ctx context.Context, callerID, jobID int64) (*domain.Job, error)
}

// JobSvcFacade combines all job-related service interfaces
type JobSvcFacade interface {
	JobReaderSvc
	PaymentSvc
}

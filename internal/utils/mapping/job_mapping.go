package mapping

import (
	"database/sql"
	"time"

	"github.com/SscSPs/contractor_marketplace/internal/core/domain"
	"github.com/SscSPs/contractor_marketplace/internal/models"
)

// ToModelJob converts a domain Job to a model Job
func ToModelJob(d domain.Job) models.Job {
	var paymentDate sql.NullTime
	if d.PaymentDate != nil {
		paymentDate = sql.NullTime{Time: *d.PaymentDate, Valid: true}
	}
	return models.Job{
		ID:          d.ID,
		ContractID:  d.ContractID,
		Description: d.Description,
		Price:       d.Price,
		Paid:        d.Paid,
		PaymentDate: paymentDate,
		Timestamps:  ToModelTimestamps(d.Timestamps),
	}
}

// ToDomainJob converts a model Job to a domain Job
func ToDomainJob(m models.Job) domain.Job {
	var paymentDate *time.Time
	if m.PaymentDate.Valid {
		t := m.PaymentDate.Time
		paymentDate = &t
	}
	return domain.Job{
		ID:          m.ID,
		ContractID:  m.ContractID,
		Description: m.Description,
		Price:       m.Price,
		Paid:        m.Paid,
		PaymentDate: paymentDate,
		Timestamps:  ToDomainTimestamps(m.Timestamps),
	}
}

// ToDomainJobWithContract joins a job row with its contract row.
func ToDomainJobWithContract(j models.Job, c models.Contract) domain.JobWithContract {
	return domain.JobWithContract{Job: ToDomainJob(j), Contract: ToDomainContract(c)}
}

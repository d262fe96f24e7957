package mapping

import (
	"database/sql"
	"testing"
	"time"

	"github.com/SscSPs/contractor_marketplace/internal/core/domain"
	"github.com/SscSPs/contractor_marketplace/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainJob_PaymentDate(t *testing.T) {
	paidAt := time.Date(2020, 8, 15, 19, 11, 26, 0, time.UTC)

	unpaid := ToDomainJob(models.Job{ID: 1, Price: decimal.NewFromInt(200)})
	assert.Nil(t, unpaid.PaymentDate)

	paid := ToDomainJob(models.Job{ID: 2, Paid: true, PaymentDate: sql.NullTime{Time: paidAt, Valid: true}})
	require.NotNil(t, paid.PaymentDate)
	assert.True(t, paidAt.Equal(*paid.PaymentDate))
}

func TestToModelJob_PaymentDate(t *testing.T) {
	paidAt := time.Date(2020, 8, 15, 19, 11, 26, 0, time.UTC)

	assert.False(t, ToModelJob(domain.Job{ID: 1}).PaymentDate.Valid)

	m := ToModelJob(domain.Job{ID: 2, Paid: true, PaymentDate: &paidAt})
	assert.True(t, m.PaymentDate.Valid)
	assert.True(t, paidAt.Equal(m.PaymentDate.Time))
}

func TestToDomainJobWithContract(t *testing.T) {
	got := ToDomainJobWithContract(
		models.Job{ID: 3, ContractID: 9, Price: decimal.NewFromInt(121)},
		models.Contract{ID: 9, Status: models.ContractInProgress, ClientID: 1, ContractorID: 6},
	)
	assert.Equal(t, int64(3), got.ID)
	assert.Equal(t, domain.ContractInProgress, got.Contract.Status)
	assert.True(t, got.Contract.IsParty(6))
}

package services

import (
	"testing"

	"github.com/SscSPs/contractor_marketplace/internal/apperrors"
	"github.com/SscSPs/contractor_marketplace/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestAuthorizeView(t *testing.T) {
	contract := domain.Contract{ID: 1, ClientID: 1, ContractorID: 5}

	assert.NoError(t, authorizeView(1, contract))
	assert.NoError(t, authorizeView(5, contract))
	assert.ErrorIs(t, authorizeView(15, contract), apperrors.ErrNotFound)
	assert.ErrorIs(t, authorizeView(51, contract), apperrors.ErrNotFound)
}

func TestAuthorizePayment(t *testing.T) {
	contract := domain.Contract{ID: 1, ClientID: 1, ContractorID: 5}

	assert.NoError(t, authorizePayment(1, contract))
	assert.ErrorIs(t, authorizePayment(5, contract), apperrors.ErrForbidden)
	assert.ErrorIs(t, authorizePayment(2, contract), apperrors.ErrForbidden)
}

func TestVisibleContracts(t *testing.T) {
	got := visibleContracts(1, []domain.Contract{
		{ID: 1, Status: domain.ContractTerminated, ClientID: 1, ContractorID: 5},
		{ID: 2, Status: domain.ContractNew, ClientID: 1, ContractorID: 5},
		{ID: 3, Status: domain.ContractInProgress, ClientID: 2, ContractorID: 1},
		{ID: 4, Status: domain.ContractInProgress, ClientID: 2, ContractorID: 3},
	})

	assert.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
}

func TestVisibleOutstandingJobs(t *testing.T) {
	inProgress := domain.Contract{Status: domain.ContractInProgress, ClientID: 1, ContractorID: 6}
	got := visibleOutstandingJobs(6, []domain.JobWithContract{
		{Job: domain.Job{ID: 1}, Contract: inProgress},
		{Job: domain.Job{ID: 2, Paid: true}, Contract: inProgress},
		{Job: domain.Job{ID: 3}, Contract: domain.Contract{Status: domain.ContractNew, ClientID: 1, ContractorID: 6}},
		{Job: domain.Job{ID: 4}, Contract: domain.Contract{Status: domain.ContractInProgress, ClientID: 2, ContractorID: 7}},
	})

	assert.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

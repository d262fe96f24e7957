package services_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/SscSPs/contractor_marketplace/internal/apperrors"
	"github.com/SscSPs/contractor_marketplace/internal/core/domain"
	"github.com/SscSPs/contractor_marketplace/internal/core/services"
	"github.com/SscSPs/contractor_marketplace/internal/repositories/memory"
	"github.com/SscSPs/contractor_marketplace/internal/repositories/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// twoJobsOneBudget has a client whose balance covers exactly one of two open jobs.
func twoJobsOneBudget() seed.Dataset {
	return seed.Dataset{
		Profiles: []domain.Profile{
			{ID: 1, FirstName: "Harry", LastName: "Potter", Profession: "Wizard", Balance: dec("100"), Type: domain.ClientProfile},
			{ID: 2, FirstName: "Linus", LastName: "Torvalds", Profession: "Programmer", Balance: dec("0"), Type: domain.ContractorProfile},
		},
		Contracts: []domain.Contract{
			{ID: 1, Terms: "t", Status: domain.ContractInProgress, ClientID: 1, ContractorID: 2},
		},
		Jobs: []domain.Job{
			{ID: 1, ContractID: 1, Description: "a", Price: dec("80")},
			{ID: 2, ContractID: 1, Description: "b", Price: dec("70")},
		},
	}
}

func TestPayForJob_ConcurrentPaymentsCannotDoubleSpend(t *testing.T) {
	for round := 0; round < 50; round++ {
		store := memory.NewStore()
		store.Load(twoJobsOneBudget())
		repos := store.Repositories()
		svc := services.NewJobService(repos.JobRepo, repos.UnitOfWork)

		var succeeded, rejected atomic.Int32
		g, ctx := errgroup.WithContext(context.Background())
		for _, jobID := range []int64{1, 2} {
			g.Go(func() error {
				_, err := svc.PayForJob(ctx, 1, jobID)
				switch {
				case err == nil:
					succeeded.Add(1)
					return nil
				case errors.Is(err, apperrors.ErrInsufficientFunds):
					rejected.Add(1)
					return nil
				default:
					return err
				}
			})
		}
		require.NoError(t, g.Wait())
		require.Equal(t, int32(1), succeeded.Load(), "round %d", round)
		require.Equal(t, int32(1), rejected.Load(), "round %d", round)

		client, err := store.FindProfileByID(context.Background(), 1)
		require.NoError(t, err)
		contractor, err := store.FindProfileByID(context.Background(), 2)
		require.NoError(t, err)

		assert.False(t, client.Balance.IsNegative())
		assert.True(t, client.Balance.Add(contractor.Balance).Equal(dec("100")), "money must be conserved")
	}
}

func TestPayForJob_SecondPaymentIsNotFound(t *testing.T) {
	store := memory.NewStore()
	store.Load(twoJobsOneBudget())
	repos := store.Repositories()
	svc := services.NewJobService(repos.JobRepo, repos.UnitOfWork)
	ctx := context.Background()

	job, err := svc.PayForJob(ctx, 1, 1)
	require.NoError(t, err)
	assert.True(t, job.Paid)
	require.NotNil(t, job.PaymentDate)

	_, err = svc.PayForJob(ctx, 1, 1)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	client, _ := store.FindProfileByID(ctx, 1)
	contractor, _ := store.FindProfileByID(ctx, 2)
	assert.True(t, dec("20").Equal(client.Balance))
	assert.True(t, dec("80").Equal(contractor.Balance))
}

func TestDeposit_AgainstDemoData(t *testing.T) {
	store := memory.NewStore()
	store.Load(seed.Demo())
	repos := store.Repositories()
	svc := services.NewProfileService(repos.ProfileRepo, repos.UnitOfWork)
	ctx := context.Background()

	// Ash Kethcum owes 200 on in-progress work, so at most 50 may be deposited.
	_, err := svc.Deposit(ctx, 4, dec("51"))
	assert.ErrorIs(t, err, apperrors.ErrDepositCapExceeded)

	p, err := svc.Deposit(ctx, 4, dec("50"))
	require.NoError(t, err)
	assert.True(t, dec("51.3").Equal(p.Balance))

	// John Snow has no unpaid in-progress work.
	_, err = svc.Deposit(ctx, 3, dec("1"))
	assert.ErrorIs(t, err, apperrors.ErrDepositCapExceeded)
}

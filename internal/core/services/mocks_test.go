package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/contractor_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/contractor_marketplace/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock ProfileRepository ---
type MockProfileRepository struct {
	mock.Mock
}

var _ portsrepo.ProfileRepositoryFacade = (*MockProfileRepository)(nil)

func (m *MockProfileRepository) FindProfileByID(ctx context.Context, profileID int64) (*domain.Profile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

// --- Mock ContractRepository ---
type MockContractRepository struct {
	mock.Mock
}

var _ portsrepo.ContractRepositoryFacade = (*MockContractRepository)(nil)

func (m *MockContractRepository) FindContractForParty(ctx context.Context, contractID, profileID int64) (*domain.Contract, error) {
	args := m.Called(ctx, contractID, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}

func (m *MockContractRepository) ListActiveContractsForParty(ctx context.Context, profileID int64) ([]domain.Contract, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contract), args.Error(1)
}

// --- Mock JobRepository ---
type MockJobRepository struct {
	mock.Mock
}

var _ portsrepo.JobRepositoryFacade = (*MockJobRepository)(nil)

func (m *MockJobRepository) FindJobWithContract(ctx context.Context, jobID int64) (*domain.JobWithContract, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobWithContract), args.Error(1)
}

func (m *MockJobRepository) ListUnpaidJobsInProgressForParty(ctx context.Context, profileID int64) ([]domain.JobWithContract, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobWithContract), args.Error(1)
}

func (m *MockJobRepository) SumUnpaidInProgressPriceForClient(ctx context.Context, clientID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) SumPaidByContractorProfession(ctx context.Context, start, end time.Time) ([]domain.ProfessionEarnings, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProfessionEarnings), args.Error(1)
}

func (m *MockReportingRepository) SumPaidByClient(ctx context.Context, start, end time.Time, limit int) ([]domain.ClientPayment, error) {
	args := m.Called(ctx, start, end, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClientPayment), args.Error(1)
}

// --- Mock LedgerTx ---
type MockLedgerTx struct {
	mock.Mock
}

var _ portsrepo.LedgerTx = (*MockLedgerTx)(nil)

func (m *MockLedgerTx) LockJobWithContract(ctx context.Context, jobID int64) (*domain.JobWithContract, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobWithContract), args.Error(1)
}

func (m *MockLedgerTx) LockProfiles(ctx context.Context, profileIDs ...int64) (map[int64]domain.Profile, error) {
	args := m.Called(ctx, profileIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.Profile), args.Error(1)
}

func (m *MockLedgerTx) SumUnpaidInProgressPriceForClient(ctx context.Context, clientID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerTx) DebitProfile(ctx context.Context, profileID int64, amount decimal.Decimal, now time.Time) (*domain.Profile, error) {
	args := m.Called(ctx, profileID, amount, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockLedgerTx) CreditProfile(ctx context.Context, profileID int64, amount decimal.Decimal, now time.Time) (*domain.Profile, error) {
	args := m.Called(ctx, profileID, amount, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockLedgerTx) MarkJobPaid(ctx context.Context, jobID int64, paidAt time.Time) (*domain.Job, error) {
	args := m.Called(ctx, jobID, paidAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

// --- Mock UnitOfWork ---

// MockUnitOfWork hands its LedgerTx to the callback and counts the outcome.
type MockUnitOfWork struct {
	Tx        *MockLedgerTx
	Commits   int
	Rollbacks int
}

var _ portsrepo.UnitOfWork = (*MockUnitOfWork)(nil)

func (u *MockUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, tx portsrepo.LedgerTx) error) error {
	if err := fn(ctx, u.Tx); err != nil {
		u.Rollbacks++
		return err
	}
	u.Commits++
	return nil
}

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

// decEq matches decimals by value rather than by representation.
func decEq(v string) any {
	want := dec(v)
	return mock.MatchedBy(func(got decimal.Decimal) bool { return got.Equal(want) })
}

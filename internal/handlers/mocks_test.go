package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/contractor_marketplace/internal/core/domain"
	portssvc "github.com/SscSPs/contractor_marketplace/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock ProfileService ---
type MockProfileService struct {
	mock.Mock
}

var _ portssvc.ProfileSvcFacade = (*MockProfileService)(nil)

func (m *MockProfileService) GetProfile(ctx context.Context, profileID int64) (*domain.Profile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileService) Deposit(ctx context.Context, profileID int64, amount decimal.Decimal) (*domain.Profile, error) {
	args := m.Called(ctx, profileID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

// --- Mock ContractService ---
type MockContractService struct {
	mock.Mock
}

var _ portssvc.ContractSvcFacade = (*MockContractService)(nil)

func (m *MockContractService) GetContract(ctx context.Context, callerID, contractID int64) (*domain.Contract, error) {
	args := m.Called(ctx, callerID, contractID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}

func (m *MockContractService) ListContracts(ctx context.Context, callerID int64) ([]domain.Contract, error) {
	args := m.Called(ctx, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contract), args.Error(1)
}

// --- Mock JobService ---
type MockJobService struct {
	mock.Mock
}

var _ portssvc.JobSvcFacade = (*MockJobService)(nil)

func (m *MockJobService) ListUnpaidJobs(ctx context.Context, callerID int64) ([]domain.JobWithContract, error) {
	args := m.Called(ctx, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobWithContract), args.Error(1)
}

func (m *MockJobService) PayForJob(ctx context.Context, callerID, jobID int64) (*domain.Job, error) {
	args := m.Called(ctx, callerID, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

func (m *MockReportingService) BestProfession(ctx context.Context, start, end time.Time) (*domain.ProfessionEarnings, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfessionEarnings), args.Error(1)
}

func (m *MockReportingService) BestClients(ctx context.Context, start, end time.Time, limit int) ([]domain.ClientPayment, error) {
	args := m.Called(ctx, start, end, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClientPayment), args.Error(1)
}

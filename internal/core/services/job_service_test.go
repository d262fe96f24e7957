package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/contractor_marketplace/internal/apperrors"
	"github.com/SscSPs/contractor_marketplace/internal/core/domain"
	portssvc "github.com/SscSPs/contractor_marketplace/internal/core/ports/services"
	"github.com/SscSPs/contractor_marketplace/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	clientID     int64 = 1
	contractorID int64 = 6
	outsiderID   int64 = 3
	jobID        int64 = 2
)

type JobServiceTestSuite struct {
	suite.Suite
	jobRepo *MockJobRepository
	tx      *MockLedgerTx
	uow     *MockUnitOfWork
	service portssvc.JobSvcFacade
	ctx     context.Context
	now     time.Time
}

func (s *JobServiceTestSuite) SetupTest() {
	s.jobRepo = new(MockJobRepository)
	s.tx = new(MockLedgerTx)
	s.uow = &MockUnitOfWork{Tx: s.tx}
	s.now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s.service = services.NewJobService(s.jobRepo, s.uow, services.WithJobClock(func() time.Time { return s.now }))
	s.ctx = context.Background()
}

func TestJobServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JobServiceTestSuite))
}

func (s *JobServiceTestSuite) unpaidJob(price string) *domain.JobWithContract {
	return &domain.JobWithContract{
		Job: domain.Job{ID: jobID, ContractID: 2, Description: "work", Price: dec(price)},
		Contract: domain.Contract{
			ID:           2,
			Status:       domain.ContractInProgress,
			ClientID:     clientID,
			ContractorID: contractorID,
		},
	}
}

func (s *JobServiceTestSuite) profiles(clientBalance string) map[int64]domain.Profile {
	return map[int64]domain.Profile{
		clientID:     {ID: clientID, Balance: dec(clientBalance), Type: domain.ClientProfile},
		contractorID: {ID: contractorID, Balance: dec("10"), Type: domain.ContractorProfile},
	}
}

func (s *JobServiceTestSuite) TestPayForJob_Success() {
	paidAt := s.now
	s.tx.On("LockJobWithContract", mock.Anything, jobID).Return(s.unpaidJob("80"), nil).Once()
	s.tx.On("LockProfiles", mock.Anything, []int64{clientID, contractorID}).Return(s.profiles("100"), nil).Once()
	s.tx.On("DebitProfile", mock.Anything, clientID, decEq("80"), s.now).
		Return(&domain.Profile{ID: clientID, Balance: dec("20")}, nil).Once()
	s.tx.On("CreditProfile", mock.Anything, contractorID, decEq("80"), s.now).
		Return(&domain.Profile{ID: contractorID, Balance: dec("90")}, nil).Once()
	s.tx.On("MarkJobPaid", mock.Anything, jobID, s.now).
		Return(&domain.Job{ID: jobID, Price: dec("80"), Paid: true, PaymentDate: &paidAt}, nil).Once()

	job, err := s.service.PayForJob(s.ctx, clientID, jobID)

	s.Require().NoError(err)
	s.True(job.Paid)
	s.Require().NotNil(job.PaymentDate)
	s.True(s.now.Equal(*job.PaymentDate))
	s.Equal(1, s.uow.Commits)
	s.tx.AssertExpectations(s.T())
}

func (s *JobServiceTestSuite) TestPayForJob_JobNotFound() {
	s.tx.On("LockJobWithContract", mock.Anything, jobID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.PayForJob(s.ctx, clientID, jobID)

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.Equal(1, s.uow.Rollbacks)
	s.tx.AssertNotCalled(s.T(), "DebitProfile", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *JobServiceTestSuite) TestPayForJob_AlreadyPaidIsNotFound() {
	paidAt := s.now.Add(-time.Hour)
	job := s.unpaidJob("80")
	job.Paid = true
	job.PaymentDate = &paidAt
	s.tx.On("LockJobWithContract", mock.Anything, jobID).Return(job, nil).Once()

	_, err := s.service.PayForJob(s.ctx, clientID, jobID)

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.tx.AssertNotCalled(s.T(), "LockProfiles", mock.Anything, mock.Anything)
}

func (s *JobServiceTestSuite) TestPayForJob_OnlyClientMayPay() {
	for _, caller := range []int64{contractorID, outsiderID} {
		s.Run("caller", func() {
			s.SetupTest()
			s.tx.On("LockJobWithContract", mock.Anything, jobID).Return(s.unpaidJob("80"), nil).Once()

			_, err := s.service.PayForJob(s.ctx, caller, jobID)

			s.ErrorIs(err, apperrors.ErrForbidden)
			s.tx.AssertNotCalled(s.T(), "DebitProfile", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			s.tx.AssertNotCalled(s.T(), "CreditProfile", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func (s *JobServiceTestSuite) TestPayForJob_InsufficientFunds() {
	s.tx.On("LockJobWithContract", mock.Anything, jobID).Return(s.unpaidJob("80"), nil).Once()
	s.tx.On("LockProfiles", mock.Anything, []int64{clientID, contractorID}).Return(s.profiles("79.99"), nil).Once()

	_, err := s.service.PayForJob(s.ctx, clientID, jobID)

	s.ErrorIs(err, apperrors.ErrInsufficientFunds)
	s.Equal(1, s.uow.Rollbacks)
	s.tx.AssertNotCalled(s.T(), "DebitProfile", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *JobServiceTestSuite) TestPayForJob_ExactBalanceIsEnough() {
	s.tx.On("LockJobWithContract", mock.Anything, jobID).Return(s.unpaidJob("80.00"), nil).Once()
	s.tx.On("LockProfiles", mock.Anything, []int64{clientID, contractorID}).Return(s.profiles("80"), nil).Once()
	s.tx.On("DebitProfile", mock.Anything, clientID, decEq("80"), s.now).Return(&domain.Profile{ID: clientID}, nil).Once()
	s.tx.On("CreditProfile", mock.Anything, contractorID, decEq("80"), s.now).Return(&domain.Profile{ID: contractorID}, nil).Once()
	s.tx.On("MarkJobPaid", mock.Anything, jobID, s.now).Return(&domain.Job{ID: jobID, Paid: true}, nil).Once()

	_, err := s.service.PayForJob(s.ctx, clientID, jobID)

	s.NoError(err)
}

func (s *JobServiceTestSuite) TestPayForJob_StoreFailureIsWrapped() {
	storeErr := apperrors.StoreFailure("failed to credit profile", errors.New("connection reset"))
	s.tx.On("LockJobWithContract", mock.Anything, jobID).Return(s.unpaidJob("80"), nil).Once()
	s.tx.On("LockProfiles", mock.Anything, []int64{clientID, contractorID}).Return(s.profiles("100"), nil).Once()
	s.tx.On("DebitProfile", mock.Anything, clientID, decEq("80"), s.now).Return(&domain.Profile{ID: clientID}, nil).Once()
	s.tx.On("CreditProfile", mock.Anything, contractorID, decEq("80"), s.now).Return(nil, storeErr).Once()

	_, err := s.service.PayForJob(s.ctx, clientID, jobID)

	s.ErrorIs(err, apperrors.ErrStoreFailure)
	s.ErrorIs(err, storeErr)
	s.Equal(1, s.uow.Rollbacks)
	s.tx.AssertNotCalled(s.T(), "MarkJobPaid", mock.Anything, mock.Anything, mock.Anything)
}

func (s *JobServiceTestSuite) TestListUnpaidJobs_FiltersToCaller() {
	own := *s.unpaidJob("80")
	foreign := domain.JobWithContract{
		Job:      domain.Job{ID: 9, Price: dec("5")},
		Contract: domain.Contract{ID: 9, Status: domain.ContractInProgress, ClientID: 40, ContractorID: 41},
	}
	s.jobRepo.On("ListUnpaidJobsInProgressForParty", mock.Anything, clientID).
		Return([]domain.JobWithContract{own, foreign}, nil).Once()

	jobs, err := s.service.ListUnpaidJobs(s.ctx, clientID)

	s.Require().NoError(err)
	s.Require().Len(jobs, 1)
	s.Equal(jobID, jobs[0].ID)
}

func (s *JobServiceTestSuite) TestListUnpaidJobs_RepositoryError() {
	s.jobRepo.On("ListUnpaidJobsInProgressForParty", mock.Anything, clientID).
		Return(nil, apperrors.StoreFailure("failed to list unpaid jobs", errors.New("timeout"))).Once()

	_, err := s.service.ListUnpaidJobs(s.ctx, clientID)

	s.ErrorIs(err, apperrors.ErrStoreFailure)
}

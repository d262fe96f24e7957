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

type ReportingServiceTestSuite struct {
	suite.Suite
	repo    *MockReportingRepository
	service portssvc.ReportingService
	ctx     context.Context
	start   time.Time
	end     time.Time
}

func (s *ReportingServiceTestSuite) SetupTest() {
	s.repo = new(MockReportingRepository)
	s.service = services.NewReportingService(s.repo, services.WithBestClientsLimits(2, 10))
	s.ctx = context.Background()
	s.start = time.Date(2020, 8, 10, 0, 0, 0, 0, time.UTC)
	s.end = time.Date(2020, 8, 17, 23, 59, 59, 0, time.UTC)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}

func (s *ReportingServiceTestSuite) TestBestProfession() {
	s.repo.On("SumPaidByContractorProfession", mock.Anything, s.start, s.end).Return([]domain.ProfessionEarnings{
		{Profession: "Programmer", Total: dec("2683")},
		{Profession: "Musician", Total: dec("221")},
	}, nil).Once()

	best, err := s.service.BestProfession(s.ctx, s.start, s.end)

	s.Require().NoError(err)
	s.Equal("Programmer", best.Profession)
	s.True(dec("2683").Equal(best.Total))
}

func (s *ReportingServiceTestSuite) TestBestProfession_TieGoesToAlphabeticallyFirst() {
	s.repo.On("SumPaidByContractorProfession", mock.Anything, s.start, s.end).Return([]domain.ProfessionEarnings{
		{Profession: "Wizard", Total: dec("300")},
		{Profession: "Fighter", Total: dec("300.00")},
		{Profession: "Musician", Total: dec("120")},
	}, nil).Once()

	best, err := s.service.BestProfession(s.ctx, s.start, s.end)

	s.Require().NoError(err)
	s.Equal("Fighter", best.Profession)
}

func (s *ReportingServiceTestSuite) TestBestProfession_EmptyIsNotAnError() {
	s.repo.On("SumPaidByContractorProfession", mock.Anything, s.start, s.end).Return([]domain.ProfessionEarnings{}, nil).Once()

	best, err := s.service.BestProfession(s.ctx, s.start, s.end)

	s.NoError(err)
	s.Nil(best)
}

func (s *ReportingServiceTestSuite) TestBestProfession_InvertedRange() {
	_, err := s.service.BestProfession(s.ctx, s.end, s.start)

	s.ErrorIs(err, apperrors.ErrValidation)
	s.repo.AssertNotCalled(s.T(), "SumPaidByContractorProfession", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ReportingServiceTestSuite) TestBestProfession_StoreFailure() {
	s.repo.On("SumPaidByContractorProfession", mock.Anything, s.start, s.end).
		Return(nil, apperrors.StoreFailure("failed to aggregate", errors.New("io"))).Once()

	_, err := s.service.BestProfession(s.ctx, s.start, s.end)

	s.ErrorIs(err, apperrors.ErrStoreFailure)
}

func (s *ReportingServiceTestSuite) TestBestClients_DefaultLimit() {
	s.repo.On("SumPaidByClient", mock.Anything, s.start, s.end, 2).Return([]domain.ClientPayment{
		{ProfileID: 4, FullName: "Ash Kethcum", TotalPaid: dec("2020")},
		{ProfileID: 1, FullName: "Harry Potter", TotalPaid: dec("442")},
	}, nil).Once()

	rows, err := s.service.BestClients(s.ctx, s.start, s.end, 0)

	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	s.Equal(int64(4), rows[0].ProfileID)
	s.repo.AssertExpectations(s.T())
}

func (s *ReportingServiceTestSuite) TestBestClients_OrdersAndTruncates() {
	s.repo.On("SumPaidByClient", mock.Anything, s.start, s.end, 3).Return([]domain.ClientPayment{
		{ProfileID: 2, FullName: "Mr Robot", TotalPaid: dec("442")},
		{ProfileID: 3, FullName: "John Snow", TotalPaid: dec("200")},
		{ProfileID: 1, FullName: "Harry Potter", TotalPaid: dec("442.00")},
		{ProfileID: 4, FullName: "Ash Kethcum", TotalPaid: dec("2020")},
	}, nil).Once()

	rows, err := s.service.BestClients(s.ctx, s.start, s.end, 3)

	s.Require().NoError(err)
	ids := []int64{}
	for _, r := range rows {
		ids = append(ids, r.ProfileID)
	}
	s.Equal([]int64{4, 1, 2}, ids)
}

func (s *ReportingServiceTestSuite) TestBestClients_InvalidLimit() {
	for _, limit := range []int{-1, 11} {
		_, err := s.service.BestClients(s.ctx, s.start, s.end, limit)
		s.ErrorIs(err, apperrors.ErrValidation, "limit %d", limit)
	}
	s.repo.AssertNotCalled(s.T(), "SumPaidByClient", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *ReportingServiceTestSuite) TestBestClients_EmptyIsNotAnError() {
	s.repo.On("SumPaidByClient", mock.Anything, s.start, s.end, 2).Return(nil, nil).Once()

	rows, err := s.service.BestClients(s.ctx, s.start, s.end, 0)

	s.NoError(err)
	s.Empty(rows)
}

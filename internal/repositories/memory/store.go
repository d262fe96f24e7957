// Package memory is an in-process store implementing the repository ports.
// A single mutex serializes units of work, and a failed unit restores the
// snapshot taken when it started.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/contractor_marketplace/internal/apperrors"
	"github.com/SscSPs/contractor_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/contractor_marketplace/internal/core/ports/repositories"
	"github.com/SscSPs/contractor_marketplace/internal/repositories/seed"
	"github.com/shopspring/decimal"
)

// Store keeps profiles, contracts and jobs in maps guarded by one mutex.
type Store struct {
	mu        sync.Mutex
	profiles  map[int64]domain.Profile
	contracts map[int64]domain.Contract
	jobs      map[int64]domain.Job
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		profiles:  make(map[int64]domain.Profile),
		contracts: make(map[int64]domain.Contract),
		jobs:      make(map[int64]domain.Job),
	}
}

var (
	_ portsrepo.ProfileRepositoryFacade  = (*Store)(nil)
	_ portsrepo.ContractRepositoryFacade = (*Store)(nil)
	_ portsrepo.JobRepositoryFacade      = (*Store)(nil)
	_ portsrepo.ReportingRepository      = (*Store)(nil)
	_ portsrepo.UnitOfWork               = (*Store)(nil)
)

// Load upserts every record of the dataset.
func (s *Store) Load(data seed.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range data.Profiles {
		s.profiles[p.ID] = p
	}
	for _, c := range data.Contracts {
		s.contracts[c.ID] = c
	}
	for _, j := range data.Jobs {
		s.jobs[j.ID] = cloneJob(j)
	}
}

// Repositories exposes the store through every repository port.
func (s *Store) Repositories() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ProfileRepo:   s,
		ContractRepo:  s,
		JobRepo:       s,
		ReportingRepo: s,
		UnitOfWork:    s,
	}
}

func (s *Store) FindProfileByID(_ context.Context, profileID int64) (*domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[profileID]
	if !ok {
		return nil, fmt.Errorf("profile %d: %w", profileID, apperrors.ErrNotFound)
	}
	return &p, nil
}

func (s *Store) FindContractForParty(_ context.Context, contractID, profileID int64) (*domain.Contract, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.contracts[contractID]
	if !ok || !c.IsParty(profileID) {
		return nil, fmt.Errorf("contract %d: %w", contractID, apperrors.ErrNotFound)
	}
	return &c, nil
}

func (s *Store) ListActiveContractsForParty(_ context.Context, profileID int64) ([]domain.Contract, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Contract
	for _, c := range s.contracts {
		if c.IsParty(profileID) && c.IsActive() {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) FindJobWithContract(_ context.Context, jobID int64) (*domain.JobWithContract, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.jobWithContract(jobID)
}

func (s *Store) ListUnpaidJobsInProgressForParty(_ context.Context, profileID int64) ([]domain.JobWithContract, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.JobWithContract
	for _, j := range s.jobs {
		c, ok := s.contracts[j.ContractID]
		if !ok {
			continue
		}
		jwc := domain.JobWithContract{Job: cloneJob(j), Contract: c}
		if c.IsParty(profileID) && jwc.IsOutstanding() {
			out = append(out, jwc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) SumUnpaidInProgressPriceForClient(_ context.Context, clientID int64) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sumUnpaidInProgress(clientID), nil
}

// WithinTx holds the store lock for the whole of fn.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, tx portsrepo.LedgerTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles := make(map[int64]domain.Profile, len(s.profiles))
	for id, p := range s.profiles {
		profiles[id] = p
	}
	jobs := make(map[int64]domain.Job, len(s.jobs))
	for id, j := range s.jobs {
		jobs[id] = cloneJob(j)
	}

	if err := fn(ctx, &ledgerTx{store: s}); err != nil {
		s.profiles = profiles
		s.jobs = jobs
		return err
	}
	return nil
}

func (s *Store) jobWithContract(jobID int64) (*domain.JobWithContract, error) {
	j, ok := s.jobs[jobID]
	if !ok {
		return nil, fmt.Errorf("job %d: %w", jobID, apperrors.ErrNotFound)
	}
	c, ok := s.contracts[j.ContractID]
	if !ok {
		return nil, fmt.Errorf("contract %d of job %d: %w", j.ContractID, jobID, apperrors.ErrNotFound)
	}
	return &domain.JobWithContract{Job: cloneJob(j), Contract: c}, nil
}

func (s *Store) sumUnpaidInProgress(clientID int64) decimal.Decimal {
	total := decimal.Zero
	for _, j := range s.jobs {
		c, ok := s.contracts[j.ContractID]
		if !ok || j.Paid || c.ClientID != clientID || c.Status != domain.ContractInProgress {
			continue
		}
		total = total.Add(j.Price)
	}
	return total
}

func cloneJob(j domain.Job) domain.Job {
	if j.PaymentDate != nil {
		t := *j.PaymentDate
		j.PaymentDate = &t
	}
	return j
}

// paidBetween reports whether a job was paid within [start, end].
func paidBetween(j domain.Job, start, end time.Time) bool {
	return j.Paid && j.PaymentDate != nil && !j.PaymentDate.Before(start) && !j.PaymentDate.After(end)
}

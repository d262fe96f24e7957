package memory

import (
	"context"
	"sort"
	"time"

	"github.com/SscSPs/contractor_marketplace/internal/core/domain"
	"github.com/shopspring/decimal"
)

func (s *Store) SumPaidByContractorProfession(_ context.Context, start, end time.Time) ([]domain.ProfessionEarnings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	totals := make(map[string]decimal.Decimal)
	for _, j := range s.jobs {
		if !paidBetween(j, start, end) {
			continue
		}
		c, ok := s.contracts[j.ContractID]
		if !ok {
			continue
		}
		contractor, ok := s.profiles[c.ContractorID]
		if !ok {
			continue
		}
		totals[contractor.Profession] = totals[contractor.Profession].Add(j.Price)
	}

	out := make([]domain.ProfessionEarnings, 0, len(totals))
	for profession, total := range totals {
		out = append(out, domain.ProfessionEarnings{Profession: profession, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Profession < out[j].Profession
	})
	return out, nil
}

func (s *Store) SumPaidByClient(_ context.Context, start, end time.Time, limit int) ([]domain.ClientPayment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	totals := make(map[int64]decimal.Decimal)
	for _, j := range s.jobs {
		if !paidBetween(j, start, end) {
			continue
		}
		c, ok := s.contracts[j.ContractID]
		if !ok {
			continue
		}
		totals[c.ClientID] = totals[c.ClientID].Add(j.Price)
	}

	out := make([]domain.ClientPayment, 0, len(totals))
	for clientID, total := range totals {
		client, ok := s.profiles[clientID]
		if !ok {
			continue
		}
		out = append(out, domain.ClientPayment{ProfileID: clientID, FullName: client.FullName(), TotalPaid: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].TotalPaid.Equal(out[j].TotalPaid) {
			return out[i].TotalPaid.GreaterThan(out[j].TotalPaid)
		}
		return out[i].ProfileID < out[j].ProfileID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

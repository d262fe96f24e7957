// Package seed holds fixed data sets used to populate a store at startup.
package seed

import (
	"time"

	"github.com/SscSPs/contractor_marketplace/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Dataset is a self-consistent set of profiles, contracts and jobs.
type Dataset struct {
	Profiles  []domain.Profile
	Contracts []domain.Contract
	Jobs      []domain.Job
}

func profile(id int64, first, last, profession, balance string, t domain.ProfileType) domain.Profile {
	return domain.Profile{
		ID:         id,
		FirstName:  first,
		LastName:   last,
		Profession: profession,
		Balance:    decimal.RequireFromString(balance),
		Type:       t,
	}
}

func contract(id int64, status domain.ContractStatus, clientID, contractorID int64) domain.Contract {
	return domain.Contract{
		ID:           id,
		Terms:        "bla bla bla",
		Status:       status,
		ClientID:     clientID,
		ContractorID: contractorID,
	}
}

func job(id, contractID int64, price string, paidAt string) domain.Job {
	j := domain.Job{
		ID:          id,
		ContractID:  contractID,
		Description: "work",
		Price:       decimal.RequireFromString(price),
	}
	if paidAt != "" {
		t, err := time.Parse(time.RFC3339, paidAt)
		if err != nil {
			panic(err)
		}
		j.Paid = true
		j.PaymentDate = &t
	}
	return j
}

// Demo returns a small marketplace with clients, contractors, open work and paid history.
func Demo() Dataset {
	return Dataset{
		Profiles: []domain.Profile{
			profile(1, "Harry", "Potter", "Wizard", "1150", domain.ClientProfile),
			profile(2, "Mr", "Robot", "Hacker", "231.11", domain.ClientProfile),
			profile(3, "John", "Snow", "Knows nothing", "451.3", domain.ClientProfile),
			profile(4, "Ash", "Kethcum", "Pokemon master", "1.3", domain.ClientProfile),
			profile(5, "John", "Lenon", "Musician", "64", domain.ContractorProfile),
			profile(6, "Linus", "Torvalds", "Programmer", "1214", domain.ContractorProfile),
			profile(7, "Alan", "Turing", "Programmer", "22", domain.ContractorProfile),
			profile(8, "Aragorn", "II Elessar Telcontarvalds", "Fighter", "314", domain.ContractorProfile),
		},
		Contracts: []domain.Contract{
			contract(1, domain.ContractTerminated, 1, 5),
			contract(2, domain.ContractInProgress, 1, 6),
			contract(3, domain.ContractInProgress, 2, 6),
			contract(4, domain.ContractInProgress, 2, 7),
			contract(5, domain.ContractNew, 3, 8),
			contract(6, domain.ContractInProgress, 3, 7),
			contract(7, domain.ContractInProgress, 4, 7),
			contract(8, domain.ContractInProgress, 4, 6),
			contract(9, domain.ContractInProgress, 4, 8),
		},
		Jobs: []domain.Job{
			job(1, 1, "200", ""),
			job(2, 2, "201", ""),
			job(3, 3, "202", ""),
			job(4, 4, "200", ""),
			job(5, 7, "200", ""),
			job(6, 7, "2020", "2020-08-15T19:11:26Z"),
			job(7, 2, "200", "2020-08-15T19:11:26Z"),
			job(8, 3, "200", "2020-08-16T19:11:26Z"),
			job(9, 1, "200", "2020-08-17T19:11:26Z"),
			job(10, 5, "200", "2020-08-17T19:11:26Z"),
			job(11, 1, "21", "2020-08-10T19:11:26Z"),
			job(12, 2, "21", "2020-08-15T19:11:26Z"),
			job(13, 3, "121", "2020-08-15T19:11:26Z"),
			job(14, 3, "121", "2020-08-14T23:11:26Z"),
		},
	}
}

package pgsql

import (
	portsrepo "github.com/SscSPs/contractor_marketplace/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ProfileRepo:   newPgxProfileRepository(dbPool),
		ContractRepo:  newPgxContractRepository(dbPool),
		JobRepo:       newPgxJobRepository(dbPool),
		ReportingRepo: newReportingRepository(dbPool),
		UnitOfWork:    newPgxUnitOfWork(dbPool),
	}
}

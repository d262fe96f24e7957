package services

import (
	portsrepo "github.com/SscSPs/contractor_marketplace/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/contractor_marketplace/internal/core/ports/services"
	"github.com/SscSPs/contractor_marketplace/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Profile: NewProfileService(
			repos.ProfileRepo,
			repos.UnitOfWork,
			WithDepositClientsOnly(cfg.DepositClientsOnly),
		),
		Contract: NewContractService(repos.ContractRepo),
		Job:      NewJobService(repos.JobRepo, repos.UnitOfWork),
		Reporting: NewReportingService(
			repos.ReportingRepo,
			WithBestClientsLimits(cfg.BestClientsDefaultLimit, cfg.BestClientsMaxLimit),
		),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ProfileSvcFacade  = (*profileService)(nil)
	_ portssvc.ContractSvcFacade = (*contractService)(nil)
	_ portssvc.JobSvcFacade      = (*jobService)(nil)
	_ portssvc.ReportingService  = (*reportingService)(nil)
)

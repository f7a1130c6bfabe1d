package services

import (
	portsrepo "github.com/lukemcknight/reserve/internal/core/ports/repositories"
	portssvc "github.com/lukemcknight/reserve/internal/core/ports/services"
	"github.com/lukemcknight/reserve/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The rate service must exist first; the estimator resolves state rates through it.
	container.StateRate = NewStateRateService(repos.StateRateRepo)
	container.Tax = NewTaxService(container.StateRate)

	return container
}

// Compile-time interface implementation checks.
var (
	_ portssvc.StateRateSvcFacade = (*StateRateService)(nil)
	_ portssvc.TaxSvcFacade       = (*TaxService)(nil)
)

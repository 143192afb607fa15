package services

import (
	portsclients "github.com/nttbank/account-service/internal/core/ports/clients"
	portsevents "github.com/nttbank/account-service/internal/core/ports/events"
	portsrepo "github.com/nttbank/account-service/internal/core/ports/repositories"
	portssvc "github.com/nttbank/account-service/internal/core/ports/services"
	"github.com/nttbank/account-service/internal/platform/config"
	"github.com/nttbank/account-service/internal/platform/metrics"
)

// Collaborators groups the outbound dependencies the services need besides the repositories.
type Collaborators struct {
	Customers    portsclients.CustomerClient
	Credits      portsclients.CreditClient
	Transactions portsclients.TransactionClient
	Publisher    portsevents.Publisher
	Metrics      *metrics.Metrics
	Tasks        *BackgroundTasks
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, deps Collaborators) *portssvc.ServiceContainer {
	if deps.Tasks == nil {
		deps.Tasks = NewBackgroundTasks()
	}

	// The engine owns creation; the account service delegates to it.
	engine := NewEligibilityEngine(
		repos.AccountRepo,
		deps.Customers,
		deps.Credits,
		deps.Transactions,
		WithBackgroundTasks(deps.Tasks),
		WithEnginePublisher(deps.Publisher),
		WithMetrics(deps.Metrics),
		WithDefaultCurrency(cfg.DefaultCurrency),
		WithOpeningTransactionTimeout(cfg.OpeningTxTimeout),
	)

	return &portssvc.ServiceContainer{
		Account: NewAccountService(
			repos.AccountRepo,
			engine,
			WithDeleteMode(DeleteMode(cfg.AccountDeleteMode)),
			WithAccountEvents(deps.Publisher, deps.Tasks),
		),
		Customer: NewCustomerService(deps.Customers),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AccountSvcFacade = (*accountService)(nil)
	_ portssvc.CustomerSvc      = (*customerService)(nil)
)

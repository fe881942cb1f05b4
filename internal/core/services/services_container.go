package services

import (
	portsrepo "github.com/SscSPs/ledger_dashboard_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_dashboard_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		TransactionQuery: NewTransactionQueryService(repos.TransactionRepo),
		Seed:             NewSeedService(repos.TransactionRepo),
	}
}

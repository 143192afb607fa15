package services

import (
	"context"

	"github.com/nttbank/account-service/internal/core/domain"
	"github.com/nttbank/account-service/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves every account.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// ListAccountsByCustomer retrieves the accounts a customer owns or holds.
	ListAccountsByCustomer(ctx context.Context, customerID string) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount runs the eligibility rules and opens the account when they pass.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error)

	// UpdateAccount replaces every mutable field of an existing account.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)

	// PatchAccount merges the supplied fields into an existing account.
	PatchAccount(ctx context.Context, accountID string, patch domain.AccountPatch, userID string) (*domain.Account, error)

	// RemoveAccount deactivates (or deletes, depending on configuration) an account and returns it.
	RemoveAccount(ctx context.Context, accountID string, userID string) (*domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces
// This is a facade for clients that need access to all operations
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}

// AccountCreator is the eligibility engine's entry point.
type AccountCreator interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error)
}

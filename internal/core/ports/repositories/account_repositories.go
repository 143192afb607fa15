package repositories

import (
	"context"

	"github.com/nttbank/account-service/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	// Returns apperrors.ErrNotFound when no account has the id.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves every stored account in insertion order.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// ListAccountsByCustomer retrieves the accounts a customer owns or holds, in insertion order.
	ListAccountsByCustomer(ctx context.Context, customerID string) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// InsertAccount persists a new account.
	// Returns apperrors.ErrDuplicate on an id conflict and apperrors.ErrDuplicateAccountNumber on a number conflict.
	InsertAccount(ctx context.Context, account domain.Account) error

	// SaveAccount upserts the account by id.
	SaveAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes the account and returns the removed record.
	DeleteAccount(ctx context.Context, accountID string) (*domain.Account, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
// This is a facade for clients that need access to all operations
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}

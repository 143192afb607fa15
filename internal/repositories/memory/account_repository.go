// Package memory keeps accounts in process memory. It backs local runs without a database and the service tests.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/nttbank/account-service/internal/apperrors"
	"github.com/nttbank/account-service/internal/core/domain"
	portsrepo "github.com/nttbank/account-service/internal/core/ports/repositories"
)

// AccountRepository stores accounts in a map guarded by a RWMutex.
// Account numbers are kept unique, matching the database's unique index.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]domain.Account
	numbers  map[string]string // account number -> account id
	order    []string
}

var _ portsrepo.AccountRepositoryFacade = (*AccountRepository)(nil)

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[string]domain.Account),
		numbers:  make(map[string]string),
	}
}

// NewRepositoryProvider wires the in-memory store into a provider.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{AccountRepo: NewAccountRepository()}
}

func (r *AccountRepository) InsertAccount(ctx context.Context, account domain.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[account.AccountID]; exists {
		return fmt.Errorf("%w: account with ID %s already exists", apperrors.ErrDuplicate, account.AccountID)
	}
	if _, taken := r.numbers[account.AccountNumber]; taken {
		return fmt.Errorf("account %s: %w", account.AccountID, apperrors.ErrDuplicateAccountNumber)
	}

	r.accounts[account.AccountID] = clone(account)
	r.numbers[account.AccountNumber] = account.AccountID
	r.order = append(r.order, account.AccountID)
	return nil
}

func (r *AccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if owner, taken := r.numbers[account.AccountNumber]; taken && owner != account.AccountID {
		return fmt.Errorf("account %s: %w", account.AccountID, apperrors.ErrDuplicateAccountNumber)
	}

	previous, exists := r.accounts[account.AccountID]
	if exists {
		delete(r.numbers, previous.AccountNumber)
		// creation audit is immutable, as in the database upsert
		account.CreatedAt = previous.CreatedAt
		account.CreatedBy = previous.CreatedBy
	} else {
		r.order = append(r.order, account.AccountID)
	}
	r.accounts[account.AccountID] = clone(account)
	r.numbers[account.AccountNumber] = account.AccountID
	return nil
}

func (r *AccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	acc, ok := r.accounts[accountID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	out := clone(acc)
	return &out, nil
}

func (r *AccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return r.list(ctx, func(domain.Account) bool { return true })
}

func (r *AccountRepository) ListAccountsByCustomer(ctx context.Context, customerID string) ([]domain.Account, error) {
	return r.list(ctx, func(a domain.Account) bool { return a.IsRelatedTo(customerID) })
}

func (r *AccountRepository) DeleteAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	acc, ok := r.accounts[accountID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	delete(r.accounts, accountID)
	delete(r.numbers, acc.AccountNumber)
	r.order = slices.DeleteFunc(r.order, func(id string) bool { return id == accountID })
	return &acc, nil
}

func (r *AccountRepository) list(ctx context.Context, keep func(domain.Account) bool) ([]domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Account, 0, len(r.order))
	for _, id := range r.order {
		if acc := r.accounts[id]; keep(acc) {
			out = append(out, clone(acc))
		}
	}
	return out, nil
}

// clone copies the slices so callers never share backing arrays with the store.
func clone(a domain.Account) domain.Account {
	a.Holders = domain.OrderedSet(a.Holders)
	a.AuthorizedSigners = domain.OrderedSet(a.AuthorizedSigners)
	return a
}

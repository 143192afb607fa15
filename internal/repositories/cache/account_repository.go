// Package cache decorates an account store with a redis read-through cache for single-account reads.
package cache

import (
	"context"
	"time"

	"github.com/nttbank/account-service/internal/core/domain"
	portsrepo "github.com/nttbank/account-service/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

const accountKeyPrefix = "account:view:"

// AccountRepository serves FindAccountByID from redis and falls back to the wrapped store,
// warming the cache on every cold read. Writes go to the store first, then refresh or evict the entry.
// Lists always hit the store.
type AccountRepository struct {
	next  portsrepo.AccountRepositoryFacade
	cache *ViewCache[domain.Account]
}

var _ portsrepo.AccountRepositoryFacade = (*AccountRepository)(nil)

func NewAccountRepository(next portsrepo.AccountRepositoryFacade, client redis.Cmdable, ttl time.Duration) *AccountRepository {
	return &AccountRepository{next: next, cache: NewViewCache[domain.Account](client, ttl)}
}

// Wrap returns provider with its account store decorated.
func Wrap(provider portsrepo.RepositoryProvider, client redis.Cmdable, ttl time.Duration) portsrepo.RepositoryProvider {
	provider.AccountRepo = NewAccountRepository(provider.AccountRepo, client, ttl)
	return provider
}

func accountKey(accountID string) string {
	return accountKeyPrefix + accountID
}

func (r *AccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	if acc, ok := r.cache.Get(ctx, accountKey(accountID)); ok {
		return acc, nil
	}
	acc, err := r.next.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	r.cache.Set(ctx, accountKey(accountID), acc)
	return acc, nil
}

func (r *AccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return r.next.ListAccounts(ctx)
}

func (r *AccountRepository) ListAccountsByCustomer(ctx context.Context, customerID string) ([]domain.Account, error) {
	return r.next.ListAccountsByCustomer(ctx, customerID)
}

func (r *AccountRepository) InsertAccount(ctx context.Context, account domain.Account) error {
	if err := r.next.InsertAccount(ctx, account); err != nil {
		return err
	}
	r.cache.Set(ctx, accountKey(account.AccountID), &account)
	return nil
}

// SaveAccount evicts the entry; the store may keep columns (creation audit) the caller did not send.
func (r *AccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	if err := r.next.SaveAccount(ctx, account); err != nil {
		return err
	}
	r.cache.Delete(ctx, accountKey(account.AccountID))
	return nil
}

func (r *AccountRepository) DeleteAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	acc, err := r.next.DeleteAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	r.cache.Delete(ctx, accountKey(accountID))
	return acc, nil
}

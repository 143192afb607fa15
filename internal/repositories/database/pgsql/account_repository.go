package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nttbank/account-service/internal/apperrors"
	"github.com/nttbank/account-service/internal/core/domain"
	portsrepo "github.com/nttbank/account-service/internal/core/ports/repositories"
	"github.com/nttbank/account-service/internal/models"
	"github.com/nttbank/account-service/internal/utils/mapping"
)

const (
	uniqueViolation          = "23505"
	accountNumberConstraint  = "accounts_account_number_key"
	accountSelectColumns     = `account_id, account_number, owner_customer_id, account_type, currency, amount_available, transaction_limit, commission_rate, commission_transaction_limit, commission_rate_for_transaction_limit, date_allowed_transaction, daily_average_month, is_daily_average_month, is_active, holders, authorized_signers, created_at, created_by, last_updated_at, last_updated_by`
	accountInsertPlaceholder = `$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20`
)

type PgxAccountRepository struct {
	pool *pgxpool.Pool
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{pool: pool}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func accountArgs(m models.Account) []any {
	return []any{
		m.AccountID,
		m.AccountNumber,
		m.OwnerCustomerID,
		m.AccountType,
		m.Currency,
		m.AmountAvailable,
		m.TransactionLimit,
		m.CommissionRate,
		m.CommissionTransactionLimit,
		m.CommissionRateForTransactionLimit,
		m.DateAllowedTransaction,
		m.DailyAverageMonth,
		m.IsDailyAverageMonth,
		m.IsActive,
		m.Holders,
		m.AuthorizedSigners,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	}
}

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.AccountNumber,
		&m.OwnerCustomerID,
		&m.AccountType,
		&m.Currency,
		&m.AmountAvailable,
		&m.TransactionLimit,
		&m.CommissionRate,
		&m.CommissionTransactionLimit,
		&m.CommissionRateForTransactionLimit,
		&m.DateAllowedTransaction,
		&m.DailyAverageMonth,
		&m.IsDailyAverageMonth,
		&m.IsActive,
		&m.Holders,
		&m.AuthorizedSigners,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// translateWriteError maps unique violations onto the store's duplicate errors.
func translateWriteError(err error, accountID string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		if pgErr.ConstraintName == accountNumberConstraint {
			return fmt.Errorf("account %s: %w", accountID, apperrors.ErrDuplicateAccountNumber)
		}
		return fmt.Errorf("%w: account with ID %s already exists", apperrors.ErrDuplicate, accountID)
	}
	return fmt.Errorf("failed to write account %s: %w", accountID, err)
}

// InsertAccount inserts a new account row.
func (r *PgxAccountRepository) InsertAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `INSERT INTO accounts (` + accountSelectColumns + `) VALUES (` + accountInsertPlaceholder + `);`

	if _, err := r.pool.Exec(ctx, query, accountArgs(m)...); err != nil {
		return translateWriteError(err, m.AccountID)
	}
	return nil
}

// SaveAccount upserts the account by id. The creation audit columns are kept on update.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (` + accountSelectColumns + `)
		VALUES (` + accountInsertPlaceholder + `)
		ON CONFLICT (account_id) DO UPDATE SET
			account_number = EXCLUDED.account_number,
			owner_customer_id = EXCLUDED.owner_customer_id,
			account_type = EXCLUDED.account_type,
			currency = EXCLUDED.currency,
			amount_available = EXCLUDED.amount_available,
			transaction_limit = EXCLUDED.transaction_limit,
			commission_rate = EXCLUDED.commission_rate,
			commission_transaction_limit = EXCLUDED.commission_transaction_limit,
			commission_rate_for_transaction_limit = EXCLUDED.commission_rate_for_transaction_limit,
			date_allowed_transaction = EXCLUDED.date_allowed_transaction,
			daily_average_month = EXCLUDED.daily_average_month,
			is_daily_average_month = EXCLUDED.is_daily_average_month,
			is_active = EXCLUDED.is_active,
			holders = EXCLUDED.holders,
			authorized_signers = EXCLUDED.authorized_signers,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	if _, err := r.pool.Exec(ctx, query, accountArgs(m)...); err != nil {
		return translateWriteError(err, m.AccountID)
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountSelectColumns + ` FROM accounts WHERE account_id = $1;`

	m, err := scanAccount(r.pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

// ListAccounts returns every account in insertion order.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT ` + accountSelectColumns + ` FROM accounts ORDER BY seq;`
	return r.queryAccounts(ctx, query)
}

// ListAccountsByCustomer returns the accounts the customer owns or holds, in insertion order.
func (r *PgxAccountRepository) ListAccountsByCustomer(ctx context.Context, customerID string) ([]domain.Account, error) {
	query := `SELECT ` + accountSelectColumns + ` FROM accounts WHERE owner_customer_id = $1 OR $1 = ANY(holders) ORDER BY seq;`
	return r.queryAccounts(ctx, query, customerID)
}

// DeleteAccount removes the row and returns what was deleted.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `DELETE FROM accounts WHERE account_id = $1 RETURNING ` + accountSelectColumns + `;`

	m, err := scanAccount(r.pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete account %s: %w", accountID, err)
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

func (r *PgxAccountRepository) queryAccounts(ctx context.Context, query string, args ...any) ([]domain.Account, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	ms := make([]models.Account, 0)
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return mapping.ToDomainAccountSlice(ms), nil
}

package models

import (
	"github.com/shopspring/decimal"
)

// Account is the row shape of the accounts table.
type Account struct {
	AccountID                         string          `db:"account_id"`
	AccountNumber                     string          `db:"account_number"`
	OwnerCustomerID                   string          `db:"owner_customer_id"`
	AccountType                       string          `db:"account_type"`
	Currency                          string          `db:"currency"`
	AmountAvailable                   decimal.Decimal `db:"amount_available"`
	TransactionLimit                  int             `db:"transaction_limit"`
	CommissionRate                    decimal.Decimal `db:"commission_rate"`
	CommissionTransactionLimit        int             `db:"commission_transaction_limit"`
	CommissionRateForTransactionLimit int             `db:"commission_rate_for_transaction_limit"`
	DateAllowedTransaction            int             `db:"date_allowed_transaction"`
	DailyAverageMonth                 decimal.Decimal `db:"daily_average_month"`
	IsDailyAverageMonth               bool            `db:"is_daily_average_month"`
	IsActive                          bool            `db:"is_active"`
	Holders                           []string        `db:"holders"`
	AuthorizedSigners                 []string        `db:"authorized_signers"`
	AuditFields
}

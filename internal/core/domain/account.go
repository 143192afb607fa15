package domain

import (
	"slices"

	"github.com/shopspring/decimal"
)

// AccountType defines the banking product of an account.
type AccountType string

const (
	Savings   AccountType = "SAVINGS"
	Current   AccountType = "CURRENT"
	FixedTerm AccountType = "FIXED_TERM"
)

// IsValid reports whether t is one of the known account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Savings, Current, FixedTerm:
		return true
	}
	return false
}

// Account represents a bank account within the core domain.
// The owning customer is a reference; the customer entity belongs to the customer service.
type Account struct {
	AccountID                         string          `json:"id"`
	AccountNumber                     string          `json:"accountNumber"`
	OwnerCustomerID                   string          `json:"ownerCustomerId"`
	AccountType                       AccountType     `json:"accountType"`
	Currency                          string          `json:"currency"`
	AmountAvailable                   decimal.Decimal `json:"amountAvailable"`
	TransactionLimit                  int             `json:"transactionLimit"`
	CommissionRate                    decimal.Decimal `json:"commissionRate"`
	CommissionTransactionLimit        int             `json:"commissionTransactionLimit"`
	CommissionRateForTransactionLimit int             `json:"commissionRateForTransactionLimit"`
	DateAllowedTransaction            int             `json:"dateAllowedTransaction"`
	DailyAverageMonth                 decimal.Decimal `json:"dailyAverageMonth"`
	IsDailyAverageMonth               bool            `json:"isDailyAverageMonth"`
	IsActive                          bool            `json:"active"`
	Holders                           []string        `json:"holders"`
	AuthorizedSigners                 []string        `json:"authorizedSigners"`
	AuditFields
}

// HasHolder reports whether customerID is one of the account holders.
func (a *Account) HasHolder(customerID string) bool {
	return slices.Contains(a.Holders, customerID)
}

// IsRelatedTo reports whether the customer owns or holds the account.
func (a *Account) IsRelatedTo(customerID string) bool {
	return a.OwnerCustomerID == customerID || a.HasHolder(customerID)
}

// OrderedSet returns ids with blanks and repeats removed, keeping first-seen order.
// It never returns nil so lists serialize as [] rather than null.
func OrderedSet(ids ...[]string) []string {
	out := []string{}
	seen := make(map[string]struct{})
	for _, list := range ids {
		for _, id := range list {
			if id == "" {
				continue
			}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

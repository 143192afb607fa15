package domain

import "github.com/shopspring/decimal"

// AccountPatch carries a partial account update. A nil field means "not supplied, leave unchanged".
// The identity is not part of the patch and can never be overwritten through it.
type AccountPatch struct {
	AccountNumber                     *string          `json:"accountNumber,omitempty"`
	OwnerCustomerID                   *string          `json:"ownerCustomerId,omitempty"`
	AccountType                       *AccountType     `json:"accountType,omitempty"`
	Currency                          *string          `json:"currency,omitempty"`
	AmountAvailable                   *decimal.Decimal `json:"amountAvailable,omitempty"`
	TransactionLimit                  *int             `json:"transactionLimit,omitempty"`
	CommissionRate                    *decimal.Decimal `json:"commissionRate,omitempty"`
	CommissionTransactionLimit        *int             `json:"commissionTransactionLimit,omitempty"`
	CommissionRateForTransactionLimit *int             `json:"commissionRateForTransactionLimit,omitempty"`
	DateAllowedTransaction            *int             `json:"dateAllowedTransaction,omitempty"`
	DailyAverageMonth                 *decimal.Decimal `json:"dailyAverageMonth,omitempty"`
	IsDailyAverageMonth               *bool            `json:"isDailyAverageMonth,omitempty"`
	IsActive                          *bool            `json:"active,omitempty"`
	Holders                           *[]string        `json:"holders,omitempty"`
	AuthorizedSigners                 *[]string        `json:"authorizedSigners,omitempty"`
}

// IsEmpty reports whether the patch supplies no field at all.
func (p AccountPatch) IsEmpty() bool {
	return p == (AccountPatch{})
}

// ApplyTo merges every supplied field into a and reports whether anything was supplied.
// New fields on Account must be added here explicitly.
func (p AccountPatch) ApplyTo(a *Account) bool {
	if p.IsEmpty() {
		return false
	}
	if p.AccountNumber != nil {
		a.AccountNumber = *p.AccountNumber
	}
	if p.OwnerCustomerID != nil {
		a.OwnerCustomerID = *p.OwnerCustomerID
	}
	if p.AccountType != nil {
		a.AccountType = *p.AccountType
	}
	if p.Currency != nil {
		a.Currency = *p.Currency
	}
	if p.AmountAvailable != nil {
		a.AmountAvailable = *p.AmountAvailable
	}
	if p.TransactionLimit != nil {
		a.TransactionLimit = *p.TransactionLimit
	}
	if p.CommissionRate != nil {
		a.CommissionRate = *p.CommissionRate
	}
	if p.CommissionTransactionLimit != nil {
		a.CommissionTransactionLimit = *p.CommissionTransactionLimit
	}
	if p.CommissionRateForTransactionLimit != nil {
		a.CommissionRateForTransactionLimit = *p.CommissionRateForTransactionLimit
	}
	if p.DateAllowedTransaction != nil {
		a.DateAllowedTransaction = *p.DateAllowedTransaction
	}
	if p.DailyAverageMonth != nil {
		a.DailyAverageMonth = *p.DailyAverageMonth
	}
	if p.IsDailyAverageMonth != nil {
		a.IsDailyAverageMonth = *p.IsDailyAverageMonth
	}
	if p.IsActive != nil {
		a.IsActive = *p.IsActive
	}
	if p.Holders != nil {
		a.Holders = OrderedSet(*p.Holders)
	}
	if p.AuthorizedSigners != nil {
		a.AuthorizedSigners = OrderedSet(*p.AuthorizedSigners)
	}
	return true
}

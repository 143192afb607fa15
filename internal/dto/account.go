package dto

import (
	"time"

	"github.com/nttbank/account-service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to open a new account.
type CreateAccountRequest struct {
	OwnerCustomerID   string             `json:"ownerCustomerId" validate:"required,customerref"`
	AccountType       domain.AccountType `json:"accountType" validate:"required,accounttype"`
	Holders           []string           `json:"holders" validate:"omitempty,dive,customerref"`
	AuthorizedSigners []string           `json:"authorizedSigners" validate:"omitempty,dive,customerref"`
	OpeningAmount     decimal.Decimal    `json:"openingAmount" validate:"gte=0"`

	// Optional product parameters. Zero when omitted.
	TransactionLimit                  int             `json:"transactionLimit" validate:"gte=0"`
	CommissionRate                    decimal.Decimal `json:"commissionRate"`
	CommissionTransactionLimit        int             `json:"commissionTransactionLimit" validate:"gte=0"`
	CommissionRateForTransactionLimit int             `json:"commissionRateForTransactionLimit" validate:"gte=0"`
	DateAllowedTransaction            int             `json:"dateAllowedTransaction" validate:"gte=0,lte=31"`
}

// UpdateAccountRequest replaces every mutable field of an account.
type UpdateAccountRequest struct {
	AccountNumber                     string             `json:"accountNumber" validate:"required"`
	OwnerCustomerID                   string             `json:"ownerCustomerId" validate:"required,customerref"`
	AccountType                       domain.AccountType `json:"accountType" validate:"required,accounttype"`
	Currency                          string             `json:"currency" validate:"required"`
	AmountAvailable                   decimal.Decimal    `json:"amountAvailable" validate:"gte=0"`
	TransactionLimit                  int                `json:"transactionLimit" validate:"gte=0"`
	CommissionRate                    decimal.Decimal    `json:"commissionRate"`
	CommissionTransactionLimit        int                `json:"commissionTransactionLimit" validate:"gte=0"`
	CommissionRateForTransactionLimit int                `json:"commissionRateForTransactionLimit" validate:"gte=0"`
	DateAllowedTransaction            int                `json:"dateAllowedTransaction" validate:"gte=0,lte=31"`
	DailyAverageMonth                 decimal.Decimal    `json:"dailyAverageMonth"`
	IsDailyAverageMonth               bool               `json:"isDailyAverageMonth"`
	IsActive                          bool               `json:"active"`
	Holders                           []string           `json:"holders" validate:"omitempty,dive,customerref"`
	AuthorizedSigners                 []string           `json:"authorizedSigners" validate:"omitempty,dive,customerref"`
}

// PatchAccountRequest carries a partial update. Omitted or null fields are left unchanged.
type PatchAccountRequest struct {
	AccountNumber                     *string             `json:"accountNumber" validate:"omitempty,min=1"`
	OwnerCustomerID                   *string             `json:"ownerCustomerId" validate:"omitempty,customerref"`
	AccountType                       *domain.AccountType `json:"accountType" validate:"omitempty,accounttype"`
	Currency                          *string             `json:"currency" validate:"omitempty,min=1"`
	AmountAvailable                   *decimal.Decimal    `json:"amountAvailable" validate:"omitempty,gte=0"`
	TransactionLimit                  *int                `json:"transactionLimit" validate:"omitempty,gte=0"`
	CommissionRate                    *decimal.Decimal    `json:"commissionRate"`
	CommissionTransactionLimit        *int                `json:"commissionTransactionLimit" validate:"omitempty,gte=0"`
	CommissionRateForTransactionLimit *int                `json:"commissionRateForTransactionLimit" validate:"omitempty,gte=0"`
	DateAllowedTransaction            *int                `json:"dateAllowedTransaction" validate:"omitempty,gte=0,lte=31"`
	DailyAverageMonth                 *decimal.Decimal    `json:"dailyAverageMonth"`
	IsDailyAverageMonth               *bool               `json:"isDailyAverageMonth"`
	IsActive                          *bool               `json:"active"`
	Holders                           *[]string           `json:"holders"`
	AuthorizedSigners                 *[]string           `json:"authorizedSigners"`
}

// ToAccountPatch converts the request into the domain patch object.
func (r PatchAccountRequest) ToAccountPatch() domain.AccountPatch {
	return domain.AccountPatch{
		AccountNumber:                     r.AccountNumber,
		OwnerCustomerID:                   r.OwnerCustomerID,
		AccountType:                       r.AccountType,
		Currency:                          r.Currency,
		AmountAvailable:                   r.AmountAvailable,
		TransactionLimit:                  r.TransactionLimit,
		CommissionRate:                    r.CommissionRate,
		CommissionTransactionLimit:        r.CommissionTransactionLimit,
		CommissionRateForTransactionLimit: r.CommissionRateForTransactionLimit,
		DateAllowedTransaction:            r.DateAllowedTransaction,
		DailyAverageMonth:                 r.DailyAverageMonth,
		IsDailyAverageMonth:               r.IsDailyAverageMonth,
		IsActive:                          r.IsActive,
		Holders:                           r.Holders,
		AuthorizedSigners:                 r.AuthorizedSigners,
	}
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	AccountID                         string             `json:"id"`
	AccountNumber                     string             `json:"accountNumber"`
	OwnerCustomerID                   string             `json:"ownerCustomerId"`
	AccountType                       domain.AccountType `json:"accountType"`
	Currency                          string             `json:"currency"`
	AmountAvailable                   decimal.Decimal    `json:"amountAvailable" validate:"gte=0"`
	TransactionLimit                  int                `json:"transactionLimit"`
	CommissionRate                    decimal.Decimal    `json:"commissionRate"`
	CommissionTransactionLimit        int                `json:"commissionTransactionLimit"`
	CommissionRateForTransactionLimit int                `json:"commissionRateForTransactionLimit"`
	DateAllowedTransaction            int                `json:"dateAllowedTransaction"`
	DailyAverageMonth                 decimal.Decimal    `json:"dailyAverageMonth"`
	IsDailyAverageMonth               bool               `json:"isDailyAverageMonth"`
	IsActive                          bool               `json:"active"`
	Holders                           []string           `json:"holders"`
	AuthorizedSigners                 []string           `json:"authorizedSigners"`
	CreatedAt                         time.Time          `json:"createdAt"`
	CreatedBy                         string             `json:"createdBy"`
	LastUpdatedAt                     time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy                     string             `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:                         acc.AccountID,
		AccountNumber:                     acc.AccountNumber,
		OwnerCustomerID:                   acc.OwnerCustomerID,
		AccountType:                       acc.AccountType,
		Currency:                          acc.Currency,
		AmountAvailable:                   acc.AmountAvailable,
		TransactionLimit:                  acc.TransactionLimit,
		CommissionRate:                    acc.CommissionRate,
		CommissionTransactionLimit:        acc.CommissionTransactionLimit,
		CommissionRateForTransactionLimit: acc.CommissionRateForTransactionLimit,
		DateAllowedTransaction:            acc.DateAllowedTransaction,
		DailyAverageMonth:                 acc.DailyAverageMonth,
		IsDailyAverageMonth:               acc.IsDailyAverageMonth,
		IsActive:                          acc.IsActive,
		Holders:                           domain.OrderedSet(acc.Holders),
		AuthorizedSigners:                 domain.OrderedSet(acc.AuthorizedSigners),
		CreatedAt:                         acc.CreatedAt,
		CreatedBy:                         acc.CreatedBy,
		LastUpdatedAt:                     acc.LastUpdatedAt,
		LastUpdatedBy:                     acc.LastUpdatedBy,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

package mapping

import (
	"github.com/nttbank/account-service/internal/core/domain"
	"github.com/nttbank/account-service/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:                         d.AccountID,
		AccountNumber:                     d.AccountNumber,
		OwnerCustomerID:                   d.OwnerCustomerID,
		AccountType:                       string(d.AccountType),
		Currency:                          d.Currency,
		AmountAvailable:                   d.AmountAvailable,
		TransactionLimit:                  d.TransactionLimit,
		CommissionRate:                    d.CommissionRate,
		CommissionTransactionLimit:        d.CommissionTransactionLimit,
		CommissionRateForTransactionLimit: d.CommissionRateForTransactionLimit,
		DateAllowedTransaction:            d.DateAllowedTransaction,
		DailyAverageMonth:                 d.DailyAverageMonth,
		IsDailyAverageMonth:               d.IsDailyAverageMonth,
		IsActive:                          d.IsActive,
		Holders:                           domain.OrderedSet(d.Holders),
		AuthorizedSigners:                 domain.OrderedSet(d.AuthorizedSigners),
		AuditFields:                       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:                         m.AccountID,
		AccountNumber:                     m.AccountNumber,
		OwnerCustomerID:                   m.OwnerCustomerID,
		AccountType:                       domain.AccountType(m.AccountType),
		Currency:                          m.Currency,
		AmountAvailable:                   m.AmountAvailable,
		TransactionLimit:                  m.TransactionLimit,
		CommissionRate:                    m.CommissionRate,
		CommissionTransactionLimit:        m.CommissionTransactionLimit,
		CommissionRateForTransactionLimit: m.CommissionRateForTransactionLimit,
		DateAllowedTransaction:            m.DateAllowedTransaction,
		DailyAverageMonth:                 m.DailyAverageMonth,
		IsDailyAverageMonth:               m.IsDailyAverageMonth,
		IsActive:                          m.IsActive,
		Holders:                           domain.OrderedSet(m.Holders),
		AuthorizedSigners:                 domain.OrderedSet(m.AuthorizedSigners),
		AuditFields:                       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}

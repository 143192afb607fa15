package domain_test

import (
	"testing"
	"time"

	"github.com/nttbank/account-service/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func sampleAccount() domain.Account {
	return domain.Account{
		AccountID:         "acc-1",
		AccountNumber:     "1234567890123",
		OwnerCustomerID:   "c1",
		AccountType:       domain.Savings,
		Currency:          "PEN",
		AmountAvailable:   decimal.NewFromInt(10),
		TransactionLimit:  5,
		CommissionRate:    decimal.RequireFromString("0.5"),
		IsActive:          true,
		Holders:           []string{"c1"},
		AuthorizedSigners: []string{"s1"},
		AuditFields: domain.AuditFields{
			CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			CreatedBy: "system",
		},
	}
}

func TestAccountPatch_EmptyLeavesAccountUnchanged(t *testing.T) {
	acc := sampleAccount()
	before := sampleAccount()

	changed := domain.AccountPatch{}.ApplyTo(&acc)

	assert.False(t, changed)
	assert.Equal(t, before, acc)
}

func TestAccountPatch_AppliesOnlySuppliedFields(t *testing.T) {
	acc := sampleAccount()
	inactive := false
	limit := 0
	current := domain.Current
	holders := []string{"c1", "c2", "c2"}

	changed := domain.AccountPatch{
		IsActive:         &inactive,
		TransactionLimit: &limit,
		AccountType:      &current,
		Holders:          &holders,
	}.ApplyTo(&acc)

	assert.True(t, changed)
	assert.False(t, acc.IsActive)
	assert.Equal(t, 0, acc.TransactionLimit)
	assert.Equal(t, domain.Current, acc.AccountType)
	assert.Equal(t, []string{"c1", "c2"}, acc.Holders)

	assert.Equal(t, "acc-1", acc.AccountID)
	assert.Equal(t, "1234567890123", acc.AccountNumber)
	assert.Equal(t, "PEN", acc.Currency)
	assert.Equal(t, []string{"s1"}, acc.AuthorizedSigners)
	assert.True(t, decimal.NewFromInt(10).Equal(acc.AmountAvailable))
}

func TestAccountPatch_EmptyListClearsSigners(t *testing.T) {
	acc := sampleAccount()
	none := []string{}

	domain.AccountPatch{AuthorizedSigners: &none}.ApplyTo(&acc)

	assert.Empty(t, acc.AuthorizedSigners)
	assert.NotNil(t, acc.AuthorizedSigners)
}

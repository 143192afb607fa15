package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/nttbank/account-service/internal/apperrors"
	"github.com/nttbank/account-service/internal/core/domain"
	"github.com/nttbank/account-service/internal/repositories/memory"
	"github.com/stretchr/testify/suite"
)

type AccountRepositoryTestSuite struct {
	suite.Suite
	repo *memory.AccountRepository
	ctx  context.Context
}

func (s *AccountRepositoryTestSuite) SetupTest() {
	s.repo = memory.NewAccountRepository()
	s.ctx = context.Background()
}

func newAccount(id, number, owner string, holders ...string) domain.Account {
	return domain.Account{
		AccountID:       id,
		AccountNumber:   number,
		OwnerCustomerID: owner,
		AccountType:     domain.Savings,
		IsActive:        true,
		Holders:         holders,
	}
}

func (s *AccountRepositoryTestSuite) TestInsertAndFind() {
	s.Require().NoError(s.repo.InsertAccount(s.ctx, newAccount("a1", "n1", "c1")))

	got, err := s.repo.FindAccountByID(s.ctx, "a1")
	s.Require().NoError(err)
	s.Equal("n1", got.AccountNumber)

	_, err = s.repo.FindAccountByID(s.ctx, "nope")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *AccountRepositoryTestSuite) TestInsertConflicts() {
	s.Require().NoError(s.repo.InsertAccount(s.ctx, newAccount("a1", "n1", "c1")))

	err := s.repo.InsertAccount(s.ctx, newAccount("a1", "n2", "c1"))
	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.NotErrorIs(err, apperrors.ErrDuplicateAccountNumber)

	err = s.repo.InsertAccount(s.ctx, newAccount("a2", "n1", "c1"))
	s.ErrorIs(err, apperrors.ErrDuplicateAccountNumber)
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *AccountRepositoryTestSuite) TestListKeepsInsertionOrder() {
	for _, id := range []string{"a3", "a1", "a2"} {
		s.Require().NoError(s.repo.InsertAccount(s.ctx, newAccount(id, "n-"+id, "c1")))
	}

	all, err := s.repo.ListAccounts(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal([]string{"a3", "a1", "a2"}, []string{all[0].AccountID, all[1].AccountID, all[2].AccountID})
}

func (s *AccountRepositoryTestSuite) TestListByCustomerIncludesHeldAccounts() {
	s.Require().NoError(s.repo.InsertAccount(s.ctx, newAccount("a1", "n1", "c1")))
	s.Require().NoError(s.repo.InsertAccount(s.ctx, newAccount("a2", "n2", "c2", "c2", "c1")))
	s.Require().NoError(s.repo.InsertAccount(s.ctx, newAccount("a3", "n3", "c3")))

	got, err := s.repo.ListAccountsByCustomer(s.ctx, "c1")
	s.Require().NoError(err)
	s.Len(got, 2)

	none, err := s.repo.ListAccountsByCustomer(s.ctx, "c9")
	s.Require().NoError(err)
	s.NotNil(none)
	s.Empty(none)
}

func (s *AccountRepositoryTestSuite) TestSaveUpsertsAndKeepsCreationAudit() {
	acc := newAccount("a1", "n1", "c1")
	acc.CreatedBy = "creator"
	s.Require().NoError(s.repo.InsertAccount(s.ctx, acc))

	acc.IsActive = false
	acc.CreatedBy = "someone-else"
	acc.LastUpdatedBy = "editor"
	s.Require().NoError(s.repo.SaveAccount(s.ctx, acc))

	got, err := s.repo.FindAccountByID(s.ctx, "a1")
	s.Require().NoError(err)
	s.False(got.IsActive)
	s.Equal("creator", got.CreatedBy)
	s.Equal("editor", got.LastUpdatedBy)

	s.Require().NoError(s.repo.SaveAccount(s.ctx, newAccount("a2", "n2", "c1")))
	all, _ := s.repo.ListAccounts(s.ctx)
	s.Len(all, 2)
}

func (s *AccountRepositoryTestSuite) TestSaveRejectsTakenNumber() {
	s.Require().NoError(s.repo.InsertAccount(s.ctx, newAccount("a1", "n1", "c1")))
	s.Require().NoError(s.repo.InsertAccount(s.ctx, newAccount("a2", "n2", "c1")))

	err := s.repo.SaveAccount(s.ctx, newAccount("a2", "n1", "c1"))
	s.ErrorIs(err, apperrors.ErrDuplicateAccountNumber)

	// renumbering frees the old number
	s.Require().NoError(s.repo.SaveAccount(s.ctx, newAccount("a2", "n9", "c1")))
	s.NoError(s.repo.InsertAccount(s.ctx, newAccount("a3", "n2", "c1")))
}

func (s *AccountRepositoryTestSuite) TestDelete() {
	s.Require().NoError(s.repo.InsertAccount(s.ctx, newAccount("a1", "n1", "c1")))

	deleted, err := s.repo.DeleteAccount(s.ctx, "a1")
	s.Require().NoError(err)
	s.Equal("a1", deleted.AccountID)

	_, err = s.repo.DeleteAccount(s.ctx, "a1")
	s.ErrorIs(err, apperrors.ErrNotFound)

	all, _ := s.repo.ListAccounts(s.ctx)
	s.Empty(all)
}

func (s *AccountRepositoryTestSuite) TestReturnedAccountsAreCopies() {
	s.Require().NoError(s.repo.InsertAccount(s.ctx, newAccount("a1", "n1", "c1", "c1")))

	got, _ := s.repo.FindAccountByID(s.ctx, "a1")
	got.Holders[0] = "mutated"

	again, _ := s.repo.FindAccountByID(s.ctx, "a1")
	s.Equal([]string{"c1"}, again.Holders)
}

func (s *AccountRepositoryTestSuite) TestConcurrentInserts() {
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := string(rune('A'+i%26)) + string(rune('a'+i/26))
			_ = s.repo.InsertAccount(s.ctx, newAccount(id, "n"+id, "c1"))
		}(i)
	}
	wg.Wait()

	all, err := s.repo.ListAccounts(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 50)
}

func TestAccountRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AccountRepositoryTestSuite))
}

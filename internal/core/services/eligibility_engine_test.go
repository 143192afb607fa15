package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/nttbank/account-service/internal/apperrors"
	"github.com/nttbank/account-service/internal/core/domain"
	portsevents "github.com/nttbank/account-service/internal/core/ports/events"
	"github.com/nttbank/account-service/internal/core/services"
	"github.com/nttbank/account-service/internal/dto"
	"github.com/nttbank/account-service/internal/platform/metrics"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

type EligibilityEngineTestSuite struct {
	suite.Suite
	repo         *MockAccountRepository
	customers    *MockCustomerClient
	credits      *MockCreditClient
	transactions *MockTransactionClient
	tasks        *services.BackgroundTasks
	metrics      *metrics.Metrics
	numbers      []string
	engine       *services.EligibilityEngine
}

func (suite *EligibilityEngineTestSuite) SetupTest() {
	suite.repo = new(MockAccountRepository)
	suite.customers = new(MockCustomerClient)
	suite.credits = new(MockCreditClient)
	suite.transactions = new(MockTransactionClient)
	suite.tasks = services.NewBackgroundTasks()
	suite.metrics = metrics.New()
	suite.numbers = []string{"10000000000001", "10000000000002", "10000000000003", "10000000000004"}
	suite.engine = suite.newEngine()
}

func (suite *EligibilityEngineTestSuite) newEngine(opts ...services.EngineOption) *services.EligibilityEngine {
	next := 0
	gen := func() (string, error) {
		n := suite.numbers[next%len(suite.numbers)]
		next++
		return n, nil
	}
	base := []services.EngineOption{
		services.WithBackgroundTasks(suite.tasks),
		services.WithMetrics(suite.metrics),
		services.WithDefaultCurrency("PEN"),
		services.WithAccountNumberGenerator(gen),
		services.WithClock(func() time.Time { return fixedNow }),
	}
	return services.NewEligibilityEngine(suite.repo, suite.customers, suite.credits, suite.transactions, append(base, opts...)...)
}

// waitTasks drains the background runner so goroutine calls can be asserted.
func (suite *EligibilityEngineTestSuite) waitTasks() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	suite.Require().NoError(suite.tasks.Wait(ctx))
}

func (suite *EligibilityEngineTestSuite) assertMocks() {
	suite.repo.AssertExpectations(suite.T())
	suite.customers.AssertExpectations(suite.T())
	suite.credits.AssertExpectations(suite.T())
	suite.transactions.AssertExpectations(suite.T())
}

func personal(id string, sub domain.CustomerSubType) *domain.Customer {
	return &domain.Customer{ID: id, CustomerType: domain.PersonalCustomer, CustomerSubType: sub, IsActive: true}
}

func business(id string, sub domain.CustomerSubType) *domain.Customer {
	return &domain.Customer{ID: id, CustomerType: domain.BusinessCustomer, CustomerSubType: sub, IsActive: true}
}

func cardBank(customerID string, active bool) domain.Credit {
	return domain.Credit{ID: "cr-" + customerID, CustomerID: customerID, CreditType: domain.CardBankCredit, IsActive: active}
}

func (suite *EligibilityEngineTestSuite) TestCreateAccount_PersonalSavings_NoLedgerCall() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{OwnerCustomerID: "C1", AccountType: domain.Savings}

	suite.customers.On("GetCustomer", ctx, "C1").Return(personal("C1", ""), nil).Once()
	suite.repo.On("ListAccountsByCustomer", ctx, "C1").Return([]domain.Account{}, nil).Once()
	suite.repo.On("InsertAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.engine.CreateAccount(ctx, req, "teller-1")
	suite.waitTasks()

	suite.Require().NoError(err)
	suite.NotEmpty(account.AccountID)
	suite.Equal("10000000000001", account.AccountNumber)
	suite.Equal("PEN", account.Currency)
	suite.True(account.IsActive)
	suite.True(account.AmountAvailable.IsZero())
	suite.False(account.IsDailyAverageMonth)
	suite.Equal([]string{}, account.Holders)
	suite.Equal("teller-1", account.CreatedBy)
	suite.Equal(fixedNow, account.CreatedAt)
	suite.transactions.AssertNotCalled(suite.T(), "SubmitTransaction", mock.Anything, mock.Anything)
	suite.Equal(1.0, decisionCount(suite.T(), suite.metrics, metrics.OutcomeCreated, ""))
	suite.assertMocks()
}

func (suite *EligibilityEngineTestSuite) TestCreateAccount_PersonalDuplicateType() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{OwnerCustomerID: "C1", AccountType: domain.Savings}
	existing := []domain.Account{{AccountID: "a1", OwnerCustomerID: "C1", AccountType: domain.Savings, IsActive: true}}

	suite.customers.On("GetCustomer", ctx, "C1").Return(personal("C1", ""), nil).Once()
	suite.repo.On("ListAccountsByCustomer", ctx, "C1").Return(existing, nil).Once()

	account, err := suite.engine.CreateAccount(ctx, req, "teller-1")

	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrAccountTypeAlreadyExist)
	suite.repo.AssertNotCalled(suite.T(), "InsertAccount", mock.Anything, mock.Anything)
	suite.Equal(1.0, decisionCount(suite.T(), suite.metrics, metrics.OutcomeRejected, string(apperrors.KindAccountTypeAlreadyExist)))
	suite.assertMocks()
}

func (suite *EligibilityEngineTestSuite) TestCreateAccount_PersonalDuplicateType_CountsInactiveOwned() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{OwnerCustomerID: "C1", AccountType: domain.Savings}
	existing := []domain.Account{
		{AccountID: "a1", OwnerCustomerID: "C1", AccountType: domain.Savings, IsActive: false},
	}

	suite.customers.On("GetCustomer", ctx, "C1").Return(personal("C1", ""), nil).Once()
	suite.repo.On("ListAccountsByCustomer", ctx, "C1").Return(existing, nil).Once()

	account, err := suite.engine.CreateAccount(ctx, req, "teller-1")

	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrAccountTypeAlreadyExist)
	suite.repo.AssertNotCalled(suite.T(), "InsertAccount", mock.Anything, mock.Anything)
	suite.assertMocks()
}

func (suite *EligibilityEngineTestSuite) TestCreateAccount_PersonalDuplicateType_IgnoresHeldAndOtherTypes() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{OwnerCustomerID: "C1", AccountType: domain.Savings}
	existing := []domain.Account{
		{AccountID: "a2", OwnerCustomerID: "C9", AccountType: domain.Savings, IsActive: true, Holders: []string{"C9", "C1"}},
		{AccountID: "a3", OwnerCustomerID: "C1", AccountType: domain.Current, IsActive: true},
	}

	suite.customers.On("GetCustomer", ctx, "C1").Return(personal("C1", ""), nil).Once()
	suite.repo.On("ListAccountsByCustomer", ctx, "C1").Return(existing, nil).Once()
	suite.repo.On("InsertAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.engine.CreateAccount(ctx, req, "teller-1")

	suite.Require().NoError(err)
	suite.Equal(domain.Savings, account.AccountType)
	suite.assertMocks()
}

func (suite *EligibilityEngineTestSuite) TestCreateAccount_BusinessRejectsNonCurrent() {
	for _, accountType := range []domain.AccountType{domain.Savings, domain.FixedTerm} {
		suite.Run(string(accountType), func() {
			suite.SetupTest()
			ctx := context.Background()
			req := dto.CreateAccountRequest{OwnerCustomerID: "B1", AccountType: accountType}

			suite.customers.On("GetCustomer", ctx, "B1").Return(business("B1", ""), nil).Once()

			account, err := suite.engine.CreateAccount(ctx, req, "teller-1")

			suite.Nil(account)
			suite.ErrorIs(err, apperrors.ErrAccountTypeNotAllowed)
			suite.repo.AssertNotCalled(suite.T(), "ListAccountsByCustomer", mock.Anything, mock.Anything)
			suite.repo.AssertNotCalled(suite.T(), "InsertAccount", mock.Anything, mock.Anything)
			suite.assertMocks()
		})
	}
}

func (suite *EligibilityEngineTestSuite) TestCreateAccount_VIPSavingsWithoutCardBank() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{OwnerCustomerID: "V1", AccountType: domain.Savings}
	credits := []domain.Credit{
		cardBank("V1", false),
		{ID: "cr-2", CustomerID: "V1", CreditType: domain.PersonalCredit, IsActive: true},
	}

	suite.customers.On("GetCustomer", ctx, "V1").Return(personal("V1", domain.VIP), nil).Once()
	suite.repo.On("ListAccountsByCustomer", ctx, "V1").Return([]domain.Account{}, nil).Once()
	suite.credits.On("ListCredits", ctx, "V1").Return(credits, nil).Once()

	account, err := suite.engine.CreateAccount(ctx, req, "teller-1")

	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrAccountTypeNotAllowed)
	suite.repo.AssertNotCalled(suite.T(), "InsertAccount", mock.Anything, mock.Anything)
	suite.assertMocks()
}

func (suite *EligibilityEngineTestSuite) TestCreateAccount_VIPSavingsWithCardBank() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{OwnerCustomerID: "V1", AccountType: domain.Savings}

	suite.customers.On("GetCustomer", ctx, "V1").Return(personal("V1", domain.VIP), nil).Once()
	suite.repo.On("ListAccountsByCustomer", ctx, "V1").Return([]domain.Account{}, nil).Once()
	suite.credits.On("ListCredits", ctx, "V1").Return([]domain.Credit{cardBank("V1", true)}, nil).Once()
	suite.repo.On("InsertAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.IsDailyAverageMonth
	})).Return(nil).Once()

	account, err := suite.engine.CreateAccount(ctx, req, "teller-1")

	suite.Require().NoError(err)
	suite.True(account.IsDailyAverageMonth)
	suite.assertMocks()
}

func (suite *EligibilityEngineTestSuite) TestCreateAccount_VIPCurrentSkipsCreditCheck() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{OwnerCustomerID: "V1", AccountType: domain.Current}

	suite.customers.On("GetCustomer", ctx, "V1").Return(personal("V1", domain.VIP), nil).Once()
	suite.repo.On("ListAccountsByCustomer", ctx, "V1").Return([]domain.Account{}, nil).Once()
	suite.repo.On("InsertAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.engine.CreateAccount(ctx, req, "teller-1")

	suite.Require().NoError(err)
	suite.False(account.IsDailyAverageMonth)
	suite.credits.AssertNotCalled(suite.T(), "ListCredits", mock.Anything, mock.Anything)
	suite.assertMocks()
}

func (suite *EligibilityEngineTestSuite) TestCreateAccount_CreditServiceFailureIsNotDenial() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{OwnerCustomerID: "V1", AccountType: domain.Savings}
	upstream := fmt.Errorf("credit service: %w", apperrors.ErrUpstream)

	suite.customers.On("GetCustomer", ctx, "V1").Return(personal("V1", domain.VIP), nil).Once()
	suite.repo.On("ListAccountsByCustomer", ctx, "V1").Return([]domain.Account{}, nil).Once()
	suite.credits.On("ListCredits", ctx, "V1").Return(nil, upstream).Once()

	account, err := suite.engine.CreateAccount(ctx, req, "teller-1")

	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrUpstreamUnavailable)
	suite.NotErrorIs(err, apperrors.ErrAccountTypeNotAllowed)
	suite.Equal(1.0, decisionCount(suite.T(), suite.metrics, metrics.OutcomeFailed, string(apperrors.KindUpstreamUnavailable)))
	suite.assertMocks()
}

func (suite *EligibilityEngineTestSuite) TestCreateAccount_PYMEWithoutCardBank() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{OwnerCustomerID: "B1", AccountType: domain.Current}

	suite.customers.On("GetCustomer", ctx, "B1").Return(business("B1", domain.PYME), nil).Once()
	suite.credits.On("ListCredits", ctx, "B1").Return([]domain.Credit{}, nil).Once()

	account, err := suite.engine.CreateAccount(ctx, req, "teller-1")

	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrAccountTypeNotAllowed)
	suite.assertMocks()
}

func (suite *EligibilityEngineTestSuite) TestCreateAccount_PYMEWithCardBank_OwnerHeldOnce() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		OwnerCustomerID:   "B1",
		AccountType:       domain.Current,
		Holders:           []string{"H1", "B1", "H2", "H1"},
		AuthorizedSigners: []string{"S1", "S1"},
	}

	suite.customers.On("GetCustomer", ctx, "B1").Return(business("B1", domain.PYME), nil).Once()
	suite.credits.On("ListCredits", ctx, "B1").Return([]domain.Credit{cardBank("B1", true)}, nil).Once()
	suite.repo.On("InsertAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.engine.CreateAccount(ctx, req, "teller-1")

	suite.Require().NoError(err)
	suite.Equal([]string{"B1", "H1", "H2"}, account.Holders)
	suite.Equal([]string{"S1"}, account.AuthorizedSigners)
	suite.repo.AssertNotCalled(suite.T(), "ListAccountsByCustomer", mock.Anything, mock.Anything)
	suite.assertMocks()
}

func (suite *EligibilityEngineTestSuite) TestCreateAccount_BusinessCurrentWithoutSubType() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{OwnerCustomerID: "B1", AccountType: domain.Current}

	suite.customers.On("GetCustomer", ctx, "B1").Return(business("B1", ""), nil).Once()
	suite.repo.On("InsertAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.engine.CreateAccount(ctx, req, "teller-1")

	suite.Require().NoError(err)
	suite.Equal([]string{"B1"}, account.Holders)
	suite.Equal([]string{}, account.AuthorizedSigners)
	suite.credits.AssertNotCalled(suite.T(), "ListCredits", mock.Anything, mock.Anything)
	suite.assertMocks()
}

func (suite *EligibilityEngineTestSuite) TestCreateAccount_UnknownCustomerType() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{OwnerCustomerID: "X1", AccountType: domain.Current}
	customer := &domain.Customer{ID: "X1", CustomerType: "GOVERNMENT"}

	suite.customers.On("GetCustomer", ctx, "X1").Return(customer, nil).Once()

	_, err := suite.engine.CreateAccount(ctx, req, "teller-1")

	suite.ErrorIs(err, apperrors.ErrAccountTypeNotAllowed)
	suite.assertMocks()
}

func (suite *EligibilityEngineTestSuite) TestCreateAccount_InvalidRequest() {
	tests := []struct {
		name string
		req  dto.CreateAccountRequest
	}{
		{"blank owner", dto.CreateAccountRequest{OwnerCustomerID: "  ", AccountType: domain.Savings}},
		{"unknown type", dto.CreateAccountRequest{OwnerCustomerID: "C1", AccountType: "CHECKING"}},
		{"negative opening", dto.CreateAccountRequest{OwnerCustomerID: "C1", AccountType: domain.Savings, OpeningAmount: decimal.NewFromInt(-5)}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.engine.CreateAccount(context.Background(), tt.req, "teller-1")
			suite.ErrorIs(err, apperrors.ErrInvalidRequest)
		})
	}
	suite.customers.AssertNotCalled(suite.T(), "GetCustomer", mock.Anything, mock.Anything)
}

func (suite *EligibilityEngineTestSuite) TestCreateAccount_CustomerUnresolvable() {
	tests := []struct {
		name      string
		clientErr error
		outcome   string
	}{
		{"not found", fmt.Errorf("customer C1: %w", apperrors.ErrNotFound), metrics.OutcomeRejected},
		{"upstream failure", fmt.Errorf("customer C1: %w", apperrors.ErrUpstream), metrics.OutcomeFailed},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.SetupTest()
			ctx := context.Background()
			suite.customers.On("GetCustomer", ctx, "C1").Return(nil, tt.clientErr).Once()

			_, err := suite.engine.CreateAccount(ctx, dto.CreateAccountRequest{OwnerCustomerID: "C1", AccountType: domain.Savings}, "teller-1")

			suite.ErrorIs(err, apperrors.ErrCustomerUnresolvable)
			suite.Equal(1.0, decisionCount(suite.T(), suite.metrics, tt.outcome, string(apperrors.KindCustomerUnresolvable)))
			suite.repo.AssertNotCalled(suite.T(), "ListAccountsByCustomer", mock.Anything, mock.Anything)
		})
	}
}

func (suite *EligibilityEngineTestSuite) TestCreateAccount_RegeneratesTakenAccountNumber() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{OwnerCustomerID: "C1", AccountType: domain.Current}

	suite.customers.On("GetCustomer", ctx, "C1").Return(personal("C1", ""), nil).Once()
	suite.repo.On("ListAccountsByCustomer", ctx, "C1").Return([]domain.Account{}, nil).Once()
	suite.repo.On("InsertAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.AccountNumber == "10000000000001"
	})).Return(apperrors.ErrDuplicateAccountNumber).Once()
	suite.repo.On("InsertAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.AccountNumber == "10000000000002"
	})).Return(nil).Once()

	account, err := suite.engine.CreateAccount(ctx, req, "teller-1")

	suite.Require().NoError(err)
	suite.Equal("10000000000002", account.AccountNumber)
	suite.assertMocks()
}

func (suite *EligibilityEngineTestSuite) TestCreateAccount_GivesUpAfterThreeCollisions() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{OwnerCustomerID: "C1", AccountType: domain.Current}

	suite.customers.On("GetCustomer", ctx, "C1").Return(personal("C1", ""), nil).Once()
	suite.repo.On("ListAccountsByCustomer", ctx, "C1").Return([]domain.Account{}, nil).Once()
	suite.repo.On("InsertAccount", ctx, mock.AnythingOfType("domain.Account")).Return(apperrors.ErrDuplicateAccountNumber).Times(3)

	account, err := suite.engine.CreateAccount(ctx, req, "teller-1")

	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrAccountNotCreated)
	suite.assertMocks()
}

func (suite *EligibilityEngineTestSuite) TestCreateAccount_InsertFailure() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{OwnerCustomerID: "C1", AccountType: domain.Current}
	dbErr := errors.New("connection reset")

	suite.customers.On("GetCustomer", ctx, "C1").Return(personal("C1", ""), nil).Once()
	suite.repo.On("ListAccountsByCustomer", ctx, "C1").Return([]domain.Account{}, nil).Once()
	suite.repo.On("InsertAccount", ctx, mock.AnythingOfType("domain.Account")).Return(dbErr).Once()

	_, err := suite.engine.CreateAccount(ctx, req, "teller-1")

	suite.ErrorIs(err, apperrors.ErrAccountNotCreated)
	suite.ErrorIs(err, dbErr)
	suite.Equal(1.0, decisionCount(suite.T(), suite.metrics, metrics.OutcomeFailed, string(apperrors.KindAccountNotCreated)))
	suite.assertMocks()
}

func (suite *EligibilityEngineTestSuite) TestCreateAccount_OpeningTransactionOutlivesRequest() {
	ctx, cancel := context.WithCancel(context.Background())
	req := dto.CreateAccountRequest{OwnerCustomerID: "C1", AccountType: domain.Savings, OpeningAmount: decimal.NewFromInt(250)}

	suite.customers.On("GetCustomer", ctx, "C1").Return(personal("C1", ""), nil).Once()
	suite.repo.On("ListAccountsByCustomer", ctx, "C1").Return([]domain.Account{}, nil).Once()
	suite.repo.On("InsertAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()
	suite.transactions.On("SubmitTransaction", mock.MatchedBy(func(c context.Context) bool {
		return c.Err() == nil
	}), mock.MatchedBy(func(tx domain.Transaction) bool {
		return tx.TransactionType == domain.OpeningAmount && tx.Amount.Equal(decimal.NewFromInt(250))
	})).Return(nil).Once()

	account, err := suite.engine.CreateAccount(ctx, req, "teller-1")
	cancel()
	suite.waitTasks()

	suite.Require().NoError(err)
	suite.True(account.AmountAvailable.Equal(decimal.NewFromInt(250)))
	suite.Equal(1.0, openingTransactionCount(suite.T(), suite.metrics, "submitted"))
	suite.assertMocks()
}

func (suite *EligibilityEngineTestSuite) TestCreateAccount_OpeningTransactionFailureIsSwallowed() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{OwnerCustomerID: "C1", AccountType: domain.Savings, OpeningAmount: decimal.NewFromInt(10)}

	suite.customers.On("GetCustomer", ctx, "C1").Return(personal("C1", ""), nil).Once()
	suite.repo.On("ListAccountsByCustomer", ctx, "C1").Return([]domain.Account{}, nil).Once()
	suite.repo.On("InsertAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()
	suite.transactions.On("SubmitTransaction", mock.Anything, mock.AnythingOfType("domain.Transaction")).
		Return(fmt.Errorf("ledger: %w", apperrors.ErrUpstream)).Once()

	account, err := suite.engine.CreateAccount(ctx, req, "teller-1")
	suite.waitTasks()

	suite.Require().NoError(err)
	suite.NotNil(account)
	suite.Equal(1.0, openingTransactionCount(suite.T(), suite.metrics, "failed"))
	suite.assertMocks()
}

func (suite *EligibilityEngineTestSuite) TestCreateAccount_PublishesCreatedEvent() {
	publisher := new(MockPublisher)
	suite.engine = suite.newEngine(services.WithEnginePublisher(publisher))
	ctx := context.Background()
	req := dto.CreateAccountRequest{OwnerCustomerID: "B1", AccountType: domain.Current}

	suite.customers.On("GetCustomer", ctx, "B1").Return(business("B1", ""), nil).Once()
	suite.repo.On("InsertAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e portsevents.AccountEvent) bool {
		return e.Type == portsevents.AccountCreated && e.Account.OwnerCustomerID == "B1" && e.ID != ""
	})).Return(nil).Once()

	_, err := suite.engine.CreateAccount(ctx, req, "teller-1")
	suite.waitTasks()

	suite.Require().NoError(err)
	publisher.AssertExpectations(suite.T())
	suite.assertMocks()
}

func TestEligibilityEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EligibilityEngineTestSuite))
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nttbank/account-service/internal/apperrors"
	"github.com/nttbank/account-service/internal/core/domain"
	portsclients "github.com/nttbank/account-service/internal/core/ports/clients"
	portsevents "github.com/nttbank/account-service/internal/core/ports/events"
	portsrepo "github.com/nttbank/account-service/internal/core/ports/repositories"
	portssvc "github.com/nttbank/account-service/internal/core/ports/services"
	"github.com/nttbank/account-service/internal/dto"
	"github.com/nttbank/account-service/internal/platform/metrics"
	"github.com/nttbank/account-service/internal/utils"
	"github.com/shopspring/decimal"
)

const (
	defaultCurrency          = "PEN"
	defaultOpeningTxTimeout  = 10 * time.Second
	maxAccountNumberAttempts = 3
)

// EligibilityEngine decides whether a customer may open the requested account and opens it.
// A request ends Created, Rejected (business rule) or Failed (collaborator or store failure).
type EligibilityEngine struct {
	BaseService
	accountRepo  portsrepo.AccountRepositoryFacade
	customers    portsclients.CustomerClient
	credits      portsclients.CreditClient
	transactions portsclients.TransactionClient

	tasks            *BackgroundTasks
	events           accountEvents
	metrics          *metrics.Metrics
	currency         string
	openingTxTimeout time.Duration
	newNumber        func() (string, error)
	newID            func() string
	now              func() time.Time
}

var _ portssvc.AccountCreator = (*EligibilityEngine)(nil)

// EngineOption is a function that configures an EligibilityEngine
type EngineOption func(*EligibilityEngine)

// WithBackgroundTasks sets the runner used for the opening transaction and events.
func WithBackgroundTasks(tasks *BackgroundTasks) EngineOption {
	return func(e *EligibilityEngine) {
		e.tasks = tasks
	}
}

// WithEnginePublisher publishes account.created after a successful insert.
func WithEnginePublisher(publisher portsevents.Publisher) EngineOption {
	return func(e *EligibilityEngine) {
		e.events.publisher = publisher
	}
}

func WithMetrics(m *metrics.Metrics) EngineOption {
	return func(e *EligibilityEngine) {
		e.metrics = m
	}
}

// WithDefaultCurrency sets the currency assigned to new accounts.
func WithDefaultCurrency(currency string) EngineOption {
	return func(e *EligibilityEngine) {
		if currency != "" {
			e.currency = currency
		}
	}
}

func WithOpeningTransactionTimeout(d time.Duration) EngineOption {
	return func(e *EligibilityEngine) {
		if d > 0 {
			e.openingTxTimeout = d
		}
	}
}

// WithAccountNumberGenerator replaces the random account number source.
func WithAccountNumberGenerator(gen func() (string, error)) EngineOption {
	return func(e *EligibilityEngine) {
		e.newNumber = gen
	}
}

// WithClock replaces time.Now for audit timestamps.
func WithClock(now func() time.Time) EngineOption {
	return func(e *EligibilityEngine) {
		e.now = now
	}
}

// NewEligibilityEngine creates the engine with its required collaborators.
func NewEligibilityEngine(
	accountRepo portsrepo.AccountRepositoryFacade,
	customers portsclients.CustomerClient,
	credits portsclients.CreditClient,
	transactions portsclients.TransactionClient,
	options ...EngineOption,
) *EligibilityEngine {
	e := &EligibilityEngine{
		accountRepo:      accountRepo,
		customers:        customers,
		credits:          credits,
		transactions:     transactions,
		currency:         defaultCurrency,
		openingTxTimeout: defaultOpeningTxTimeout,
		newNumber:        utils.GenerateAccountNumber,
		newID:            uuid.NewString,
		now:              time.Now,
	}
	for _, option := range options {
		option(e)
	}
	if e.tasks == nil {
		e.tasks = NewBackgroundTasks()
	}
	e.events.tasks = e.tasks
	e.events.now = e.now
	return e
}

// CreateAccount runs the eligibility steps in order and persists the account when they all pass.
func (e *EligibilityEngine) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	account, err := e.createAccount(ctx, req, userID)
	e.recordDecision(ctx, req, err)
	if err != nil {
		return nil, err
	}

	if account.AmountAvailable.IsPositive() {
		e.submitOpeningTransaction(ctx, *account)
	}
	e.events.emit(ctx, portsevents.AccountCreated, *account)

	return account, nil
}

func (e *EligibilityEngine) createAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	customer, err := e.resolveCustomer(ctx, req.OwnerCustomerID)
	if err != nil {
		return nil, err
	}

	if err := e.guardDuplicateType(ctx, customer, req.AccountType); err != nil {
		return nil, err
	}

	account := e.populate(customer, req, userID)

	if err := e.applyTypeRules(ctx, customer, &account); err != nil {
		return nil, err
	}

	if err := e.insert(ctx, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func validateCreateRequest(req dto.CreateAccountRequest) error {
	if strings.TrimSpace(req.OwnerCustomerID) == "" {
		return apperrors.New(apperrors.KindInvalidRequest, "ownerCustomerId is required", nil)
	}
	if !req.AccountType.IsValid() {
		return apperrors.New(apperrors.KindInvalidRequest, fmt.Sprintf("unknown account type %q", req.AccountType), nil)
	}
	if req.OpeningAmount.IsNegative() {
		return apperrors.New(apperrors.KindInvalidRequest, "openingAmount must not be negative", nil)
	}
	return nil
}

func (e *EligibilityEngine) resolveCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	customer, err := e.customers.GetCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindCustomerUnresolvable, fmt.Sprintf("customer %s not found", customerID), err)
		}
		e.LogError(ctx, err, "Customer lookup failed", slog.String("customer_id", customerID))
		return nil, apperrors.New(apperrors.KindCustomerUnresolvable, fmt.Sprintf("customer %s could not be resolved", customerID), err)
	}
	return customer, nil
}

// guardDuplicateType rejects a personal customer that already owns an account of the type, active or not.
// The check is not atomic with the insert that follows.
func (e *EligibilityEngine) guardDuplicateType(ctx context.Context, customer *domain.Customer, accountType domain.AccountType) error {
	if customer.CustomerType != domain.PersonalCustomer {
		return nil
	}

	existing, err := e.accountRepo.ListAccountsByCustomer(ctx, customer.ID)
	if err != nil {
		e.LogError(ctx, err, "Failed to list customer accounts", slog.String("customer_id", customer.ID))
		return apperrors.New(apperrors.KindAccountNotCreated, "could not check existing accounts", err)
	}
	for _, acc := range existing {
		if acc.OwnerCustomerID == customer.ID && acc.AccountType == accountType {
			return apperrors.New(apperrors.KindAccountTypeAlreadyExist,
				fmt.Sprintf("customer %s already has a %s account", customer.ID, accountType), nil)
		}
	}
	return nil
}

func (e *EligibilityEngine) populate(customer *domain.Customer, req dto.CreateAccountRequest, userID string) domain.Account {
	now := e.now().UTC()

	account := domain.Account{
		AccountID:                         e.newID(),
		OwnerCustomerID:                   customer.ID,
		AccountType:                       req.AccountType,
		Currency:                          e.currency,
		AmountAvailable:                   decimal.Zero,
		TransactionLimit:                  req.TransactionLimit,
		CommissionRate:                    req.CommissionRate,
		CommissionTransactionLimit:        req.CommissionTransactionLimit,
		CommissionRateForTransactionLimit: req.CommissionRateForTransactionLimit,
		DateAllowedTransaction:            req.DateAllowedTransaction,
		DailyAverageMonth:                 decimal.Zero,
		IsActive:                          true,
		AuthorizedSigners:                 domain.OrderedSet(req.AuthorizedSigners),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if req.OpeningAmount.IsPositive() {
		account.AmountAvailable = req.OpeningAmount
	}

	if customer.CustomerType == domain.BusinessCustomer {
		account.Holders = domain.OrderedSet([]string{customer.ID}, req.Holders)
	} else {
		account.Holders = domain.OrderedSet(req.Holders)
	}
	return account
}

func (e *EligibilityEngine) applyTypeRules(ctx context.Context, customer *domain.Customer, account *domain.Account) error {
	switch customer.CustomerType {
	case domain.PersonalCustomer:
		if account.AccountType == domain.Savings && customer.CustomerSubType == domain.VIP {
			if err := e.requireCardBank(ctx, customer); err != nil {
				return err
			}
			account.IsDailyAverageMonth = true
		}
		return nil

	case domain.BusinessCustomer:
		if account.AccountType != domain.Current {
			return apperrors.New(apperrors.KindAccountTypeNotAllowed,
				fmt.Sprintf("business customers may only open %s accounts", domain.Current), nil)
		}
		if customer.CustomerSubType == domain.PYME {
			return e.requireCardBank(ctx, customer)
		}
		return nil

	default:
		return apperrors.New(apperrors.KindAccountTypeNotAllowed,
			fmt.Sprintf("customer type %q cannot open accounts", customer.CustomerType), nil)
	}
}

func (e *EligibilityEngine) requireCardBank(ctx context.Context, customer *domain.Customer) error {
	credits, err := e.credits.ListCredits(ctx, customer.ID)
	if err != nil {
		e.LogError(ctx, err, "Credit lookup failed", slog.String("customer_id", customer.ID))
		return apperrors.New(apperrors.KindUpstreamUnavailable, "credit service unavailable, try again later", err)
	}
	if !domain.HasActiveCardBank(credits) {
		return apperrors.New(apperrors.KindAccountTypeNotAllowed,
			fmt.Sprintf("%s %s customers need an active %s credit", customer.CustomerType, customer.CustomerSubType, domain.CardBankCredit), nil)
	}
	return nil
}

// insert stores the account, drawing a fresh number whenever the previous one is taken.
func (e *EligibilityEngine) insert(ctx context.Context, account *domain.Account) error {
	var lastErr error
	for attempt := 1; attempt <= maxAccountNumberAttempts; attempt++ {
		number, err := e.newNumber()
		if err != nil {
			e.LogError(ctx, err, "Failed to generate account number")
			return apperrors.New(apperrors.KindAccountNotCreated, "", err)
		}
		account.AccountNumber = number

		err = e.accountRepo.InsertAccount(ctx, *account)
		if err == nil {
			return nil
		}
		if !errors.Is(err, apperrors.ErrDuplicateAccountNumber) {
			e.LogError(ctx, err, "Failed to insert account", slog.String("account_id", account.AccountID))
			return apperrors.New(apperrors.KindAccountNotCreated, "", err)
		}
		lastErr = err
		e.LogWarn(ctx, "Account number already taken, regenerating",
			slog.String("account_number", number),
			slog.Int("attempt", attempt))
	}
	return apperrors.New(apperrors.KindAccountNotCreated, "no free account number found", lastErr)
}

// submitOpeningTransaction sends the OPENING_AMOUNT movement without waiting for the ledger.
// Delivery is at most once; a failure is logged and counted, never compensated.
func (e *EligibilityEngine) submitOpeningTransaction(ctx context.Context, account domain.Account) {
	tx := domain.NewOpeningTransaction(account)
	e.tasks.Go(ctx, "opening transaction", e.openingTxTimeout, func(ctx context.Context) error {
		if err := e.transactions.SubmitTransaction(ctx, tx); err != nil {
			e.metrics.RecordOpeningTransaction("failed")
			return fmt.Errorf("submit opening transaction for account %s: %w", account.AccountID, err)
		}
		e.metrics.RecordOpeningTransaction("submitted")
		e.LogInfo(ctx, "Opening transaction submitted",
			slog.String("account_id", account.AccountID),
			slog.String("amount", tx.Amount.String()))
		return nil
	})
}

func (e *EligibilityEngine) recordDecision(ctx context.Context, req dto.CreateAccountRequest, err error) {
	outcome, reason := metrics.OutcomeCreated, ""
	var appErr *apperrors.AppError
	switch {
	case err == nil:
	case errors.As(err, &appErr) && isFailure(appErr):
		outcome, reason = metrics.OutcomeFailed, string(appErr.Kind)
	case errors.As(err, &appErr):
		outcome, reason = metrics.OutcomeRejected, string(appErr.Kind)
	default:
		outcome, reason = metrics.OutcomeFailed, "unknown"
	}
	e.metrics.RecordDecision(outcome, reason)

	e.LogInfo(ctx, "Account creation decided",
		slog.String("outcome", outcome),
		slog.String("reason", reason),
		slog.String("customer_id", req.OwnerCustomerID),
		slog.String("account_type", string(req.AccountType)))
}

// isFailure separates collaborator and store failures from business-rule rejections.
func isFailure(err *apperrors.AppError) bool {
	switch err.Kind {
	case apperrors.KindAccountNotCreated, apperrors.KindUpstreamUnavailable:
		return true
	case apperrors.KindCustomerUnresolvable:
		return errors.Is(err, apperrors.ErrUpstream)
	}
	return false
}

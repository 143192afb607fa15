package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nttbank/account-service/internal/apperrors"
	"github.com/nttbank/account-service/internal/core/domain"
	portsevents "github.com/nttbank/account-service/internal/core/ports/events"
	portsrepo "github.com/nttbank/account-service/internal/core/ports/repositories"
	portssvc "github.com/nttbank/account-service/internal/core/ports/services"
	"github.com/nttbank/account-service/internal/dto"
)

// DeleteMode selects how RemoveAccount treats the record.
type DeleteMode string

const (
	// SoftDelete flips the account to inactive and keeps the record.
	SoftDelete DeleteMode = "soft"
	// HardDelete removes the record from the store.
	HardDelete DeleteMode = "hard"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	creator     portssvc.AccountCreator
	events      accountEvents
	deleteMode  DeleteMode
	now         func() time.Time
}

// ServiceOption is a function that configures an accountService
type ServiceOption func(*accountService)

// WithDeleteMode sets the removal policy. Unknown values keep soft delete.
func WithDeleteMode(mode DeleteMode) ServiceOption {
	return func(s *accountService) {
		if mode == HardDelete {
			s.deleteMode = HardDelete
		}
	}
}

// WithAccountEvents publishes account.updated and account.deleted on the given runner.
func WithAccountEvents(publisher portsevents.Publisher, tasks *BackgroundTasks) ServiceOption {
	return func(s *accountService) {
		s.events.publisher = publisher
		s.events.tasks = tasks
	}
}

// WithServiceClock replaces time.Now for audit timestamps.
func WithServiceClock(now func() time.Time) ServiceOption {
	return func(s *accountService) {
		s.now = now
	}
}

// NewAccountService creates a new account service. Creation is delegated to creator.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, creator portssvc.AccountCreator, options ...ServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo: accountRepo,
		creator:     creator,
		deleteMode:  SoftDelete,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	svc.events.now = svc.now
	return svc
}

// CreateAccount hands the request to the eligibility engine.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	return s.creator.CreateAccount(ctx, req, userID)
}

// GetAccountByID retrieves an account by its ID
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.findAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	s.LogDebug(ctx, "Account retrieved successfully", slog.String("account_id", account.AccountID))
	return account, nil
}

// ListAccounts retrieves every account
func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts from repository")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}

	s.LogDebug(ctx, "Accounts listed successfully", slog.Int("count", len(accounts)))
	return accounts, nil
}

// ListAccountsByCustomer retrieves the accounts a customer owns or holds
func (s *accountService) ListAccountsByCustomer(ctx context.Context, customerID string) ([]domain.Account, error) {
	if strings.TrimSpace(customerID) == "" {
		return nil, apperrors.New(apperrors.KindInvalidRequest, "customerId is required", nil)
	}

	accounts, err := s.accountRepo.ListAccountsByCustomer(ctx, customerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customer accounts from repository", slog.String("customer_id", customerID))
		return nil, fmt.Errorf("failed to list accounts for customer %s: %w", customerID, err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}

	s.LogDebug(ctx, "Customer accounts listed successfully",
		slog.String("customer_id", customerID),
		slog.Int("count", len(accounts)))
	return accounts, nil
}

// UpdateAccount replaces every mutable field. The id and the creation audit are kept.
func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	existing, err := s.findAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	updated := domain.Account{
		AccountID:                         existing.AccountID,
		AccountNumber:                     req.AccountNumber,
		OwnerCustomerID:                   req.OwnerCustomerID,
		AccountType:                       req.AccountType,
		Currency:                          req.Currency,
		AmountAvailable:                   req.AmountAvailable,
		TransactionLimit:                  req.TransactionLimit,
		CommissionRate:                    req.CommissionRate,
		CommissionTransactionLimit:        req.CommissionTransactionLimit,
		CommissionRateForTransactionLimit: req.CommissionRateForTransactionLimit,
		DateAllowedTransaction:            req.DateAllowedTransaction,
		DailyAverageMonth:                 req.DailyAverageMonth,
		IsDailyAverageMonth:               req.IsDailyAverageMonth,
		IsActive:                          req.IsActive,
		Holders:                           domain.OrderedSet(req.Holders),
		AuthorizedSigners:                 domain.OrderedSet(req.AuthorizedSigners),
		AuditFields: domain.AuditFields{
			CreatedAt: existing.CreatedAt,
			CreatedBy: existing.CreatedBy,
		},
	}
	if err := validateStoredState(updated); err != nil {
		return nil, err
	}

	if err := s.save(ctx, &updated, userID); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Account updated successfully", slog.String("account_id", accountID))
	s.events.emit(ctx, portsevents.AccountUpdated, updated)
	return &updated, nil
}

// PatchAccount merges the supplied fields into the stored account.
// An empty patch returns the stored account without writing.
func (s *accountService) PatchAccount(ctx context.Context, accountID string, patch domain.AccountPatch, userID string) (*domain.Account, error) {
	account, err := s.findAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if !patch.ApplyTo(account) {
		s.LogDebug(ctx, "Empty patch, account left unchanged", slog.String("account_id", accountID))
		return account, nil
	}
	if err := validateStoredState(*account); err != nil {
		return nil, err
	}

	if err := s.save(ctx, account, userID); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Account patched successfully", slog.String("account_id", accountID))
	s.events.emit(ctx, portsevents.AccountUpdated, *account)
	return account, nil
}

// RemoveAccount deactivates the account, or deletes it when the service runs in hard delete mode.
func (s *accountService) RemoveAccount(ctx context.Context, accountID string, userID string) (*domain.Account, error) {
	if s.deleteMode == HardDelete {
		return s.deleteAccount(ctx, accountID)
	}

	account, err := s.findAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !account.IsActive {
		return nil, apperrors.New(apperrors.KindAccountAlreadyInactive,
			fmt.Sprintf("account %s is already inactive", accountID), nil)
	}

	account.IsActive = false
	if err := s.save(ctx, account, userID); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Account deactivated successfully", slog.String("account_id", accountID))
	s.events.emit(ctx, portsevents.AccountDeleted, *account)
	return account, nil
}

func (s *accountService) deleteAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.DeleteAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindAccountNotFound, fmt.Sprintf("account %s not found", accountID), err)
		}
		s.LogError(ctx, err, "Failed to delete account from repository", slog.String("account_id", accountID))
		return nil, apperrors.New(apperrors.KindAccountNotUpdated, "", err)
	}

	s.LogInfo(ctx, "Account deleted successfully", slog.String("account_id", accountID))
	s.events.emit(ctx, portsevents.AccountDeleted, *account)
	return account, nil
}

// validateStoredState rejects an account that must never be persisted.
func validateStoredState(account domain.Account) error {
	if !account.AccountType.IsValid() {
		return apperrors.New(apperrors.KindInvalidRequest, fmt.Sprintf("unknown account type %q", account.AccountType), nil)
	}
	if account.AmountAvailable.IsNegative() {
		return apperrors.New(apperrors.KindInvalidRequest, "amountAvailable must not be negative", nil)
	}
	return nil
}

func (s *accountService) findAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindAccountNotFound, fmt.Sprintf("account %s not found", accountID), err)
		}
		s.LogError(ctx, err, "Failed to find account by ID in repository", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to get account %s: %w", accountID, err)
	}
	return account, nil
}

func (s *accountService) save(ctx context.Context, account *domain.Account, userID string) error {
	account.LastUpdatedAt = s.now().UTC()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.SaveAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to save account in repository", slog.String("account_id", account.AccountID))
		return apperrors.New(apperrors.KindAccountNotUpdated, "", err)
	}
	return nil
}

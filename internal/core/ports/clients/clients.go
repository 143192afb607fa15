package clients

import (
	"context"

	"github.com/nttbank/account-service/internal/core/domain"
)

// Adapters report a missing resource with apperrors.ErrNotFound and a failed call
// (transport error, timeout, 5xx) with an error wrapping apperrors.ErrUpstream.

// CustomerClient resolves customers from the customer service.
type CustomerClient interface {
	GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error)
}

// CreditClient lists the credit products a customer holds.
type CreditClient interface {
	ListCredits(ctx context.Context, customerID string) ([]domain.Credit, error)
}

// TransactionClient submits movements to the ledger service.
type TransactionClient interface {
	SubmitTransaction(ctx context.Context, tx domain.Transaction) error
}

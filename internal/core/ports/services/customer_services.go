package services

import (
	"context"

	"github.com/nttbank/account-service/internal/core/domain"
)

// CustomerSvc exposes read-only customer lookups backed by the customer service.
type CustomerSvc interface {
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nttbank/account-service/internal/apperrors"
	"github.com/nttbank/account-service/internal/core/domain"
	portsclients "github.com/nttbank/account-service/internal/core/ports/clients"
	portssvc "github.com/nttbank/account-service/internal/core/ports/services"
)

type customerService struct {
	BaseService
	customers portsclients.CustomerClient
}

// NewCustomerService exposes customer lookups from the customer service.
func NewCustomerService(customers portsclients.CustomerClient) portssvc.CustomerSvc {
	return &customerService{customers: customers}
}

// GetCustomerByID returns apperrors.ErrNotFound (wrapped) for unknown customers
// and UpstreamUnavailable when the customer service cannot be reached.
func (s *customerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	customer, err := s.customers.GetCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("customer %s: %w", customerID, err)
		}
		s.LogError(ctx, err, "Customer lookup failed", slog.String("customer_id", customerID))
		return nil, apperrors.New(apperrors.KindUpstreamUnavailable, "customer service unavailable", err)
	}
	return customer, nil
}

package httpclient

import (
	"context"
	"net/url"

	"github.com/nttbank/account-service/internal/core/domain"
	"github.com/nttbank/account-service/internal/core/ports/clients"
)

// CustomerClient reads customers from the customer service.
type CustomerClient struct {
	base baseClient
}

var _ clients.CustomerClient = (*CustomerClient)(nil)

func NewCustomerClient(baseURL string, opts Options) *CustomerClient {
	return &CustomerClient{base: newBaseClient("customer-service", baseURL, opts)}
}

// GetCustomer calls GET /v1/customers/{id}.
func (c *CustomerClient) GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	var customer domain.Customer
	if err := c.base.getJSON(ctx, "/v1/customers/"+url.PathEscape(customerID), &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

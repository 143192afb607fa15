package httpclient

import (
	"context"
	"errors"
	"net/url"

	"github.com/nttbank/account-service/internal/apperrors"
	"github.com/nttbank/account-service/internal/core/domain"
	"github.com/nttbank/account-service/internal/core/ports/clients"
)

// CreditClient reads a customer's credit products from the credit service.
type CreditClient struct {
	base baseClient
}

var _ clients.CreditClient = (*CreditClient)(nil)

func NewCreditClient(baseURL string, opts Options) *CreditClient {
	return &CreditClient{base: newBaseClient("credit-service", baseURL, opts)}
}

// ListCredits calls GET /v1/credits/customer/{id}. A 404 means the customer holds no credits
// and yields an empty list; any other failure is returned.
func (c *CreditClient) ListCredits(ctx context.Context, customerID string) ([]domain.Credit, error) {
	var credits []domain.Credit
	err := c.base.getJSON(ctx, "/v1/credits/customer/"+url.PathEscape(customerID), &credits)
	if errors.Is(err, apperrors.ErrNotFound) {
		return []domain.Credit{}, nil
	}
	if err != nil {
		return nil, err
	}
	if credits == nil {
		credits = []domain.Credit{}
	}
	return credits, nil
}

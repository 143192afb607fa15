package httpclient

import (
	"context"

	"github.com/nttbank/account-service/internal/core/domain"
	"github.com/nttbank/account-service/internal/core/ports/clients"
)

// TransactionClient submits movements to the ledger service.
type TransactionClient struct {
	base baseClient
}

var _ clients.TransactionClient = (*TransactionClient)(nil)

func NewTransactionClient(baseURL string, opts Options) *TransactionClient {
	return &TransactionClient{base: newBaseClient("transaction-service", baseURL, opts)}
}

// SubmitTransaction calls POST /v1/transactions exactly once. The acknowledgement body is ignored.
func (c *TransactionClient) SubmitTransaction(ctx context.Context, tx domain.Transaction) error {
	return c.base.postJSON(ctx, "/v1/transactions", tx, nil)
}

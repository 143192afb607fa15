package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nttbank/account-service/internal/platform/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordAndExpose(t *testing.T) {
	m := metrics.New()

	m.RecordDecision(metrics.OutcomeCreated, "")
	m.RecordDecision(metrics.OutcomeCreated, "")
	m.RecordDecision(metrics.OutcomeRejected, "ACCOUNT_TYPE_NOT_ALLOWED")
	m.RecordOpeningTransaction("failed")
	m.ObserveHTTP("GET", "/accounts/:id", "200", 0.01)

	assert.Equal(t, 2.0, m.DecisionCount(metrics.OutcomeCreated, ""))
	assert.Equal(t, 1.0, m.DecisionCount(metrics.OutcomeRejected, "ACCOUNT_TYPE_NOT_ALLOWED"))
	assert.Equal(t, 1.0, m.OpeningTransactionCount("failed"))

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `account_creation_decisions_total{outcome="created",reason=""} 2`)
	assert.Contains(t, string(body), `account_service_http_requests_total{method="GET",route="/accounts/:id",status="200"} 1`)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *metrics.Metrics

	assert.NotPanics(t, func() {
		m.RecordDecision(metrics.OutcomeFailed, "")
		m.RecordOpeningTransaction("submitted")
		m.ObserveHTTP("GET", "/", "200", 0)
	})
}

package services_test

import (
	"testing"

	"github.com/nttbank/account-service/internal/platform/metrics"
	"github.com/stretchr/testify/require"
)

// counterValue reads one counter sample from the gathered registry; 0 when the series does not exist yet.
func counterValue(t *testing.T, m *metrics.Metrics, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := m.Gatherer().Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, sample := range family.GetMetric() {
			matched := 0
			for _, pair := range sample.GetLabel() {
				if want, ok := labels[pair.GetName()]; ok && want == pair.GetValue() {
					matched++
				}
			}
			if matched == len(labels) {
				return sample.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func decisionCount(t *testing.T, m *metrics.Metrics, outcome, reason string) float64 {
	return counterValue(t, m, "account_creation_decisions_total", map[string]string{"outcome": outcome, "reason": reason})
}

func openingTransactionCount(t *testing.T, m *metrics.Metrics, result string) float64 {
	return counterValue(t, m, "account_service_opening_transactions_total", map[string]string{"result": result})
}

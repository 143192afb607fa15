package metrics

import "github.com/prometheus/client_golang/prometheus/testutil"

func (m *Metrics) DecisionCount(outcome, reason string) float64 {
	return testutil.ToFloat64(m.creationDecisions.WithLabelValues(outcome, reason))
}

func (m *Metrics) OpeningTransactionCount(result string) float64 {
	return testutil.ToFloat64(m.openingTransactions.WithLabelValues(result))
}

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

// Domain-specific metric collectors.
//
// These complement the generic controller-runtime metrics (reconcile counts,
// durations, work queue depth, etc.) with operator-specific state that the
// framework cannot know about.
var (
	instanceInfo = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "postgresinstance_operator_instance_info",
			Help: "Info-style metric for PostgresInstance discovery and readiness tracking. Always 1.",
		},
		[]string{"name", "namespace", "ready"},
	)

	bindingSecretWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "postgresinstance_operator_binding_secret_writes_total",
			Help: "Total number of binding Secret writes, by operation (create or patch).",
		},
		[]string{"namespace", "operation"},
	)

	credentialFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "postgresinstance_operator_credential_failures_total",
			Help: "Total number of password Secret lookups that could not be resolved.",
		},
		[]string{"namespace", "reason"},
	)
)

func init() {
	metrics.Registry.MustRegister(
		instanceInfo,
		bindingSecretWrites,
		credentialFailures,
	)
}

// Collectors returns all registered metric collectors. This is useful for
// testing that metrics are properly registered.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		instanceInfo,
		bindingSecretWrites,
		credentialFailures,
	}
}

// Package monitoring provides Prometheus metrics and recording helpers for
// the PostgresInstance Operator. It exposes domain-specific gauges and
// counters that complement the generic controller-runtime metrics already
// registered by the framework.
//
// All metrics carry the postgresinstance_operator_ prefix and are registered
// against controller-runtime's default Prometheus registry on import.
//
// Usage in the controller:
//
//	monitoring.SetInstanceInfo(inst.Name, inst.Namespace, ready)
//	monitoring.RecordBindingSecretWrite(inst.Namespace, monitoring.WriteCreate)
//	monitoring.RecordCredentialFailure(inst.Namespace, monitoring.FailureSecretMissing)
package monitoring

package monitoring

import "strconv"

// Binding Secret write operations.
const (
	WriteCreate = "create"
	WritePatch  = "patch"
)

// Credential failure reasons.
const (
	FailureSecretMissing = "secret_missing"
	FailureKeyMissing    = "key_missing"
)

// SetInstanceInfo sets the info-style gauge for a PostgresInstance.
// Old readiness labels are automatically cleaned up via DeletePartialMatch.
func SetInstanceInfo(name, namespace string, ready bool) {
	instanceInfo.DeletePartialMatch(map[string]string{
		"name":      name,
		"namespace": namespace,
	})
	instanceInfo.WithLabelValues(name, namespace, strconv.FormatBool(ready)).Set(1)
}

// RecordBindingSecretWrite counts a binding Secret write. operation is one of
// WriteCreate or WritePatch.
func RecordBindingSecretWrite(namespace, operation string) {
	bindingSecretWrites.WithLabelValues(namespace, operation).Inc()
}

// RecordCredentialFailure counts an unresolved password Secret lookup.
// reason is one of FailureSecretMissing or FailureKeyMissing.
func RecordCredentialFailure(namespace, reason string) {
	credentialFailures.WithLabelValues(namespace, reason).Inc()
}

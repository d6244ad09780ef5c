package postgresinstance

import (
	"context"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/types"

	openchoreov1alpha1 "github.com/openchoreo/postgresinstance-operator/api/v1alpha1"
	"github.com/openchoreo/postgresinstance-operator/pkg/monitoring"
)

// resolvePassword reads the password from the Secret referenced by
// spec.passwordSecretRef. A missing Secret or key yields a TransientError:
// the referenced Secret may simply not have been created yet.
func (r *PostgresInstanceReconciler) resolvePassword(
	ctx context.Context,
	pi *openchoreov1alpha1.PostgresInstance,
) (string, error) {
	ref := pi.Spec.PasswordSecretRef

	secret := &corev1.Secret{}
	err := r.Get(ctx, types.NamespacedName{Namespace: pi.Namespace, Name: ref.Name}, secret)
	if err != nil {
		if apierrors.IsNotFound(err) {
			monitoring.RecordCredentialFailure(pi.Namespace, monitoring.FailureSecretMissing)
			return "", &TransientError{
				Delay: r.credentialRetryDelay(),
				Err:   fmt.Errorf("password secret %q not found", ref.Name),
			}
		}
		return "", fmt.Errorf("failed to get password secret %q: %w", ref.Name, err)
	}

	// Data values arrive base64-decoded from the API server.
	value, ok := secret.Data[ref.Key]
	if !ok {
		monitoring.RecordCredentialFailure(pi.Namespace, monitoring.FailureKeyMissing)
		return "", &TransientError{
			Delay: r.credentialRetryDelay(),
			Err:   fmt.Errorf("password secret %q has no key %q", ref.Name, ref.Key),
		}
	}

	return string(value), nil
}

package postgresinstance

import (
	"context"
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"

	openchoreov1alpha1 "github.com/openchoreo/postgresinstance-operator/api/v1alpha1"
)

// Condition reasons and event reasons.
const (
	ReasonSecretReady       = "SecretReady"
	ReasonCredentialPending = "CredentialPending"
	ReasonValidationFailed  = "ValidationFailed"
	ReasonFailedApply       = "FailedApply"
)

// patchStatus records a successful reconcile on the status subresource. The
// conditions list is replaced wholesale with a single Ready entry. Runs only
// after the binding Secret write succeeded.
func (r *PostgresInstanceReconciler) patchStatus(
	ctx context.Context,
	pi *openchoreov1alpha1.PostgresInstance,
	bindingName string,
) error {
	patch := &openchoreov1alpha1.PostgresInstance{
		TypeMeta: metav1.TypeMeta{
			APIVersion: openchoreov1alpha1.GroupVersion.String(),
			Kind:       "PostgresInstance",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      pi.Name,
			Namespace: pi.Namespace,
		},
		Status: openchoreov1alpha1.PostgresInstanceStatus{
			ObservedGeneration: pi.Generation,
			BindingSecretName:  bindingName,
			Conditions: []metav1.Condition{
				{
					Type:               openchoreov1alpha1.ConditionReady,
					Status:             metav1.ConditionTrue,
					Reason:             ReasonSecretReady,
					Message:            fmt.Sprintf("binding secret %q is up to date", bindingName),
					LastTransitionTime: metav1.Now(),
				},
			},
		},
	}

	if err := r.Status().Patch(ctx, patch, client.Merge); err != nil {
		return fmt.Errorf("failed to patch status: %w", err)
	}
	return nil
}

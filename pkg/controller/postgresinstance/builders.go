package postgresinstance

import (
	"fmt"
	"strconv"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"

	openchoreov1alpha1 "github.com/openchoreo/postgresinstance-operator/api/v1alpha1"
	"github.com/openchoreo/postgresinstance-operator/pkg/metadata"
)

// Data keys of the binding Secret. Consumers mount or env-inject these.
const (
	DataKeyDatabaseURL = "DATABASE_URL"
	DataKeyHost        = "DB_HOST"
	DataKeyPort        = "DB_PORT"
	DataKeyName        = "DB_NAME"
	DataKeyUser        = "DB_USER"
	DataKeyPassword    = "DB_PASSWORD"
)

const bindingSecretSuffix = "-binding"

// BindingSecretName returns the effective binding Secret name:
// spec.bindingSecretName when set, "<name>-binding" otherwise.
func BindingSecretName(pi *openchoreov1alpha1.PostgresInstance) string {
	if pi.Spec.BindingSecretName != "" {
		return pi.Spec.BindingSecretName
	}
	return pi.Name + bindingSecretSuffix
}

// EffectivePort returns spec.port, falling back to the PostgreSQL default
// when unset.
func EffectivePort(pi *openchoreov1alpha1.PostgresInstance) int32 {
	if pi.Spec.Port != 0 {
		return pi.Spec.Port
	}
	return openchoreov1alpha1.DefaultPort
}

// BuildBindingSecret computes the full desired binding Secret for the
// instance. The content is a pure function of the spec and the resolved
// password; every reconcile overwrites the Secret with this object.
func BuildBindingSecret(
	pi *openchoreov1alpha1.PostgresInstance,
	databaseURL string,
	password string,
	scheme *runtime.Scheme,
) (*corev1.Secret, error) {
	secret := &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{
			Name:      BindingSecretName(pi),
			Namespace: pi.Namespace,
			Labels:    metadata.MergeLabels(metadata.BuildBindingLabels(pi.Name), pi.Labels),
		},
		Type: corev1.SecretTypeOpaque,
		Data: map[string][]byte{
			DataKeyDatabaseURL: []byte(databaseURL),
			DataKeyHost:        []byte(pi.Spec.Host),
			DataKeyPort:        []byte(strconv.FormatInt(int64(EffectivePort(pi)), 10)),
			DataKeyName:        []byte(pi.Spec.Database),
			DataKeyUser:        []byte(pi.Spec.Username),
			DataKeyPassword:    []byte(password),
		},
	}

	if err := controllerutil.SetControllerReference(pi, secret, scheme); err != nil {
		return nil, fmt.Errorf("failed to set owner reference: %w", err)
	}

	return secret, nil
}

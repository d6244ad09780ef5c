package postgresinstance

import (
	"strings"
	"testing"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	openchoreov1alpha1 "github.com/openchoreo/postgresinstance-operator/api/v1alpha1"
)

func validInstance() *openchoreov1alpha1.PostgresInstance {
	return &openchoreov1alpha1.PostgresInstance{
		ObjectMeta: metav1.ObjectMeta{
			Name:      "orders-db",
			Namespace: "default",
		},
		Spec: openchoreov1alpha1.PostgresInstanceSpec{
			Host:     "db.example",
			Database: "app",
			Username: "svc",
			PasswordSecretRef: openchoreov1alpha1.SecretKeyRef{
				Name: "pw",
				Key:  "password",
			},
		},
	}
}

func TestValidateSpec(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*openchoreov1alpha1.PostgresInstance)
		wantField string
	}{
		{
			name:   "valid minimal spec",
			mutate: func(pi *openchoreov1alpha1.PostgresInstance) {},
		},
		{
			name: "valid with all optional fields absent",
			mutate: func(pi *openchoreov1alpha1.PostgresInstance) {
				pi.Spec.Port = 0
				pi.Spec.SSLMode = ""
				pi.Spec.AdditionalParams = nil
				pi.Spec.BindingSecretName = ""
			},
		},
		{
			name: "missing host",
			mutate: func(pi *openchoreov1alpha1.PostgresInstance) {
				pi.Spec.Host = ""
			},
			wantField: "spec.host",
		},
		{
			name: "missing database",
			mutate: func(pi *openchoreov1alpha1.PostgresInstance) {
				pi.Spec.Database = ""
			},
			wantField: "spec.database",
		},
		{
			name: "missing username",
			mutate: func(pi *openchoreov1alpha1.PostgresInstance) {
				pi.Spec.Username = ""
			},
			wantField: "spec.username",
		},
		{
			name: "missing password secret name",
			mutate: func(pi *openchoreov1alpha1.PostgresInstance) {
				pi.Spec.PasswordSecretRef.Name = ""
			},
			wantField: "spec.passwordSecretRef.name",
		},
		{
			name: "missing password secret key",
			mutate: func(pi *openchoreov1alpha1.PostgresInstance) {
				pi.Spec.PasswordSecretRef.Key = ""
			},
			wantField: "spec.passwordSecretRef.key",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pi := validInstance()
			tc.mutate(pi)

			errs := validateSpec(pi)

			if tc.wantField == "" {
				if len(errs) != 0 {
					t.Fatalf("expected no errors, got %v", errs)
				}
				return
			}

			if len(errs) == 0 {
				t.Fatalf("expected error on %s, got none", tc.wantField)
			}
			if !strings.Contains(errs.ToAggregate().Error(), tc.wantField) {
				t.Errorf("expected error naming %s, got: %v", tc.wantField, errs.ToAggregate())
			}
		})
	}
}

func TestValidateSpecAllMissing(t *testing.T) {
	pi := &openchoreov1alpha1.PostgresInstance{}
	errs := validateSpec(pi)
	if len(errs) != 5 {
		t.Errorf("expected 5 errors for empty spec, got %d: %v", len(errs), errs)
	}
}

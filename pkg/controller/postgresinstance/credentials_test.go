package postgresinstance

import (
	"context"
	"errors"
	"testing"
	"time"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	openchoreov1alpha1 "github.com/openchoreo/postgresinstance-operator/api/v1alpha1"
	"github.com/openchoreo/postgresinstance-operator/pkg/testutil"
)

func credentialScheme(t *testing.T) *runtime.Scheme {
	t.Helper()
	scheme := runtime.NewScheme()
	if err := openchoreov1alpha1.AddToScheme(scheme); err != nil {
		t.Fatalf("AddToScheme: %v", err)
	}
	if err := corev1.AddToScheme(scheme); err != nil {
		t.Fatalf("AddToScheme: %v", err)
	}
	return scheme
}

func TestResolvePassword(t *testing.T) {
	pwSecret := &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{Name: "pw", Namespace: "default"},
		Data:       map[string][]byte{"password": []byte("s3cr3t")},
	}

	tests := []struct {
		name          string
		secret        *corev1.Secret
		retryDelay    time.Duration
		wantPassword  string
		wantTransient bool
		wantDelay     time.Duration
	}{
		{
			name:         "password resolved",
			secret:       pwSecret,
			wantPassword: "s3cr3t",
		},
		{
			name:          "secret missing",
			secret:        nil,
			wantTransient: true,
			wantDelay:     DefaultCredentialRetryDelay,
		},
		{
			name: "key missing",
			secret: &corev1.Secret{
				ObjectMeta: metav1.ObjectMeta{Name: "pw", Namespace: "default"},
				Data:       map[string][]byte{"other": []byte("x")},
			},
			wantTransient: true,
			wantDelay:     DefaultCredentialRetryDelay,
		},
		{
			name: "nil data",
			secret: &corev1.Secret{
				ObjectMeta: metav1.ObjectMeta{Name: "pw", Namespace: "default"},
			},
			wantTransient: true,
			wantDelay:     DefaultCredentialRetryDelay,
		},
		{
			name:          "custom retry delay",
			secret:        nil,
			retryDelay:    3 * time.Second,
			wantTransient: true,
			wantDelay:     3 * time.Second,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			builder := fake.NewClientBuilder().WithScheme(credentialScheme(t))
			if tc.secret != nil {
				builder = builder.WithObjects(tc.secret)
			}

			r := &PostgresInstanceReconciler{
				Client:               builder.Build(),
				CredentialRetryDelay: tc.retryDelay,
			}

			got, err := r.resolvePassword(context.Background(), validInstance())

			if tc.wantTransient {
				var transient *TransientError
				if !errors.As(err, &transient) {
					t.Fatalf("expected TransientError, got %v", err)
				}
				if transient.Delay != tc.wantDelay {
					t.Errorf("delay = %s, want %s", transient.Delay, tc.wantDelay)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.wantPassword {
				t.Errorf("password = %q, want %q", got, tc.wantPassword)
			}
		})
	}
}

func TestResolvePasswordGetError(t *testing.T) {
	errBoom := errors.New("boom")
	baseClient := fake.NewClientBuilder().WithScheme(credentialScheme(t)).Build()
	r := &PostgresInstanceReconciler{
		Client: testutil.NewFakeClientWithFailures(baseClient, &testutil.FailureConfig{
			OnGet: testutil.FailOnKeyName("pw", errBoom),
		}),
	}

	_, err := r.resolvePassword(context.Background(), validInstance())
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
	var transient *TransientError
	if errors.As(err, &transient) {
		t.Error("store errors other than NotFound must not be transient")
	}
}

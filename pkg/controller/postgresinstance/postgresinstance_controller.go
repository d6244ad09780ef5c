// Package postgresinstance reconciles PostgresInstance resources into
// credential-bearing binding Secrets.
package postgresinstance

import (
	"context"
	"errors"
	"fmt"
	"time"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/tools/record"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller"
	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/reconcile"

	openchoreov1alpha1 "github.com/openchoreo/postgresinstance-operator/api/v1alpha1"
	"github.com/openchoreo/postgresinstance-operator/pkg/dburl"
	"github.com/openchoreo/postgresinstance-operator/pkg/monitoring"
)

// DefaultCredentialRetryDelay is the requeue delay applied while a referenced
// password Secret or key does not exist yet.
const DefaultCredentialRetryDelay = 10 * time.Second

// PostgresInstanceReconciler reconciles a PostgresInstance object.
type PostgresInstanceReconciler struct {
	client.Client
	Scheme   *runtime.Scheme
	Recorder record.EventRecorder

	// CredentialRetryDelay overrides DefaultCredentialRetryDelay when
	// positive.
	CredentialRetryDelay time.Duration
}

// Reconcile derives the binding Secret from the PostgresInstance spec and the
// referenced password Secret, then reports readiness on the status
// subresource.
//
// The whole reconcile is a pure re-derivation: no prior status is consulted,
// and the binding Secret is fully overwritten on every run.
//
// +kubebuilder:rbac:groups=openchoreo.dev,resources=postgresinstances,verbs=get;list;watch
// +kubebuilder:rbac:groups=openchoreo.dev,resources=postgresinstances/status,verbs=get;update;patch
// +kubebuilder:rbac:groups="",resources=secrets,verbs=get;list;watch;create;update;patch
// +kubebuilder:rbac:groups="",resources=events,verbs=create;patch
func (r *PostgresInstanceReconciler) Reconcile(
	ctx context.Context,
	req ctrl.Request,
) (ctrl.Result, error) {
	l := log.FromContext(ctx)

	pi := &openchoreov1alpha1.PostgresInstance{}
	err := r.Get(ctx, req.NamespacedName, pi)
	if err != nil {
		if apierrors.IsNotFound(err) {
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, fmt.Errorf("failed to get PostgresInstance: %w", err)
	}

	// If being deleted, the owner-reference cascade cleans up the binding
	// Secret.
	if !pi.DeletionTimestamp.IsZero() {
		return ctrl.Result{}, nil
	}

	ctx, span := monitoring.StartReconcileSpan(
		ctx,
		"PostgresInstance.Reconcile",
		pi.Name,
		pi.Namespace,
		"PostgresInstance",
	)
	defer span.End()

	if errs := validateSpec(pi); len(errs) > 0 {
		agg := errs.ToAggregate()
		l.Error(agg, "Invalid PostgresInstance spec")
		if r.Recorder != nil {
			r.Recorder.Eventf(pi, "Warning", ReasonValidationFailed, "Invalid spec: %v", agg)
		}
		monitoring.SetInstanceInfo(pi.Name, pi.Namespace, false)
		termErr := reconcile.TerminalError(fmt.Errorf("invalid spec: %w", agg))
		monitoring.RecordSpanError(span, termErr)
		return ctrl.Result{}, termErr
	}

	password, err := r.resolvePassword(ctx, pi)
	if err != nil {
		var transient *TransientError
		if errors.As(err, &transient) {
			l.Info("Waiting for password secret",
				"secret", pi.Spec.PasswordSecretRef.Name,
				"key", pi.Spec.PasswordSecretRef.Key,
				"retryAfter", transient.Delay)
			if r.Recorder != nil {
				r.Recorder.Eventf(pi, "Normal", ReasonCredentialPending,
					"Waiting for password secret: %v", transient.Err)
			}
			monitoring.SetInstanceInfo(pi.Name, pi.Namespace, false)
			return ctrl.Result{RequeueAfter: transient.Delay}, nil
		}
		monitoring.RecordSpanError(span, err)
		return ctrl.Result{}, err
	}

	databaseURL := dburl.Build(dburl.Config{
		Host:     pi.Spec.Host,
		Port:     EffectivePort(pi),
		Database: pi.Spec.Database,
		Username: pi.Spec.Username,
		Password: password,
		SSLMode:  pi.Spec.SSLMode,
		Params:   pi.Spec.AdditionalParams,
	})

	desired, err := BuildBindingSecret(pi, databaseURL, password, r.Scheme)
	if err != nil {
		monitoring.RecordSpanError(span, err)
		return ctrl.Result{}, fmt.Errorf("failed to build binding secret: %w", err)
	}

	upsertCtx, upsertSpan := monitoring.StartChildSpan(ctx, "UpsertBindingSecret")
	op, err := r.upsertBindingSecret(upsertCtx, desired)
	if err != nil {
		monitoring.RecordSpanError(upsertSpan, err)
		upsertSpan.End()
		l.Error(err, "Failed to write binding secret", "secret", desired.Name)
		if r.Recorder != nil {
			r.Recorder.Eventf(pi, "Warning", ReasonFailedApply,
				"Failed to write binding secret %s: %v", desired.Name, err)
		}
		monitoring.RecordSpanError(span, err)
		return ctrl.Result{}, err
	}
	upsertSpan.End()
	monitoring.RecordBindingSecretWrite(pi.Namespace, op)

	if err := r.patchStatus(ctx, pi, desired.Name); err != nil {
		monitoring.RecordSpanError(span, err)
		return ctrl.Result{}, err
	}

	monitoring.SetInstanceInfo(pi.Name, pi.Namespace, true)
	if r.Recorder != nil {
		r.Recorder.Eventf(pi, "Normal", ReasonSecretReady,
			"Binding secret %s is up to date", desired.Name)
	}
	return ctrl.Result{}, nil
}

// upsertBindingSecret creates the desired Secret, falling back to a merge
// patch when it already exists. No pre-read: tolerating the AlreadyExists
// conflict avoids a read-then-write race, and last-write-wins is safe because
// the content is a pure function of the current spec. Returns the write
// operation performed.
func (r *PostgresInstanceReconciler) upsertBindingSecret(
	ctx context.Context,
	desired *corev1.Secret,
) (string, error) {
	err := r.Create(ctx, desired)
	if err == nil {
		return monitoring.WriteCreate, nil
	}
	if !apierrors.IsAlreadyExists(err) {
		return "", fmt.Errorf("failed to create binding secret: %w", err)
	}

	if err := r.Patch(ctx, desired, client.Merge); err != nil {
		return "", fmt.Errorf("failed to patch binding secret: %w", err)
	}
	return monitoring.WritePatch, nil
}

func (r *PostgresInstanceReconciler) credentialRetryDelay() time.Duration {
	if r.CredentialRetryDelay > 0 {
		return r.CredentialRetryDelay
	}
	return DefaultCredentialRetryDelay
}

// SetupWithManager sets up the controller with the Manager. Owning the
// binding Secret retriggers reconciliation when it drifts or is deleted.
func (r *PostgresInstanceReconciler) SetupWithManager(
	mgr ctrl.Manager,
	opts ...controller.Options,
) error {
	controllerOpts := controller.Options{}
	if len(opts) > 0 {
		controllerOpts = opts[0]
	}

	return ctrl.NewControllerManagedBy(mgr).
		For(&openchoreov1alpha1.PostgresInstance{}).
		Owns(&corev1.Secret{}).
		WithOptions(controllerOpts).
		Complete(r)
}

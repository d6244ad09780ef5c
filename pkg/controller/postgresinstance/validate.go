package postgresinstance

import (
	"k8s.io/apimachinery/pkg/util/validation/field"

	openchoreov1alpha1 "github.com/openchoreo/postgresinstance-operator/api/v1alpha1"
)

// validateSpec checks the fields the connection string cannot be derived
// without. A non-empty result is a permanent failure: the spec will not
// become valid without an external edit.
func validateSpec(pi *openchoreov1alpha1.PostgresInstance) field.ErrorList {
	var errs field.ErrorList
	spec := field.NewPath("spec")

	if pi.Spec.Host == "" {
		errs = append(errs, field.Required(spec.Child("host"), "host is required"))
	}
	if pi.Spec.Database == "" {
		errs = append(errs, field.Required(spec.Child("database"), "database is required"))
	}
	if pi.Spec.Username == "" {
		errs = append(errs, field.Required(spec.Child("username"), "username is required"))
	}

	ref := spec.Child("passwordSecretRef")
	if pi.Spec.PasswordSecretRef.Name == "" {
		errs = append(errs, field.Required(ref.Child("name"), "password secret name is required"))
	}
	if pi.Spec.PasswordSecretRef.Key == "" {
		errs = append(errs, field.Required(ref.Child("key"), "password secret key is required"))
	}

	return errs
}

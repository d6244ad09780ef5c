package metadata

import "maps"

// Standard Kubernetes label keys following kubernetes.io conventions.
//
// See: https://kubernetes.io/docs/concepts/overview/working-with-objects/common-labels/
const (
	// LabelAppName is the standard label key for the application name.
	LabelAppName = "app.kubernetes.io/name"

	// LabelAppInstance is the standard label key for the unique instance name.
	LabelAppInstance = "app.kubernetes.io/instance"

	// LabelAppComponent is the standard label key for the component within the
	// application.
	LabelAppComponent = "app.kubernetes.io/component"

	// LabelAppManagedBy is the standard label key for the tool managing the
	// resource.
	LabelAppManagedBy = "app.kubernetes.io/managed-by"
)

const (
	// AppNamePostgresInstance is the fixed application name for all derived
	// resources.
	AppNamePostgresInstance = "postgresinstance"

	// ManagedByController identifies the controller managing derived
	// resources. Consumers use this label to find binding Secrets.
	ManagedByController = "postgresinstance-controller"

	// ComponentBinding identifies the binding-secret component.
	ComponentBinding = "binding"
)

// BuildBindingLabels returns the labels applied to a binding Secret.
// instanceName is the name of the owning PostgresInstance.
func BuildBindingLabels(instanceName string) map[string]string {
	return map[string]string{
		LabelAppName:      AppNamePostgresInstance,
		LabelAppInstance:  instanceName,
		LabelAppComponent: ComponentBinding,
		LabelAppManagedBy: ManagedByController,
	}
}

// MergeLabels merges custom labels into standard labels, with standard
// labels taking precedence on key conflicts.
func MergeLabels(standard, custom map[string]string) map[string]string {
	merged := make(map[string]string, len(standard)+len(custom))
	maps.Copy(merged, custom)
	maps.Copy(merged, standard)
	return merged
}

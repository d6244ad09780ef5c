/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// DefaultPort is the PostgreSQL port assumed when spec.port is unset.
const DefaultPort int32 = 5432

// ConditionReady is the condition type reporting that the binding Secret
// has been materialized for the current spec.
const ConditionReady = "Ready"

// SecretKeyRef points at a single key within a Secret in the same namespace
// as the PostgresInstance.
//
// The required-ness of Name and Key is enforced by the controller rather
// than the CRD schema: an incomplete reference is reported as a terminal
// reconciliation failure instead of being rejected at admission, so partial
// specs remain visible on the resource.
type SecretKeyRef struct {
	// Name of the referenced Secret.
	// +optional
	// +kubebuilder:validation:MaxLength=253
	Name string `json:"name,omitempty"`

	// Key within the referenced Secret holding the value.
	// +optional
	// +kubebuilder:validation:MaxLength=253
	Key string `json:"key,omitempty"`
}

// PostgresInstanceSpec defines the desired state of PostgresInstance.
type PostgresInstanceSpec struct {
	// Host is the PostgreSQL server hostname or IP address. It is used
	// verbatim in the derived connection string, never percent-encoded.
	// +optional
	// +kubebuilder:validation:MaxLength=253
	Host string `json:"host,omitempty"`

	// Port is the PostgreSQL server port.
	// +optional
	// +kubebuilder:default=5432
	// +kubebuilder:validation:Minimum=1
	// +kubebuilder:validation:Maximum=65535
	Port int32 `json:"port,omitempty"`

	// Database is the database name to connect to.
	// +optional
	// +kubebuilder:validation:MaxLength=63
	Database string `json:"database,omitempty"`

	// Username is the role used to connect.
	// +optional
	// +kubebuilder:validation:MaxLength=63
	Username string `json:"username,omitempty"`

	// SSLMode, when set, is emitted as the sslmode connection parameter
	// (e.g. "require", "verify-full").
	// +optional
	// +kubebuilder:validation:MaxLength=63
	SSLMode string `json:"sslMode,omitempty"`

	// AdditionalParams are extra connection-string query parameters.
	// Entries with an empty value are dropped. Parameters are emitted in
	// sorted key order, after sslmode.
	// +optional
	// +kubebuilder:validation:MaxProperties=32
	AdditionalParams map[string]string `json:"additionalParams,omitempty"`

	// PasswordSecretRef references the Secret key holding the password for
	// Username. The Secret must live in the same namespace as the
	// PostgresInstance.
	// +optional
	PasswordSecretRef SecretKeyRef `json:"passwordSecretRef,omitempty"`

	// BindingSecretName is the name of the derived binding Secret.
	// Defaults to "<name>-binding".
	// +optional
	// +kubebuilder:validation:MaxLength=253
	BindingSecretName string `json:"bindingSecretName,omitempty"`
}

// PostgresInstanceStatus defines the observed state of PostgresInstance.
type PostgresInstanceStatus struct {
	// ObservedGeneration is the spec generation most recently reconciled
	// to completion.
	// +optional
	ObservedGeneration int64 `json:"observedGeneration,omitempty"`

	// BindingSecretName is the name of the materialized binding Secret.
	// +optional
	BindingSecretName string `json:"bindingSecretName,omitempty"`

	// Conditions represent the latest available observations. The list is
	// replaced wholesale on every successful reconcile and contains exactly
	// one Ready entry.
	// +optional
	Conditions []metav1.Condition `json:"conditions,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Host",type="string",JSONPath=".spec.host"
// +kubebuilder:printcolumn:name="Database",type="string",JSONPath=".spec.database"
// +kubebuilder:printcolumn:name="Ready",type="string",JSONPath=".status.conditions[?(@.type=='Ready')].status"

// PostgresInstance is the Schema for the postgresinstances API.
type PostgresInstance struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   PostgresInstanceSpec   `json:"spec,omitempty"`
	Status PostgresInstanceStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// PostgresInstanceList contains a list of PostgresInstance.
type PostgresInstanceList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []PostgresInstance `json:"items"`
}

func init() {
	SchemeBuilder.Register(&PostgresInstance{}, &PostgresInstanceList{})
}

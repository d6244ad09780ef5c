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

// Package v1alpha1 defines the API types for the PostgresInstance Operator.
//
// The openchoreo.dev API group contains a single Custom Resource:
//
//   - PostgresInstance: a declarative description of a PostgreSQL endpoint
//     (host, port, database, username, and a reference to the secret holding
//     the password). The operator derives a connection string from it and
//     materializes a binding Secret owned by the resource.
//
// The binding Secret is the only child object the operator manages. Its
// lifetime is tied to the PostgresInstance through a controller owner
// reference, so deleting the PostgresInstance cascades to the Secret.
//
// # Versioning
//
// This is the v1alpha1 version, indicating the API is in early development
// and may change in backward-incompatible ways.
//
// +kubebuilder:object:generate=true
// +groupName=openchoreo.dev
package v1alpha1

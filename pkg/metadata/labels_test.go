package metadata_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/openchoreo/postgresinstance-operator/pkg/metadata"
)

func TestBuildBindingLabels(t *testing.T) {
	tests := map[string]struct {
		instanceName string
		want         map[string]string
	}{
		"typical case": {
			instanceName: "orders-db",
			want: map[string]string{
				"app.kubernetes.io/name":       "postgresinstance",
				"app.kubernetes.io/instance":   "orders-db",
				"app.kubernetes.io/component":  "binding",
				"app.kubernetes.io/managed-by": "postgresinstance-controller",
			},
		},
		"empty instance name allowed": {
			instanceName: "",
			want: map[string]string{
				"app.kubernetes.io/name":       "postgresinstance",
				"app.kubernetes.io/instance":   "",
				"app.kubernetes.io/component":  "binding",
				"app.kubernetes.io/managed-by": "postgresinstance-controller",
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := metadata.BuildBindingLabels(tc.instanceName)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("BuildBindingLabels() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMergeLabels(t *testing.T) {
	tests := map[string]struct {
		standard map[string]string
		custom   map[string]string
		want     map[string]string
	}{
		"standard labels win on conflicts": {
			standard: map[string]string{
				"app.kubernetes.io/managed-by": "postgresinstance-controller",
			},
			custom: map[string]string{
				"app.kubernetes.io/managed-by": "helm",
				"team":                         "data",
			},
			want: map[string]string{
				"app.kubernetes.io/managed-by": "postgresinstance-controller",
				"team":                         "data",
			},
		},
		"nil custom labels": {
			standard: map[string]string{"a": "1"},
			custom:   nil,
			want:     map[string]string{"a": "1"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := metadata.MergeLabels(tc.standard, tc.custom)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("MergeLabels() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

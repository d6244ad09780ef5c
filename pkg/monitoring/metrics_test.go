package monitoring

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestCollectorsRegistered(t *testing.T) {
	collectors := Collectors()
	if len(collectors) == 0 {
		t.Fatal("expected at least one collector, got 0")
	}
}

func TestMetricNamingConvention(t *testing.T) {
	for _, c := range Collectors() {
		ch := make(chan *prometheus.Desc, 10)
		c.Describe(ch)
		close(ch)

		for desc := range ch {
			name := extractMetricName(desc)
			if !strings.HasPrefix(name, "postgresinstance_operator_") {
				t.Errorf("metric %q does not start with postgresinstance_operator_ prefix", name)
			}
		}
	}
}

func TestMetricHelpNonEmpty(t *testing.T) {
	for _, c := range Collectors() {
		ch := make(chan *prometheus.Desc, 10)
		c.Describe(ch)
		close(ch)

		for desc := range ch {
			help := extractHelp(desc)
			if help == "" {
				t.Errorf("metric %q has empty help string", desc.String())
			}
		}
	}
}

func TestMetricLabels(t *testing.T) {
	tests := []struct {
		name       string
		collector  prometheus.Collector
		wantLabels []string
	}{
		{
			name:       "instanceInfo",
			collector:  instanceInfo,
			wantLabels: []string{"name", "namespace", "ready"},
		},
		{
			name:       "bindingSecretWrites",
			collector:  bindingSecretWrites,
			wantLabels: []string{"namespace", "operation"},
		},
		{
			name:       "credentialFailures",
			collector:  credentialFailures,
			wantLabels: []string{"namespace", "reason"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := make(chan *prometheus.Desc, 1)
			tt.collector.Describe(ch)
			desc := <-ch
			close(ch)

			descStr := desc.String()
			for _, label := range tt.wantLabels {
				if !strings.Contains(descStr, label) {
					t.Errorf("metric %s missing label %q in descriptor: %s", tt.name, label, descStr)
				}
			}
		})
	}
}

// extractMetricName pulls fqName from the Desc string representation.
// Format: Desc{fqName: "postgresinstance_...", help: "...", ...}
func extractMetricName(desc *prometheus.Desc) string {
	s := desc.String()
	prefix := "fqName: \""
	start := strings.Index(s, prefix)
	if start < 0 {
		return ""
	}
	start += len(prefix)
	end := strings.Index(s[start:], "\"")
	if end < 0 {
		return ""
	}
	return s[start : start+end]
}

// extractHelp pulls the help text from the Desc string representation.
func extractHelp(desc *prometheus.Desc) string {
	s := desc.String()
	prefix := "help: \""
	start := strings.Index(s, prefix)
	if start < 0 {
		return ""
	}
	start += len(prefix)
	end := strings.Index(s[start:], "\"")
	if end < 0 {
		return ""
	}
	return s[start : start+end]
}

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/d-kuro/tana-mcp/internal/config"
	"github.com/d-kuro/tana-mcp/internal/tana"
)

func TestPrintStatus(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		want    []string
		notWant []string
	}{
		{
			name: "ready",
			cfg:  config.Config{APIToken: "secret-token-1234", Endpoint: tana.DefaultEndpoint, LogLevel: "info"},
			want: []string{
				"Config file: (none)",
				"API token:   ********1234",
				"Endpoint:    " + tana.DefaultEndpoint,
				"✓ Ready",
				"Tools:     12",
				"Prompts:   4",
				"Resources: 4",
			},
			notWant: []string{"secret-token"},
		},
		{
			name: "missing token",
			cfg:  config.Config{Endpoint: tana.DefaultEndpoint, LogLevel: "info"},
			want: []string{"API token:   (not set)", "❌ Not ready", config.EnvAPIToken},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := printStatus(&buf, &tt.cfg); err != nil {
				t.Fatalf("printStatus: %v", err)
			}
			out := buf.String()
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
			for _, notWant := range tt.notWant {
				if strings.Contains(out, notWant) {
					t.Errorf("output contains %q:\n%s", notWant, out)
				}
			}
		})
	}
}

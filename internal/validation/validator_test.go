package validation

import (
	"testing"

	"github.com/d-kuro/tana-mcp/internal/errors"
)

func TestValidateURL(t *testing.T) {
	v := NewDefaultValidator()

	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://tana.inc/docs", false},
		{"http://localhost:8080/x", false},
		{"mailto:someone@example.com", false},
		{"file:///tmp/report.pdf", false},
		{"not-a-url", true},
		{"", true},
		{"   ", true},
		{"https://", true},
		{"://missing-scheme", true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			err := v.ValidateURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestValidateEndpoint(t *testing.T) {
	v := NewDefaultValidator()

	if err := v.ValidateEndpoint("https://europe-west1-tagr-prod.cloudfunctions.net/addToNodeV2"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	invalid := []string{"", "http://127.0.0.1:9999/add", "ftp://example.com", "https:///path-only", "not a url"}
	for _, endpoint := range invalid {
		if err := v.ValidateEndpoint(endpoint); err == nil {
			t.Errorf("ValidateEndpoint(%q) expected error", endpoint)
		}
	}

	lax := NewDefaultValidator().WithAllowedEndpointSchemes([]string{"https", "http"})
	if err := lax.ValidateEndpoint("http://127.0.0.1:9999/add"); err != nil {
		t.Errorf("expected http to be accepted once allowed: %v", err)
	}
	if err := lax.ValidateEndpoint("ftp://example.com"); err == nil {
		t.Error("expected ftp to stay rejected")
	}
}

func TestValidateDate(t *testing.T) {
	v := NewDefaultValidator()

	valid := []string{"2024-01-15", "2024-01-15T09:30", "2024-01-15T09:30:00", "2024-01-15T09:30:00Z", "2024-01-15T09:30:00+02:00", "2024-01-15T09:30:00.123Z"}
	for _, date := range valid {
		if err := v.ValidateDate(date); err != nil {
			t.Errorf("ValidateDate(%q) unexpected error: %v", date, err)
		}
	}

	invalid := []string{"", "yesterday", "15/01/2024", "2024-13-01", "2024-01-15 09:30"}
	for _, date := range invalid {
		if err := v.ValidateDate(date); err == nil {
			t.Errorf("ValidateDate(%q) expected error", date)
		}
	}
}

func TestValidateBase64(t *testing.T) {
	v := NewDefaultValidator()

	if err := v.ValidateBase64("aGVsbG8gd29ybGQ="); err != nil {
		t.Errorf("padded base64 rejected: %v", err)
	}
	if err := v.ValidateBase64("aGVsbG8gd29ybGQ"); err != nil {
		t.Errorf("unpadded base64 rejected: %v", err)
	}
	if err := v.ValidateBase64(""); err == nil {
		t.Error("expected empty data to be rejected")
	}
	if err := v.ValidateBase64("not base64!!"); err == nil {
		t.Error("expected invalid base64 to be rejected")
	}
}

func TestValidateContentType(t *testing.T) {
	v := NewDefaultValidator()

	for _, ct := range []string{"application/pdf", "text/plain; charset=utf-8", "image/png"} {
		if err := v.ValidateContentType(ct); err != nil {
			t.Errorf("ValidateContentType(%q) unexpected error: %v", ct, err)
		}
	}
	for _, ct := range []string{"", "pdf", "/"} {
		if err := v.ValidateContentType(ct); err == nil {
			t.Errorf("ValidateContentType(%q) expected error", ct)
		}
	}
}

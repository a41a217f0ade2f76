// Package validation provides syntactic checks for tool arguments and configuration.
package validation

import (
	"encoding/base64"
	"mime"
	"net/url"
	"strings"
	"time"

	"github.com/d-kuro/tana-mcp/internal/errors"
)

// dateLayouts are the ISO 8601 forms Tana accepts for date nodes.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05Z07:00",
	time.RFC3339Nano,
}

// DefaultValidator provides the default validation implementation.
type DefaultValidator struct {
	allowedEndpointSchemes []string
}

// NewDefaultValidator creates a validator that accepts only https endpoints.
func NewDefaultValidator() *DefaultValidator {
	return &DefaultValidator{
		allowedEndpointSchemes: []string{"https"},
	}
}

// WithAllowedEndpointSchemes replaces the endpoint schemes the validator accepts.
func (v *DefaultValidator) WithAllowedEndpointSchemes(schemes []string) *DefaultValidator {
	v.allowedEndpointSchemes = make([]string, len(schemes))
	copy(v.allowedEndpointSchemes, schemes)
	return v
}

// ValidateURL checks that urlStr is an absolute URL. Any scheme is accepted
// since URL nodes may point at mailto:, tana: or other non-web targets.
func (v *DefaultValidator) ValidateURL(urlStr string) error {
	return URL(urlStr)
}

// ValidateEndpoint checks that urlStr is usable as the Tana API endpoint.
func (v *DefaultValidator) ValidateEndpoint(urlStr string) error {
	if urlStr == "" {
		return errors.Validation("endpoint cannot be empty")
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return errors.Validationf("invalid endpoint URL: %v", err)
	}

	allowed := false
	for _, scheme := range v.allowedEndpointSchemes {
		if strings.EqualFold(parsedURL.Scheme, scheme) {
			allowed = true
			break
		}
	}
	if !allowed {
		return errors.Validationf("endpoint scheme %q is not allowed", parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return errors.Validation("endpoint must have a host")
	}

	return nil
}

// ValidateDate checks that date is an ISO 8601 date or date-time.
func (v *DefaultValidator) ValidateDate(date string) error {
	return Date(date)
}

// ValidateBase64 checks that data is standard base64.
func (v *DefaultValidator) ValidateBase64(data string) error {
	return Base64(data)
}

// ValidateContentType checks that contentType is a MIME media type.
func (v *DefaultValidator) ValidateContentType(contentType string) error {
	return ContentType(contentType)
}

// URL reports whether urlStr is an absolute URL.
func URL(urlStr string) error {
	if strings.TrimSpace(urlStr) == "" {
		return errors.Validation("URL cannot be empty")
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return errors.Validationf("invalid URL %q: %v", urlStr, err)
	}

	if parsedURL.Scheme == "" {
		return errors.Validationf("invalid URL %q: missing scheme", urlStr)
	}

	if parsedURL.Host == "" && parsedURL.Opaque == "" && parsedURL.Path == "" {
		return errors.Validationf("invalid URL %q: missing host", urlStr)
	}

	return nil
}

// Date reports whether date matches one of the accepted ISO 8601 layouts.
func Date(date string) error {
	if strings.TrimSpace(date) == "" {
		return errors.Validation("date cannot be empty")
	}

	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, date); err == nil {
			return nil
		}
	}

	return errors.Validationf("invalid date %q: expected ISO 8601 (e.g. 2024-01-15)", date)
}

// Base64 reports whether data decodes as standard base64, padded or not.
func Base64(data string) error {
	if data == "" {
		return errors.Validation("file data cannot be empty")
	}

	if _, err := base64.StdEncoding.DecodeString(data); err == nil {
		return nil
	}
	if _, err := base64.RawStdEncoding.DecodeString(data); err == nil {
		return nil
	}

	return errors.Validation("file data is not valid base64")
}

// ContentType reports whether contentType parses as a MIME media type.
func ContentType(contentType string) error {
	if contentType == "" {
		return errors.Validation("content type cannot be empty")
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.Contains(mediaType, "/") {
		return errors.Validationf("invalid content type %q", contentType)
	}

	return nil
}

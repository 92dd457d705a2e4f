package errors

import (
	"net/url"
	"strings"
	"unicode"
)

// ValidateEndpoint checks that raw is an absolute http(s) URL with a host.
// OAI-PMH base URLs carry no query string; one is tolerated but reported
// by the caller, not here.
func ValidateEndpoint(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return New(ErrCodeInvalidEndpoint, "endpoint cannot be empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return Wrap(ErrCodeInvalidEndpoint, err, "invalid endpoint %q", raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return New(ErrCodeInvalidEndpoint, "endpoint %q must use http or https", raw)
	}
	if u.Host == "" {
		return New(ErrCodeInvalidEndpoint, "endpoint %q has no host", raw)
	}
	return nil
}

// ValidateIdentifier validates an OAI record identifier.
// Identifiers are opaque URIs, so only emptiness, length and control
// characters are rejected.
func ValidateIdentifier(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "identifier cannot be empty")
	}
	if len(id) > 2048 {
		return New(ErrCodeInvalidInput, "identifier too long (max 2048 characters)")
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "identifier contains invalid control characters")
		}
	}
	return nil
}

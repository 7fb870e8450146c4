package errors

import (
	"net/url"
	"strings"
	"unicode"
)

// maxRequestPathLength bounds the path forwarded to the word-count endpoint.
const maxRequestPathLength = 4096

// ValidateRequestPath validates a path before it is sent to a word-count
// endpoint or walked locally.
//
// Validation rules:
//   - Path cannot be empty or whitespace only
//   - Maximum length of 4096 bytes
//   - No null bytes or control characters
//
// Absolute paths and ".." segments are allowed: the path names a directory
// on the machine that does the counting, and that machine decides what it
// will read.
func ValidateRequestPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidInput, "path cannot be empty")
	}

	if len(path) > maxRequestPathLength {
		return New(ErrCodeInvalidInput, "path too long (max %d bytes)", maxRequestPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "path contains invalid control characters")
		}
	}

	return nil
}

// ValidateURL validates an endpoint URL.
// It ensures the URL parses, has a host and uses the http or https scheme.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return Wrap(ErrCodeInvalidInput, err, "invalid URL %q", rawURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}
	if u.Host == "" {
		return New(ErrCodeInvalidInput, "URL must include a host")
	}

	return nil
}

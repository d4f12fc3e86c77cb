package utils

import (
	"errors"
	"math"
	"regexp"
	"strings"
	"unicode"
)

// Compiled regular expressions for validation
var (
	// Request IDs: alphanumeric, underscore, hyphen, dot
	validIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

	// Detect HTML/script tags
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
)

// ValidateID validates that an ID is safe and within reasonable limits
func ValidateID(id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	if len(id) > 100 {
		return errors.New("id too long (max 100 characters)")
	}

	if !validIDPattern.MatchString(id) {
		return errors.New("id contains invalid characters")
	}

	return nil
}

// ValidateSite validates a launch site selection. Site names come from the
// dataset, so only length and control characters are checked here; a site
// that is not in the data is still valid and selects nothing.
func ValidateSite(site string) error {
	if site == "" {
		return errors.New("site cannot be empty")
	}

	if len(site) > 100 {
		return errors.New("site too long (max 100 characters)")
	}

	if strings.IndexFunc(site, unicode.IsControl) >= 0 {
		return errors.New("site contains invalid characters")
	}

	return nil
}

// ValidatePayloadBound validates one end of a payload range in kilograms
func ValidatePayloadBound(kg float64) error {
	if math.IsNaN(kg) || math.IsInf(kg, 0) {
		return errors.New("payload must be a finite number")
	}

	if kg < 0 {
		return errors.New("payload must be non-negative")
	}

	return nil
}

// SanitizeInput removes HTML tags and surrounding whitespace
func SanitizeInput(input string) string {
	sanitized := htmlTagPattern.ReplaceAllString(input, "")
	return strings.TrimSpace(sanitized)
}

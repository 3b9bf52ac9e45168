package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Characters stripped before checking a phone number: spaces, hyphens, parentheses
	phoneStripRegex = regexp.MustCompile(`[\s\-()]`)

	// International or local phone: optional +, 8-15 digits
	phoneRegex = regexp.MustCompile(`^\+?\d{8,15}$`)

	// Denylist for free-text sanitization. Best effort only: this removes the
	// common injection vectors, it is NOT a full HTML sanitizer.
	dangerousPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`), // scripts
		regexp.MustCompile(`(?is)<iframe[^>]*>.*?</iframe>`), // iframes
		regexp.MustCompile(`(?i)javascript:`),                // javascript: URIs
		regexp.MustCompile(`(?i)on\w+\s*=`),                  // inline event handlers (onclick, ...)
	}
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("contact_phone", ContactPhone)
}

// ContactPhone validates that a field holds a usable phone number once
// whitespace, hyphens and parentheses are removed.
func ContactPhone(fl validator.FieldLevel) bool {
	_, err := NormalizePhone(fl.Field().String())
	return err == nil
}

// NormalizePhone strips spaces, hyphens and parentheses from a raw phone
// number and validates the remainder: an optional leading +, then 8 to 15
// digits. International (+224...) and local (621...) formats both pass.
func NormalizePhone(raw string) (string, error) {
	cleaned := phoneStripRegex.ReplaceAllString(raw, "")
	if !phoneRegex.MatchString(cleaned) {
		return "", fmt.Errorf("format de téléphone invalide: utilisez un format international (+224...) ou local (621...)")
	}
	return cleaned, nil
}

// SanitizeMessage removes dangerous markup from a free-text message:
// <script> and <iframe> blocks (across line breaks), javascript: URI
// prefixes and inline on*= event handlers, then trims whitespace.
func SanitizeMessage(raw string) string {
	cleaned := raw
	for _, pattern := range dangerousPatterns {
		cleaned = pattern.ReplaceAllString(cleaned, "")
	}
	return strings.TrimSpace(cleaned)
}

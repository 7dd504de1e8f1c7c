package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// Phone number pattern - digits with optional leading + and separators
	PhonePattern = `^\+?[0-9][0-9\- ]{6,19}$`

	// Password min length
	PasswordMinLength = 8
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
	Phone *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
	Phone: regexp.MustCompile(PhonePattern),
}

// IsValidEmail reports whether email has a plausible address format
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(strings.TrimSpace(email))
}

// IsValidPhone reports whether phone looks like a dialable number
func IsValidPhone(phone string) bool {
	return CompiledPatterns.Phone.MatchString(strings.TrimSpace(phone))
}

// IsNonEmpty reports whether value carries non-whitespace content
func IsNonEmpty(value string) bool {
	return strings.TrimSpace(value) != ""
}

// IsValidPassword reports whether password meets the minimum length rule
func IsValidPassword(password string) bool {
	return len(password) >= PasswordMinLength
}

// IsPositiveAmount reports whether amount is a usable monetary value
func IsPositiveAmount(amount float64) bool {
	return amount > 0
}

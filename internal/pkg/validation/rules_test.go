package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"resident@example.com",
		"office+billing@society.co.in",
		"a.b_c@sub.domain.org",
		"  padded@example.com  ",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), "expected valid: %q", email)
	}

	invalid := []string{
		"",
		"no-at-sign",
		"missing@tld",
		"@example.com",
		"spaces in@example.com",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), "expected invalid: %q", email)
	}
}

func TestIsValidPhone(t *testing.T) {
	valid := []string{
		"9876543210",
		"+91 98765 43210",
		"022-2345-6789",
	}
	for _, phone := range valid {
		assert.True(t, IsValidPhone(phone), "expected valid: %q", phone)
	}

	invalid := []string{
		"",
		"12345",
		"phone number",
		"+",
	}
	for _, phone := range invalid {
		assert.False(t, IsValidPhone(phone), "expected invalid: %q", phone)
	}
}

func TestIsNonEmpty(t *testing.T) {
	assert.True(t, IsNonEmpty("value"))
	assert.True(t, IsNonEmpty(" x "))
	assert.False(t, IsNonEmpty(""))
	assert.False(t, IsNonEmpty("   "))
	assert.False(t, IsNonEmpty("\t\n"))
}

func TestIsValidPassword(t *testing.T) {
	assert.True(t, IsValidPassword("12345678"))
	assert.True(t, IsValidPassword("a much longer passphrase"))
	assert.False(t, IsValidPassword("1234567"))
	assert.False(t, IsValidPassword(""))
}

func TestIsPositiveAmount(t *testing.T) {
	assert.True(t, IsPositiveAmount(0.01))
	assert.True(t, IsPositiveAmount(1500))
	assert.False(t, IsPositiveAmount(0))
	assert.False(t, IsPositiveAmount(-10))
}

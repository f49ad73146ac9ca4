// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var phonePattern = regexp.MustCompile(`^[0-9\-]+$`)

// ValidatePhone checks a phone number: digits and hyphens only, at least
// one digit.
func ValidatePhone(phone string) bool {
	cleaned := strings.TrimSpace(phone)
	if cleaned == "" || !strings.ContainsAny(cleaned, "0123456789") {
		return false
	}
	return phonePattern.MatchString(cleaned)
}

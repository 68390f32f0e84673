package utils

import (
	"regexp"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail checks the address against a permissive shape check;
// real validation happens when the mailbox is used.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidPassword enforces the minimum length. Six characters is the
// instrument's published account policy.
func IsValidPassword(password string) bool {
	return len(password) >= 6
}

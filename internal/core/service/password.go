package service

import (
	"net/mail"
	"unicode"
)

const minPasswordLength = 6

// checkPassword returns every policy rule the password violates. Digit and
// lowercase are required; uppercase and non-alphanumeric are not.
func checkPassword(password string) []string {
	var violations []string

	if len(password) < minPasswordLength {
		violations = append(violations, "password must be at least 6 characters")
	}

	hasDigit, hasLower := false, false
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		}
	}
	if !hasDigit {
		violations = append(violations, "password must contain a digit")
	}
	if !hasLower {
		violations = append(violations, "password must contain a lowercase letter")
	}

	return violations
}

// validEmail reports whether the address is well-formed.
func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

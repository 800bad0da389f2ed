// Package auth holds the login form rules.
package auth

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// MinPasswordLength is the shortest accepted password, in characters.
const MinPasswordLength = 6

// ErrInvalidCredentials is wrapped by every ValidationError from Validate.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Credentials is the transient login form content.
type Credentials struct {
	Email    string
	Password string
}

// ValidationError reports which credential fields failed.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "Please enter a valid email and a password with 6+ characters."
}

func (e *ValidationError) Unwrap() error { return ErrInvalidCredentials }

// IsValid reports whether email contains "@" and password has at least
// MinPasswordLength characters. No normalization is applied.
func IsValid(email, password string) bool {
	return strings.Contains(email, "@") && utf8.RuneCountInString(password) >= MinPasswordLength
}

// Validate is IsValid with an error naming the failing fields.
func Validate(email, password string) error {
	if IsValid(email, password) {
		return nil
	}
	var fields []string
	if !strings.Contains(email, "@") {
		fields = append(fields, "email")
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		fields = append(fields, "password")
	}
	return &ValidationError{Fields: fields}
}

// Valid reports whether c passes IsValid.
func (c Credentials) Valid() bool { return IsValid(c.Email, c.Password) }

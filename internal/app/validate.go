package app

import (
	"regexp"
	"unicode/utf8"
)

// ValidationError carries the client-facing message for a rejected input.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

var (
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	letterPattern   = regexp.MustCompile(`[A-Za-z]`)
	digitPattern    = regexp.MustCompile(`[0-9]`)
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// validateRegistration checks the raw registration input. Rules run in order
// and the first failure wins; nothing is touched on failure.
func validateRegistration(username, password, email string) error {
	if username == "" || password == "" {
		return &ValidationError{msg: "Username and password are required"}
	}
	if n := utf8.RuneCountInString(username); n < 3 || n > 20 {
		return &ValidationError{msg: "Username must be between 3 and 20 characters"}
	}
	if !usernamePattern.MatchString(username) {
		return &ValidationError{msg: "Username can only contain letters, numbers and underscores"}
	}
	// Byte length on purpose: keeps any accepted password under bcrypt's
	// 72-byte input limit.
	if len(password) < 6 || len(password) > 50 {
		return &ValidationError{msg: "Password must be between 6 and 50 characters"}
	}
	if !letterPattern.MatchString(password) || !digitPattern.MatchString(password) {
		return &ValidationError{msg: "Password must contain at least one letter and one number"}
	}
	if email != "" && !emailPattern.MatchString(email) {
		return &ValidationError{msg: "Please provide a valid email address"}
	}
	return nil
}

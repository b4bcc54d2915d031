package service

import (
	"regexp"

	"ai-chatbot-be/internal/pkg/apperror"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	upperPattern = regexp.MustCompile(`[A-Z]`)
	lowerPattern = regexp.MustCompile(`[a-z]`)
	digitPattern = regexp.MustCompile(`\d`)
)

func validateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return apperror.Validation("Invalid email format")
	}
	return nil
}

// validatePassword checks the four strength rules in order and names the
// first one violated.
func validatePassword(password string) error {
	if len(password) < 8 {
		return apperror.Validation("Password must be at least 8 characters long")
	}
	if !upperPattern.MatchString(password) {
		return apperror.Validation("Password must contain at least one uppercase letter")
	}
	if !lowerPattern.MatchString(password) {
		return apperror.Validation("Password must contain at least one lowercase letter")
	}
	if !digitPattern.MatchString(password) {
		return apperror.Validation("Password must contain at least one digit")
	}
	return nil
}

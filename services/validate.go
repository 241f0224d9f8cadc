package services

import (
	"regexp"

	"github.com/Azimiwizard/App-1/pkg/apperr"
)

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]{2,19}$`)
	digitRe    = regexp.MustCompile(`\d`)
	upperRe    = regexp.MustCompile(`[A-Z]`)
	lowerRe    = regexp.MustCompile(`[a-z]`)
	specialRe  = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
	htmlTagRe  = regexp.MustCompile(`<[^>]*?>`)
)

func validateUsername(username string) error {
	if !usernameRe.MatchString(username) {
		return apperr.New(apperr.Validation,
			"username must be 3-20 characters, start with a letter, and contain only letters, numbers, and underscores")
	}
	return nil
}

func validatePassword(password string) error {
	switch {
	case len(password) < 8:
		return apperr.New(apperr.Validation, "password must be at least 8 characters long")
	case !digitRe.MatchString(password):
		return apperr.New(apperr.Validation, "password must contain at least one digit")
	case !upperRe.MatchString(password):
		return apperr.New(apperr.Validation, "password must contain at least one uppercase letter")
	case !lowerRe.MatchString(password):
		return apperr.New(apperr.Validation, "password must contain at least one lowercase letter")
	case !specialRe.MatchString(password):
		return apperr.New(apperr.Validation, "password must contain at least one special character")
	}
	return nil
}

// sanitizeHTML strips tags from free-text input before it is stored.
func sanitizeHTML(text string) string {
	return htmlTagRe.ReplaceAllString(text, "")
}

package services

import (
	"regexp"

	"github.com/dmitrijs2005/gophtodo/internal/common"
)

// User-facing texts for the validation and lookup failures.
const (
	msgAllFieldsRequired = "All fields are required."
	msgInvalidEmail      = "Please enter a valid email address."
	msgWeakPassword      = "Password must be at least 8 characters long and contain both letters and numbers."
	msgEmailTaken        = "Email already registered. Please use a different email."
	msgUsernameTaken     = "Username already taken. Please choose a different username."
	msgInvalidLogin      = "Invalid email or password."
	msgEmptyTask         = "Task description cannot be empty."
	msgLoadTasksFailed   = "Failed to load tasks."
	msgSaveTasksFailed   = "Failed to save tasks."
)

var (
	// Each part excludes "@" and any Unicode whitespace, including NBSP,
	// vertical tab, line/paragraph separators and BOM, which \s alone misses.
	emailPattern = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

	// Letters and digits only, at least eight of them. Symbols are rejected
	// even in otherwise strong passwords.
	passwordCharset = regexp.MustCompile(`^[A-Za-z\d]{8,}$`)
	hasLetter       = regexp.MustCompile(`[A-Za-z]`)
	hasDigit        = regexp.MustCompile(`\d`)
)

// validateSignUp expects already trimmed input.
func validateSignUp(username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return common.Validation(msgAllFieldsRequired)
	}
	if !emailPattern.MatchString(email) {
		return common.Validation(msgInvalidEmail)
	}
	if !isAcceptablePassword(password) {
		return common.Validation(msgWeakPassword)
	}
	return nil
}

func validateLogIn(email, password string) error {
	if email == "" || password == "" {
		return common.Validation(msgAllFieldsRequired)
	}
	return nil
}

func validateTitle(title string) error {
	if title == "" {
		return common.Validation(msgEmptyTask)
	}
	return nil
}

func isAcceptablePassword(p string) bool {
	return passwordCharset.MatchString(p) && hasLetter.MatchString(p) && hasDigit.MatchString(p)
}

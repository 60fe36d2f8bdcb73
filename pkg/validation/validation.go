package validation

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrInvalidPersonName is returned when an invalid person name is provided.
	ErrInvalidPersonName = errors.New("person name must consist of letters only and have at least 3 characters")
	// ErrInvalidComment is returned when an empty post comment is provided.
	ErrInvalidComment = errors.New("comment must not be empty")
	// ErrInvalidUsername is returned when an invalid username is provided.
	ErrInvalidUsername = errors.New("user name must not be empty and have at least 6 characters, including digits")
	// ErrInvalidPassword is returned when an invalid password is provided.
	ErrInvalidPassword = errors.New("password must not be empty and must have at least 6 characters, including 1 uppercase letter, 1 lowercase letter, 1 digit and 1 special character")
)

var personNameRegexp = regexp.MustCompile(`^[a-zA-Z]{3,}$`)

// ValidatePersonName validates the provided person name.
// It checks if the name consists of letters only and is at least 3 characters long.
func ValidatePersonName(name string) error {
	if !personNameRegexp.MatchString(name) {
		return ErrInvalidPersonName
	}

	return nil
}

// ValidateComment validates the provided post comment.
func ValidateComment(comment string) error {
	if strings.TrimSpace(comment) == "" {
		return ErrInvalidComment
	}

	return nil
}

// ValidateUsername validates the provided username.
// It checks if the username is at least 6 characters long, contains at least one digit,
// and does not contain any special characters.
func ValidateUsername(username string) error {
	valid := len(username) >= 6 &&
		strings.ContainsAny(username, "0123456789") &&
		!strings.ContainsAny(username, "!@#$%^&*()_+[]{};':,.<>?/")

	if !valid {
		return ErrInvalidUsername
	}

	return nil
}

// ValidatePassword validates the provided password.
// It checks if the password is at least 6 characters long, contains at least one uppercase letter,
// one lowercase letter, one digit, and one special character.
func ValidatePassword(password string) error {
	valid := len(password) >= 6 &&
		strings.ContainsAny(password, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") &&
		strings.ContainsAny(password, "abcdefghijklmnopqrstuvwxyz") &&
		strings.ContainsAny(password, "0123456789") &&
		strings.ContainsAny(password, "!@#$%^&*()_+[]{};':,.<>?/")

	if !valid {
		return ErrInvalidPassword
	}

	return nil
}

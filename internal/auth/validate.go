package auth

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ryanwoodall/sitehub/internal/apperror"
)

// reservedUsername is set aside for the built-in administrator account,
// which is seeded by migration rather than through self-registration.
const reservedUsername = "admin"

// usernameRe matches the permitted username alphabet: ASCII letters,
// digits, underscore, and CJK Unified Ideographs. Length is checked
// separately in runes so multi-byte characters count as one.
var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_\x{4e00}-\x{9fa5}]+$`)

// emailRe matches local@domain.tld-style addresses: no whitespace and at
// least one dot in the domain.
var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateUsername checks username syntax and the reserved-name rule.
// Returns nil when valid, otherwise a validation error whose message is
// shown verbatim to the user. Pure function, no store access.
func ValidateUsername(username string) error {
	if username == "" {
		return apperror.NewValidation("username is required")
	}
	if n := utf8.RuneCountInString(username); n < 3 || n > 50 {
		return apperror.NewValidation("username must be between 3 and 50 characters")
	}
	if !usernameRe.MatchString(username) {
		return apperror.NewValidation("username may only contain letters, digits, underscores, and Chinese characters")
	}
	if strings.EqualFold(username, reservedUsername) {
		return apperror.NewValidation("admin is a reserved username, please choose another")
	}
	return nil
}

// ValidatePassword checks the minimum password length, counted in runes so
// multi-byte characters count as one. The hasher accepts any string, so
// this is the only gate keeping empty passwords out.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < 6 {
		return apperror.NewValidation("password must be at least 6 characters")
	}
	return nil
}

// ValidateEmail checks email syntax. The field is optional: empty input is
// valid, non-empty input must look like local@domain.tld.
func ValidateEmail(email string) error {
	if email == "" {
		return nil
	}
	if !emailRe.MatchString(email) {
		return apperror.NewValidation("invalid email address")
	}
	return nil
}

// Package validation contains the pure normalization and validation rules
// applied to input before it reaches storage. Functions take raw input and
// return the normalized value or a *common.ValidationError naming the field.
package validation

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dkravets/folio/internal/common"
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

// Username trims, lowercases and validates a username: 3–50 characters,
// alphanumeric plus '_' and '-'.
func Username(v string) (string, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	n := utf8.RuneCountInString(v)
	if n < 3 || n > 50 {
		return "", common.NewValidationError("username", "must be 3-50 characters")
	}
	if !usernamePattern.MatchString(v) {
		return "", common.NewValidationError("username", "may only contain letters, digits, '_' and '-'")
	}
	return v, nil
}

// Email trims and bounds an email address. Uniqueness is not a schema
// property; duplicates are checked at registration time.
func Email(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", common.NewValidationError("email", "must not be empty")
	}
	if utf8.RuneCountInString(v) > 100 {
		return "", common.NewValidationError("email", "must be at most 100 characters")
	}
	return v, nil
}

// PasswordCreate validates a new password: 6–100 characters, not purely
// numeric and not purely alphabetic.
func PasswordCreate(v string) (string, error) {
	n := utf8.RuneCountInString(v)
	if n < 6 || n > 100 {
		return "", common.NewValidationError("password", "must be 6-100 characters")
	}
	if allRunes(v, unicode.IsDigit) {
		return "", common.NewValidationError("password", "must not be purely numeric")
	}
	if allRunes(v, unicode.IsLetter) {
		return "", common.NewValidationError("password", "must not be purely alphabetic")
	}
	return v, nil
}

// PasswordChange validates a password change: the new password passes the
// creation rules, differs from the old one and matches its confirmation.
func PasswordChange(oldPassword, newPassword, confirmPassword string) (string, error) {
	validated, err := PasswordCreate(newPassword)
	if err != nil {
		return "", err
	}
	if newPassword == oldPassword {
		return "", common.NewValidationError("new_password", "must differ from the current password")
	}
	if confirmPassword != newPassword {
		return "", common.NewValidationError("confirm_password", "does not match the new password")
	}
	return validated, nil
}

func allRunes(s string, fn func(rune) bool) bool {
	for _, r := range s {
		if !fn(r) {
			return false
		}
	}
	return true
}

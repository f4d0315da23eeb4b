package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dkravets/folio/internal/common"
)

// folderNameForbidden are characters rejected in folder names.
const folderNameForbidden = `/\:*?"<>|`

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// FolderName trims and validates a folder name: non-empty after trim, at most
// 100 characters, no filesystem-hostile characters.
func FolderName(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", common.NewValidationError("name", "must not be empty")
	}
	if utf8.RuneCountInString(v) > 100 {
		return "", common.NewValidationError("name", "must be at most 100 characters")
	}
	if i := strings.IndexAny(v, folderNameForbidden); i >= 0 {
		return "", common.NewValidationError("name", fmt.Sprintf("must not contain %q", v[i:i+1]))
	}
	return v, nil
}

// FolderColor validates a hex color of the exact form #RRGGBB.
func FolderColor(v string) (string, error) {
	if !colorPattern.MatchString(v) {
		return "", common.NewValidationError("color", "must be a hex color like #6B73FF")
	}
	return v, nil
}

// FolderDescription trims a description, normalizes empty to absent and
// bounds it at 500 characters.
func FolderDescription(v string) (*string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(v) > 500 {
		return nil, common.NewValidationError("description", "must be at most 500 characters")
	}
	return &v, nil
}

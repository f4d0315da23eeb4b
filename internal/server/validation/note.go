package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/dkravets/folio/internal/common"
)

// NoteTitle trims and validates a note title: non-empty after trim, at most
// 200 characters.
func NoteTitle(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", common.NewValidationError("title", "must not be empty")
	}
	if utf8.RuneCountInString(v) > 200 {
		return "", common.NewValidationError("title", "must be at most 200 characters")
	}
	return v, nil
}

// NoteContent trims free-text content and normalizes empty to absent.
func NoteContent(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

// NoteFolderID checks that a supplied folder reference is a positive
// identifier. Existence and ownership are the store's concern, not ours.
func NoteFolderID(id int64) error {
	if id <= 0 {
		return common.NewValidationError("folder_id", "must be greater than 0")
	}
	return nil
}

package errors

import (
	"strings"
	"unicode"
)

// ValidateCellID validates a user-supplied cell ID for safety and
// correctness before it is used in lookups, URLs, or cache keys.
//
// The validation rules are intentionally conservative:
//   - No empty IDs
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 256 characters
func ValidateCellID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidCell, "cell ID cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidCell, "cell ID too long (max 256 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidCell, "cell ID contains invalid control characters")
		}
	}

	for _, pattern := range []string{"..", "/", "\\", "\x00"} {
		if strings.Contains(id, pattern) {
			return New(ErrCodeInvalidCell, "cell ID contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateGraphPath validates a graph file path. It rejects empty paths
// and embedded null bytes; everything else is left to the filesystem.
func ValidateGraphPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "graph path cannot be empty")
	}
	if strings.ContainsRune(path, 0) {
		return New(ErrCodeInvalidInput, "graph path contains null bytes")
	}
	return nil
}

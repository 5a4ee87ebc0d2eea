package errors

import (
	"strings"
	"unicode"
)

// ValidateInstanceName validates an instance name used in store keys and
// archive members. It rejects names that could be used for path traversal.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path traversal sequences (.., //)
//   - No null bytes or backslashes
//   - Maximum length of 256 characters
func ValidateInstanceName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "instance name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "instance name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "instance name contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidInput, "instance name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

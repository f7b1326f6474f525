// Package pathsafe guards filesystem writes driven by user-supplied names:
// path traversal checks and filename validation.
package pathsafe

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrPathTraversal is returned when a user-supplied path escapes its base.
var ErrPathTraversal = errors.New("pathsafe: path traversal detected")

// SafePath validates that joining base and userInput does not escape base.
// Returns the cleaned joined path or ErrPathTraversal.
func SafePath(base, userInput string) (string, error) {
	if strings.Contains(userInput, "..") {
		return "", ErrPathTraversal
	}
	cleaned := filepath.Join(base, filepath.Clean("/"+userInput))
	cleanBase := filepath.Clean(base)
	if cleanBase == "." {
		// Joining onto the current directory yields a bare relative path;
		// with ".." rejected above it cannot escape.
		return cleaned, nil
	}
	if !strings.HasPrefix(cleaned, cleanBase+string(filepath.Separator)) &&
		cleaned != cleanBase {
		return "", ErrPathTraversal
	}
	return cleaned, nil
}

// ValidateFilename rejects names with characters unsuitable for file names
// or URL path segments. Allows alphanumeric, underscore, hyphen, and dot.
func ValidateFilename(s string) error {
	if s == "" {
		return fmt.Errorf("pathsafe: filename must not be empty")
	}
	if len(s) > 256 {
		return fmt.Errorf("pathsafe: filename too long (max 256)")
	}
	for _, r := range s {
		if !isNameChar(r) {
			return fmt.Errorf("pathsafe: invalid character %q in filename", r)
		}
	}
	return nil
}

func isNameChar(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '_', r == '-', r == '.':
		return true
	}
	return false
}

package errors

import (
	"math"
	"path/filepath"
	"strings"
	"unicode"
)

// ValidatePositive checks that a measurement is a finite number greater than zero.
// The field name is included in the error message for user display.
func ValidatePositive(code Code, field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(code, "%s must be a finite number", field)
	}
	if v <= 0 {
		return New(code, "%s must be greater than zero (got %g)", field, v)
	}
	return nil
}

// ValidateNonNegative checks that a measurement is finite and not negative.
func ValidateNonNegative(code Code, field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(code, "%s must be a finite number", field)
	}
	if v < 0 {
		return New(code, "%s cannot be negative (got %g)", field, v)
	}
	return nil
}

// ValidateIdentifier validates a node or edge identifier supplied by the
// drawing surface.
//
// The validation rules are intentionally conservative:
//   - No empty identifiers
//   - No control characters
//   - Maximum length of 128 characters
func ValidateIdentifier(kind, id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "%s id cannot be empty", kind)
	}
	if len(id) > 128 {
		return New(ErrCodeInvalidInput, "%s id too long (max 128 characters)", kind)
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "%s id contains invalid control characters", kind)
		}
	}
	return nil
}

// ValidateProjectFilename validates a project file name.
// Only TOML and JSON project files are understood.
func ValidateProjectFilename(path string) error {
	if path == "" {
		return New(ErrCodeInvalidFormat, "project path cannot be empty")
	}
	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidFormat, "project path contains invalid characters")
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".json":
		return nil
	}
	return New(ErrCodeInvalidFormat, "unsupported project file %q (must be .toml or .json)", filepath.Base(path))
}

package common

import (
	"fmt"
	"slices"

	"careerdecide/internal/types"
)

// ValidateOutputFormat validates format against configured supported formats
func ValidateOutputFormat(format string, supportedFormats []string) error {
	if len(supportedFormats) == 0 {
		return nil // No restrictions configured
	}

	if slices.Contains(supportedFormats, format) {
		return nil
	}

	return fmt.Errorf("unsupported output format '%s'. Supported formats: %v",
		format, supportedFormats)
}

// ValidateMode validates a user mode string
func ValidateMode(mode string) (types.Mode, error) {
	m := types.Mode(mode)
	if !m.Valid() {
		return "", fmt.Errorf("invalid mode '%s' (must be 'student' or 'hr')", mode)
	}
	return m, nil
}

// GetSupportedFormats returns the list of supported formats
func GetSupportedFormats(supportedFormats []string) []string {
	return supportedFormats
}

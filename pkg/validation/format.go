// Package validation provides common validation utilities.
package validation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/iwvelando/mli-select/pkg/constants"
)

// SupportedOutputFormats lists every format the renderers understand.
var SupportedOutputFormats = []string{
	constants.OutputFormatPretty,
	constants.OutputFormatCSV,
	constants.OutputFormatJSON,
	constants.OutputFormatYAML,
}

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if !slices.Contains(SupportedOutputFormats, format) {
		return fmt.Errorf("expected output format of %s, got %s",
			strings.Join(SupportedOutputFormats, ", "), format)
	}
	return nil
}

package validation

import "testing"

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		expectErr bool
	}{
		{name: "Valid pretty format", format: "pretty"},
		{name: "Valid csv format", format: "csv"},
		{name: "Valid json format", format: "json"},
		{name: "Valid yaml format", format: "yaml"},
		{name: "Empty format", format: "", expectErr: true},
		{name: "Case sensitive - uppercase", format: "PRETTY", expectErr: true},
		{name: "Case sensitive - JSON uppercase", format: "JSON", expectErr: true},
		{name: "Leading/trailing spaces", format: " pretty ", expectErr: true},
		{name: "Short yaml extension", format: "yml", expectErr: true},
		{name: "XML format not supported", format: "xml", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if tt.expectErr && err == nil {
				t.Errorf("ValidateOutputFormat(%q) expected error but got none", tt.format)
			}
			if !tt.expectErr && err != nil {
				t.Errorf("ValidateOutputFormat(%q) unexpected error: %v", tt.format, err)
			}
		})
	}
}

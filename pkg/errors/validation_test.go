package errors

import (
	"strings"
	"testing"
)

func TestValidateColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"named", "lightgray", false},
		{"hex", "#eaeaea", false},
		{"short hex", "#fff", false},
		{"rgb function", "rgb(10, 20, 30)", false},
		{"hsl function", "hsl(120 50% 50%)", false},

		{"empty", "", true},
		{"blank", "   ", true},
		{"too long", strings.Repeat("a", 200), true},
		{"quote", `red" onload="x`, true},
		{"angle bracket", "red><script>", true},
		{"ampersand", "red&amp", true},
		{"newline", "red\nblue", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidColor) {
				t.Errorf("ValidateColor(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidColor)
			}
		})
	}
}

func TestValidateIDPrefix(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"default", "ptb", false},
		{"underscore start", "_clock", false},
		{"with digits and dash", "clock-2", false},

		{"empty", "", true},
		{"digit start", "2clock", true},
		{"space", "my clock", true},
		{"quote", `a"b`, true},
		{"colon", "svg:clock", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIDPrefix(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateIDPrefix(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateEndpoint(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"host and path", "uhr.ptb.de/time", false},
		{"wss", "wss://uhr.ptb.de/time", false},
		{"https", "https://example.org/time", false},
		{"localhost port", "localhost:8080/time", false},

		{"empty", "", true},
		{"space", "uhr.ptb.de /time", true},
		{"ftp scheme", "ftp://example.org", true},
		{"javascript scheme", "javascript://alert(1)", true},
		{"control char", "uhr\x00.ptb.de", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEndpoint(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEndpoint(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

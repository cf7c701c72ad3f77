package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// maxValueLength bounds every free-form option value.
const maxValueLength = 128

// ValidateColor checks that a color value is safe to place in an SVG
// attribute. It does not check that the value is a known CSS color; any
// name, hex code or functional notation without markup characters passes.
func ValidateColor(color string) error {
	if strings.TrimSpace(color) == "" {
		return New(ErrCodeInvalidColor, "color cannot be empty")
	}
	if len(color) > maxValueLength {
		return New(ErrCodeInvalidColor, "color too long (max %d characters)", maxValueLength)
	}
	for _, r := range color {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidColor, "color contains control characters")
		}
	}
	if strings.ContainsAny(color, `<>"'&;`) {
		return New(ErrCodeInvalidColor, "color contains invalid characters: %q", color)
	}
	return nil
}

// idPrefixRegex matches a prefix that keeps generated ids valid XML names.
var idPrefixRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.-]*$`)

// ValidateIDPrefix checks that prefix can start an element id.
func ValidateIDPrefix(prefix string) error {
	if prefix == "" {
		return New(ErrCodeInvalidID, "id prefix cannot be empty")
	}
	if len(prefix) > maxValueLength {
		return New(ErrCodeInvalidID, "id prefix too long (max %d characters)", maxValueLength)
	}
	if !idPrefixRegex.MatchString(prefix) {
		return New(ErrCodeInvalidID, "invalid id prefix: %q", prefix)
	}
	return nil
}

// ValidateEndpoint checks a time server endpoint such as "uhr.ptb.de/time".
// The scheme is optional because the clock script chooses ws:// or wss://.
func ValidateEndpoint(endpoint string) error {
	if endpoint == "" {
		return New(ErrCodeInvalidEndpoint, "server endpoint cannot be empty")
	}
	if len(endpoint) > 2*maxValueLength {
		return New(ErrCodeInvalidEndpoint, "server endpoint too long (max %d characters)", 2*maxValueLength)
	}
	for _, r := range endpoint {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidEndpoint, "server endpoint contains whitespace or control characters")
		}
	}
	if strings.Contains(endpoint, "://") &&
		!strings.HasPrefix(endpoint, "ws://") && !strings.HasPrefix(endpoint, "wss://") &&
		!strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		return New(ErrCodeInvalidEndpoint, "server endpoint must use ws, wss, http or https scheme")
	}
	return nil
}

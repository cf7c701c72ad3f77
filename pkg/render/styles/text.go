package styles

import (
	"bytes"
	"encoding/xml"
	"strconv"
)

// EscapeXML escapes s for use in XML text and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// Attr formats name="value" with value escaped.
func Attr(name, value string) string {
	return name + `="` + EscapeXML(value) + `"`
}

// Num formats v in the shortest form that round-trips, e.g. 5 or 3.5.
func Num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

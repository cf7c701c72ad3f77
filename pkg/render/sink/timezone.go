package sink

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/matzehuels/clockface/pkg/errors"
)

// DefaultTimezone is the zone shown when the page URL names none.
const DefaultTimezone = "CET"

// Timezone is the page's default zone with an optional UTC offset in
// seconds, as understood by the clock script.
type Timezone struct {
	Name      string
	Offset    int
	HasOffset bool
}

// String formats the zone as accepted by ParseTimezone.
func (tz Timezone) String() string {
	if !tz.HasOffset {
		return tz.Name
	}
	return tz.Name + "," + strconv.Itoa(tz.Offset)
}

var timezoneNameRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_+/-]*$`)

// ParseTimezone parses "zone" or "zone,offset", e.g. "UTC,3600". An empty
// string selects DefaultTimezone.
func ParseTimezone(s string) (Timezone, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Timezone{Name: DefaultTimezone}, nil
	}
	name, offset, hasOffset := strings.Cut(s, ",")
	name = strings.TrimSpace(name)
	if !timezoneNameRegex.MatchString(name) {
		return Timezone{}, errors.New(errors.ErrCodeInvalidInput, "invalid timezone name: %q", name)
	}
	tz := Timezone{Name: name}
	if !hasOffset {
		return tz, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(offset))
	if err != nil {
		return Timezone{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid timezone offset: %q", offset)
	}
	tz.Offset, tz.HasOffset = n, true
	return tz, nil
}

package face

import (
	"fmt"
	"math"
	"strings"

	"github.com/matzehuels/clockface/pkg/errors"
)

// ScaleStyle selects how ticks are drawn.
type ScaleStyle string

const (
	ScaleLine ScaleStyle = "line" // radial strokes
	ScaleDot  ScaleStyle = "dot"  // filled circles
)

// DigitStyle selects the numerals written around the dial.
type DigitStyle string

const (
	DigitsNone   DigitStyle = "none"
	DigitsArabic DigitStyle = "arabic"
	DigitsRoman  DigitStyle = "roman"
)

// Hand names a clock hand.
type Hand string

const (
	HandHour   Hand = "hour"
	HandMinute Hand = "minute"
	HandSecond Hand = "second"
)

// Background colors of the dial, switched by the clock script according
// to the connection state.
type Background struct {
	Invalid      string
	Connected    string
	Disconnected string
}

// Shadows records which hands carry a drop shadow.
type Shadows struct {
	Hour, Minute, Second bool
}

// Any reports whether at least one hand has a shadow.
func (s Shadows) Any() bool { return s.Hour || s.Minute || s.Second }

// Has reports whether hand h has a shadow.
func (s Shadows) Has(h Hand) bool {
	switch h {
	case HandHour:
		return s.Hour
	case HandMinute:
		return s.Minute
	case HandSecond:
		return s.Second
	}
	return false
}

// Face is a fully resolved clock face. It holds no references and is
// safe to copy and share.
type Face struct {
	HourScale   bool
	MinuteScale bool
	ScaleStyle  ScaleStyle
	ScaleRadius float64 // percent
	ScaleColor  string

	HandColor       string
	SecondHandColor string
	Background      Background

	DigitStyle    DigitStyle
	DigitFontSize float64 // px

	Hour24   bool
	IDPrefix string
	Shadows  Shadows
}

// Notice reports an option value that was replaced during resolution.
type Notice struct {
	Field    string // option key, e.g. "scale_style"
	Value    string // value as given
	Fallback string // value used instead ("" when the value was dropped)
}

func (n Notice) String() string {
	if n.Fallback == "" {
		return fmt.Sprintf("%s: ignoring %q", n.Field, n.Value)
	}
	return fmt.Sprintf("%s: %q is not usable, using %q", n.Field, n.Value, n.Fallback)
}

// DefaultScaleRadius returns the scale radius in percent used when none
// is configured.
func DefaultScaleRadius(s ScaleStyle) float64 {
	if s == ScaleDot {
		return 46
	}
	return 50
}

// Resolve applies defaults to o and validates every field. Unusable values
// fall back to their defaults and are reported as notices, in field order.
func Resolve(o Options) (Face, []Notice) {
	r := resolver{}
	f := Face{
		ScaleColor:      r.color("scale_color", o.ScaleColor, DefaultScaleColor),
		HandColor:       r.color("hand_color", o.HandColor, DefaultHandColor),
		SecondHandColor: r.color("second_hand_color", o.SecondHandColor, DefaultSecondHandColor),
		Background:      r.background(o.Background),
		ScaleStyle:      r.scaleStyle(o.ScaleStyle),
		DigitStyle:      r.digitStyle(o.Digits),
		Hour24:          o.Hour24,
		IDPrefix:        r.idPrefix(o.IDPrefix),
		Shadows:         r.shadows(o.Shadow),
	}
	f.HourScale, f.MinuteScale = r.scales(o.Scale)
	f.ScaleRadius = r.scaleRadius(o.ScaleRadius, f.ScaleStyle)
	f.DigitFontSize = r.fontSize(o.DigitFontSize, f.defaultFontSize())
	return f, r.notices
}

// resolver collects notices while fields are resolved.
type resolver struct {
	notices []Notice
}

func (r *resolver) notice(field, value, fallback string) {
	r.notices = append(r.notices, Notice{Field: field, Value: value, Fallback: fallback})
}

func (r *resolver) color(field, v, def string) string {
	if v == "" {
		return def
	}
	if err := errors.ValidateColor(v); err != nil {
		r.notice(field, v, def)
		return def
	}
	return strings.TrimSpace(v)
}

func (r *resolver) background(v []string) Background {
	def := Background{DefaultBackground[0], DefaultBackground[1], DefaultBackground[2]}
	if len(v) == 0 {
		return def
	}
	fallback := strings.Join(DefaultBackground[:], ",")
	if len(v) != 3 {
		r.notice("background", strings.Join(v, ","), fallback)
		return def
	}
	for _, c := range v {
		if errors.ValidateColor(c) != nil {
			r.notice("background", strings.Join(v, ","), fallback)
			return def
		}
	}
	return Background{
		Invalid:      strings.TrimSpace(v[0]),
		Connected:    strings.TrimSpace(v[1]),
		Disconnected: strings.TrimSpace(v[2]),
	}
}

func (r *resolver) scales(v []string) (hour, minute bool) {
	if v == nil {
		return true, true
	}
	for _, s := range v {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case ScaleHour:
			hour = true
		case ScaleMinute:
			minute = true
		case "", "none":
		default:
			r.notice("scale", s, "")
		}
	}
	return hour, minute
}

func (r *resolver) scaleStyle(v string) ScaleStyle {
	switch ScaleStyle(strings.ToLower(strings.TrimSpace(v))) {
	case "", ScaleLine:
		return ScaleLine
	case ScaleDot:
		return ScaleDot
	}
	r.notice("scale_style", v, string(ScaleLine))
	return ScaleLine
}

func (r *resolver) scaleRadius(v float64, s ScaleStyle) float64 {
	def := DefaultScaleRadius(s)
	if v == 0 {
		return def
	}
	if !(v > 0 && v <= 50) {
		r.notice("scale_radius", fmt.Sprint(v), fmt.Sprint(def))
		return def
	}
	return v
}

func (r *resolver) digitStyle(v string) DigitStyle {
	switch DigitStyle(strings.ToLower(strings.TrimSpace(v))) {
	case "", DigitsNone:
		return DigitsNone
	case DigitsArabic:
		return DigitsArabic
	case DigitsRoman:
		return DigitsRoman
	}
	r.notice("digits", v, string(DigitsNone))
	return DigitsNone
}

func (r *resolver) fontSize(v, def float64) float64 {
	if v == 0 {
		return def
	}
	if !(v > 0) || math.IsInf(v, 1) {
		r.notice("digit_font_size", fmt.Sprint(v), fmt.Sprint(def))
		return def
	}
	return v
}

func (r *resolver) idPrefix(v string) string {
	if v == "" {
		return DefaultIDPrefix
	}
	if err := errors.ValidateIDPrefix(v); err != nil {
		r.notice("id_prefix", v, DefaultIDPrefix)
		return DefaultIDPrefix
	}
	return v
}

func (r *resolver) shadows(v []string) Shadows {
	var s Shadows
	for _, h := range v {
		switch Hand(strings.ToLower(strings.TrimSpace(h))) {
		case HandHour:
			s.Hour = true
		case HandMinute:
			s.Minute = true
		case HandSecond:
			s.Second = true
		case "", "none":
		default:
			r.notice("shadow", h, "")
		}
	}
	return s
}

// ID returns the element id for name, e.g. ID("HourHand") = "ptbHourHand".
func (f Face) ID(name string) string { return f.IDPrefix + name }

// HourHandID returns the hour hand group id. The clock script tells a
// 24-hour dial apart by this id.
func (f Face) HourHandID() string {
	if f.Hour24 {
		return f.ID("HourHand24")
	}
	return f.ID("HourHand")
}

// HasScale reports whether any tick is drawn.
func (f Face) HasScale() bool { return f.HourScale || f.MinuteScale }

// HasDigits reports whether digit labels are drawn.
func (f Face) HasDigits() bool {
	return f.DigitStyle == DigitsArabic || f.DigitStyle == DigitsRoman
}

// DigitCount returns the number of digit positions: 12, or 24 on a
// 24-hour dial.
func (f Face) DigitCount() int {
	if f.Hour24 {
		return 24
	}
	return 12
}

func (f Face) defaultFontSize() float64 {
	switch {
	case f.DigitStyle == DigitsRoman && f.Hour24:
		return 9
	case f.DigitStyle == DigitsRoman:
		return 16
	case f.Hour24:
		return 12
	}
	return 20
}

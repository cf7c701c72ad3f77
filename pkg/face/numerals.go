package face

import "strconv"

// romanNumerals is indexed by hour; 0 is an alias for XII so that
// index%12 lookups land on the right numeral.
var romanNumerals = [13]string{
	"XII", "I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X", "XI", "XII",
}

// Roman returns the hour numeral for position n, counted modulo 12: a
// 24-hour dial reads I..XII twice and every multiple of 12 is XII.
// Negative positions are returned as Arabic numbers.
func Roman(n int) string {
	if n < 0 {
		return strconv.Itoa(n)
	}
	return romanNumerals[n%12]
}

// Label returns the text for digit position n in style s. The boolean is
// false when s draws no digits.
func (s DigitStyle) Label(n int) (string, bool) {
	switch s {
	case DigitsArabic:
		return strconv.Itoa(n), true
	case DigitsRoman:
		return Roman(n), true
	}
	return "", false
}

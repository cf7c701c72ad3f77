package face

import "testing"

func TestRoman(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "XII"},
		{1, "I"},
		{4, "IV"},
		{9, "IX"},
		{12, "XII"},
		{13, "I"},
		{14, "II"},
		{19, "VII"},
		{23, "XI"},
		{24, "XII"},
		{36, "XII"},
		{-1, "-1"},
	}
	for _, tt := range tests {
		if got := Roman(tt.n); got != tt.want {
			t.Errorf("Roman(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestDigitStyleLabel(t *testing.T) {
	tests := []struct {
		style  DigitStyle
		n      int
		want   string
		wantOK bool
	}{
		{DigitsArabic, 12, "12", true},
		{DigitsArabic, 24, "24", true},
		{DigitsRoman, 12, "XII", true},
		{DigitsRoman, 7, "VII", true},
		{DigitsRoman, 24, "XII", true},
		{DigitsRoman, 18, "VI", true},
		{DigitsNone, 12, "", false},
		{DigitStyle("hex"), 12, "", false},
	}
	for _, tt := range tests {
		got, ok := tt.style.Label(tt.n)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("%q.Label(%d) = %q, %v; want %q, %v", tt.style, tt.n, got, ok, tt.want, tt.wantOK)
		}
	}
}

package face

import "github.com/matzehuels/clockface/pkg/face/geometry"

// TickPositions is the number of angular positions on the scale.
const TickPositions = 60

// Tick dimensions, in percent of the viewBox for lengths and in user
// units for widths and dot radii.
const (
	HourTickLength   = 11.0
	HourTickWidth    = 5.0
	MinuteTickLength = 5.0
	MinuteTickWidth  = 3.0
	HourDotRadius    = 3.5
	MinuteDotRadius  = 1.5
	RingDotRadius    = 1.5

	// ringInset is the distance between the scale and the 24-hour ring.
	ringInset = 18.0
)

// Digit radii in percent for the default scale radius.
const (
	arabicDigitRadius = 39.0
	romanDigitRadius  = 35.0
)

// Tick is one rendered scale mark.
type Tick struct {
	Index int  // angular position, 0..59, 0 at 12 o'clock
	Hour  bool // position is a multiple of five
	Major bool // drawn with hour dimensions

	Inner, Outer geometry.Point // line end points
	Center       geometry.Point // dot centre, on the scale radius

	Width     float64 // line stroke width
	DotRadius float64
}

// Digit is one digit label.
type Digit struct {
	Index int // 1..12 or 1..24; the last index is at 12 o'clock
	At    geometry.Point
	Text  string
}

// Ticks returns the scale marks in index order. With both scales enabled
// hour positions are drawn major and the rest minor; with only the hour
// scale the twelve hour positions are drawn major; with only the minute
// scale all sixty positions are drawn minor. With no scale it returns nil.
func (f Face) Ticks() []Tick {
	if !f.HasScale() {
		return nil
	}
	ticks := make([]Tick, 0, TickPositions)
	for i := 0; i < TickPositions; i++ {
		hour := i%5 == 0
		if f.HourScale && !f.MinuteScale && !hour {
			continue
		}
		ticks = append(ticks, f.tick(i, hour, hour && f.HourScale))
	}
	return ticks
}

func (f Face) tick(i int, hour, major bool) Tick {
	length, width, dot := MinuteTickLength, MinuteTickWidth, MinuteDotRadius
	if major {
		length, width, dot = HourTickLength, HourTickWidth, HourDotRadius
	}
	inner, outer := geometry.Radial(i, TickPositions, f.ScaleRadius-length, f.ScaleRadius)
	return Tick{
		Index:     i,
		Hour:      hour,
		Major:     major,
		Inner:     inner,
		Outer:     outer,
		Center:    outer,
		Width:     width,
		DotRadius: dot,
	}
}

// RingRadius returns the radius in percent of the 24-hour ring.
func (f Face) RingRadius() float64 { return f.ScaleRadius - ringInset }

// Ring returns the 24 secondary dot centres of a 24-hour dial with an hour
// scale, starting at 12 o'clock. Otherwise it returns nil.
func (f Face) Ring() []geometry.Point {
	if !f.Hour24 || !f.HourScale {
		return nil
	}
	const n = 24
	pts := make([]geometry.Point, n)
	for i := range pts {
		pts[i] = geometry.OnCircle(i, n, f.RingRadius())
	}
	return pts
}

// DigitRadius returns the radius in percent of the digit circle. It keeps
// the style's distance to the scale when the scale radius is moved.
func (f Face) DigitRadius() float64 {
	base := arabicDigitRadius
	if f.DigitStyle == DigitsRoman {
		base = romanDigitRadius
	}
	return base + f.ScaleRadius - DefaultScaleRadius(f.ScaleStyle)
}

// Labels returns the digit labels, index 1 first. It returns nil when the
// face draws no digits.
func (f Face) Labels() []Digit {
	if !f.HasDigits() {
		return nil
	}
	n := f.DigitCount()
	r := f.DigitRadius()
	digits := make([]Digit, 0, n)
	for i := 1; i <= n; i++ {
		text, _ := f.DigitStyle.Label(i)
		digits = append(digits, Digit{
			Index: i,
			At:    geometry.OnCircle(i, n, r),
			Text:  text,
		})
	}
	return digits
}

package geometry

import (
	"math"
	"strconv"
)

// Center is the dial centre in percent.
const Center = 50.0

// Point is a position on the dial in percent of the viewBox.
type Point struct {
	X, Y float64
}

// String formats the point as "x%,y%".
func (p Point) String() string { return Pct(p.X) + "," + Pct(p.Y) }

// Angle returns the clockwise angle in radians of index i out of n
// divisions, measured from 12 o'clock.
func Angle(i, n int) float64 {
	return float64(i) / float64(n) * 2 * math.Pi
}

// OnCircle returns the point at index i of n divisions on a circle of
// radius r (percent) around the dial centre.
func OnCircle(i, n int, r float64) Point {
	a := Angle(i, n)
	return Point{
		X: Center + r*math.Sin(a),
		Y: Center - r*math.Cos(a),
	}
}

// Radial returns the inner and outer end points of a radial segment at
// index i of n that spans radii [inner, outer].
func Radial(i, n int, inner, outer float64) (Point, Point) {
	return OnCircle(i, n, inner), OnCircle(i, n, outer)
}

// Pct formats v with six decimals and a percent sign.
func Pct(v float64) string {
	// -0.000000% is valid but noisy; collapse it.
	if math.Abs(v) < 5e-7 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', 6, 64) + "%"
}

package styles

import (
	"fmt"
	"io"

	"github.com/matzehuels/clockface/pkg/face"
	"github.com/matzehuels/clockface/pkg/face/geometry"
)

// Scale defines how tick marks are drawn.
type Scale interface {
	// GroupAttrs returns the attributes of the group holding all ticks.
	GroupAttrs(color string) []string
	// RenderTick writes the SVG for a single tick.
	RenderTick(w io.Writer, t face.Tick)
}

// ForStyle returns the Scale for s, Lines for anything but dots.
func ForStyle(s face.ScaleStyle) Scale {
	if s == face.ScaleDot {
		return Dots{}
	}
	return Lines{}
}

// Lines draws ticks as radial strokes from the inner to the outer radius.
type Lines struct{}

func (Lines) GroupAttrs(color string) []string {
	return []string{Attr("stroke", color)}
}

func (Lines) RenderTick(w io.Writer, t face.Tick) {
	fmt.Fprintf(w, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke-width="%s"/>`+"\n",
		geometry.Pct(t.Inner.X), geometry.Pct(t.Inner.Y),
		geometry.Pct(t.Outer.X), geometry.Pct(t.Outer.Y),
		Num(t.Width))
}

// Dots draws ticks as circles centred on the scale radius.
type Dots struct{}

func (Dots) GroupAttrs(color string) []string {
	return []string{Attr("fill", color), `stroke="none"`}
}

func (Dots) RenderTick(w io.Writer, t face.Tick) {
	Dot(w, t.Center, t.DotRadius)
}

// Dot writes a circle of radius r user units centred at p.
func Dot(w io.Writer, p geometry.Point, r float64) {
	fmt.Fprintf(w, `<circle cx="%s" cy="%s" r="%s"/>`+"\n",
		geometry.Pct(p.X), geometry.Pct(p.Y), Num(r))
}

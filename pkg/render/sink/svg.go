package sink

import (
	"bytes"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/matzehuels/clockface/pkg/face"
	"github.com/matzehuels/clockface/pkg/face/geometry"
	"github.com/matzehuels/clockface/pkg/render/styles"
)

const (
	svgNamespace = "http://www.w3.org/2000/svg"
	viewBoxSize  = 200
)

// Hand dimensions: end point in percent of the viewBox from the top, and
// stroke width in user units.
type handSpec struct {
	hand  face.Hand
	name  string // id suffix
	label string
	tipY  string
	width int
}

var hands = []handSpec{
	{face.HandHour, "HourHand", "hour hand", "20%", 7},
	{face.HandMinute, "MinuteHand", "minute hand", "9%", 5},
	{face.HandSecond, "SecondHand", "second hand", "5%", 2},
}

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	face   face.Face
	labels Labels
}

// WithLabels sets the dial text, German by default.
func WithLabels(l Labels) SVGOption { return func(r *svgRenderer) { r.labels = l } }

// RenderSVG renders f as a standalone SVG document. The output depends on
// f and the options only, so equal inputs give byte-identical documents.
func RenderSVG(f face.Face, opts ...SVGOption) []byte {
	r := svgRenderer{face: f, labels: labelsGerman}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	canvas := svg.New(&buf)

	fmt.Fprintf(&buf, `<svg xmlns="%s" viewBox="0 0 %d %d">`+"\n", svgNamespace, viewBoxSize, viewBoxSize)
	canvas.Group(`font-family="sans-serif"`)

	r.renderDefs(canvas)
	r.renderBackground(&buf)
	r.renderAxis(&buf)
	r.renderScale(canvas)
	r.renderRing(canvas)
	r.renderDigits(canvas)
	r.renderDigital(canvas)
	r.renderNotice(&buf)
	r.renderDeviation(canvas)
	for _, h := range hands {
		r.renderHand(canvas, h)
	}

	canvas.Gend()
	canvas.End()
	return buf.Bytes()
}

func (r *svgRenderer) id(name string) string { return styles.Attr("id", r.face.ID(name)) }

func (r *svgRenderer) renderDefs(canvas *svg.SVG) {
	if !r.face.Shadows.Any() {
		return
	}
	canvas.Def()
	canvas.Filter(r.face.ID("HandShadow"), `x="-50%"`, `y="-50%"`, `width="200%"`, `height="200%"`)
	canvas.FeGaussianBlur(svg.Filterspec{In: "SourceAlpha", Result: "blur"}, 1.5, 1.5)
	canvas.FeOffset(svg.Filterspec{In: "blur", Result: "offsetBlur"}, 2, 2)
	canvas.FeMerge([]string{"offsetBlur", "SourceGraphic"})
	canvas.Fend()
	canvas.DefEnd()
}

func (r *svgRenderer) renderBackground(w io.Writer) {
	bg := r.face.Background
	fmt.Fprintf(w, `<circle %s cx="50%%" cy="50%%" r="50%%" %s %s %s/>`+"\n",
		r.id("FaceBackground"),
		styles.Attr("fill", bg.Invalid),
		styles.Attr("data-fill-connected", bg.Connected),
		styles.Attr("data-fill-disconnected", bg.Disconnected))
}

func (r *svgRenderer) renderAxis(w io.Writer) {
	fmt.Fprintf(w, `<circle cx="50%%" cy="50%%" r="5" %s/>`+"\n", styles.Attr("fill", r.face.HandColor))
}

func (r *svgRenderer) renderScale(canvas *svg.SVG) {
	ticks := r.face.Ticks()
	if len(ticks) == 0 {
		return
	}
	scale := styles.ForStyle(r.face.ScaleStyle)
	canvas.Group(append([]string{r.id("Scale")}, scale.GroupAttrs(r.face.ScaleColor)...)...)
	for _, t := range ticks {
		scale.RenderTick(canvas.Writer, t)
	}
	canvas.Gend()
}

func (r *svgRenderer) renderRing(canvas *svg.SVG) {
	ring := r.face.Ring()
	if len(ring) == 0 {
		return
	}
	canvas.Group(r.id("Scale24"), styles.Attr("fill", r.face.ScaleColor), `stroke="none"`)
	for _, p := range ring {
		styles.Dot(canvas.Writer, p, face.RingDotRadius)
	}
	canvas.Gend()
}

func (r *svgRenderer) renderDigits(canvas *svg.SVG) {
	labels := r.face.Labels()
	if len(labels) == 0 {
		return
	}
	canvas.Group(r.id("Digits"),
		styles.Attr("fill", r.face.ScaleColor),
		`text-anchor="middle"`,
		`dominant-baseline="central"`,
		styles.Attr("font-size", styles.Num(r.face.DigitFontSize)+"px"))
	for _, d := range labels {
		fmt.Fprintf(canvas.Writer, `<text x="%s" y="%s">%s</text>`+"\n",
			geometry.Pct(d.At.X), geometry.Pct(d.At.Y), styles.EscapeXML(d.Text))
	}
	canvas.Gend()
}

func (r *svgRenderer) renderDigital(canvas *svg.SVG) {
	w := canvas.Writer
	io.WriteString(w, "<!-- digital -->\n")
	canvas.Group(r.id("SwitchClock"), `text-anchor="middle"`, `letter-spacing="-0.2"`, `font-size="8px"`,
		styles.Attr("fill", r.face.ScaleColor), `style="stroke:none;cursor:pointer;"`)
	fmt.Fprintf(w, `<text x="50%%" y="24.5%%" %s></text>`+"\n", r.id("Date"))
	fmt.Fprintf(w, `<text x="50%%" y="32%%" %s font-size="16px" font-weight="bold"></text>`+"\n", r.id("Time"))
	fmt.Fprintf(w, `<text x="50%%" y="37%%" %s></text>`+"\n", r.id("LocalTimezone"))
	fmt.Fprintf(w, `<text x="50%%" y="19%%" %s></text>`+"\n", r.id("Weekday"))
	canvas.Gend()
}

func (r *svgRenderer) renderNotice(w io.Writer) {
	fmt.Fprintf(w, `<text %s x="50%%" y="69.5%%" text-anchor="middle" font-weight="bold" font-size="9px" %s></text>`+"\n",
		r.id("Notice"), styles.Attr("fill", r.face.HandColor))
}

func (r *svgRenderer) renderDeviation(canvas *svg.SVG) {
	w := canvas.Writer
	io.WriteString(w, "<!-- deviation -->\n")
	canvas.Group(r.id("TabDeviation"), `class="ptbAct"`, `style="cursor:pointer;"`,
		styles.Attr("aria-labelledby", r.face.ID("DeviationTitle")), `role="button"`, `tabindex="2"`)
	fmt.Fprintf(w, "<title %s>%s</title>\n", r.id("DeviationTitle"), styles.EscapeXML(r.labels.DeviationTitle))
	fmt.Fprintf(w, `<text %s text-anchor="middle" x="50%%" y="150" %s style="display:none;stroke:none;font-weight:bold;font-size:14px;">Δt</text>`+"\n",
		r.id("LinkDeviation"), styles.Attr("fill", r.face.ScaleColor))
	canvas.Group(r.id("Deviation"), `text-anchor="middle"`, `letter-spacing="-0.2"`,
		styles.Attr("fill", r.face.ScaleColor), `style="display:none;stroke:none;"`)
	fmt.Fprintf(w, `<text x="50%%" y="73%%" font-size="9px">%s`+"\n", styles.EscapeXML(r.labels.DeviationText))
	fmt.Fprintf(w, `<tspan x="50%%" y="77.5%%" %s/> <tspan %s dx="3" font-size="8px"/>`+"\n", r.id("Offset"), r.id("Accuracy"))
	io.WriteString(w, "</text>\n")
	canvas.Gend()
	canvas.Gend()
}

func (r *svgRenderer) renderHand(canvas *svg.SVG, h handSpec) {
	id := r.face.ID(h.name)
	color := r.face.HandColor
	switch h.hand {
	case face.HandHour:
		id = r.face.HourHandID()
	case face.HandSecond:
		color = r.face.SecondHandColor
	}

	var filter string
	if r.face.Shadows.Has(h.hand) {
		filter = " " + styles.Attr("filter", "url(#"+r.face.ID("HandShadow")+")")
	}

	w := canvas.Writer
	fmt.Fprintf(w, "<!-- %s -->\n", h.label)
	canvas.Group(styles.Attr("id", id), `transform="rotate(0,100,100)"`)
	fmt.Fprintf(w, `<line x1="50%%" y1="50%%" x2="50%%" y2="%s" %s stroke-width="%d"%s/>`+"\n",
		h.tipY, styles.Attr("stroke", color), h.width, filter)
	canvas.Gend()
}

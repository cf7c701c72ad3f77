package face

import (
	"math"
	"testing"

	"github.com/matzehuels/clockface/pkg/face/geometry"
)

func TestTicksCount(t *testing.T) {
	tests := []struct {
		name      string
		scale     []string
		wantTicks int
		wantMajor int
	}{
		{"both scales", []string{"hour", "minute"}, 60, 12},
		{"hour scale", []string{"hour"}, 12, 12},
		{"minute scale", []string{"minute"}, 60, 0},
		{"no scale", []string{}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, _ := Resolve(Options{Scale: tt.scale})
			ticks := f.Ticks()
			if len(ticks) != tt.wantTicks {
				t.Fatalf("len(Ticks()) = %d, want %d", len(ticks), tt.wantTicks)
			}
			major := 0
			for _, tk := range ticks {
				if tk.Major {
					major++
				}
			}
			if major != tt.wantMajor {
				t.Errorf("major ticks = %d, want %d", major, tt.wantMajor)
			}
		})
	}
}

func TestTicksWidthsAlternate(t *testing.T) {
	f, _ := Resolve(Options{})
	for _, tk := range f.Ticks() {
		want := MinuteTickWidth
		if tk.Index%5 == 0 {
			want = HourTickWidth
		}
		if tk.Width != want {
			t.Errorf("tick %d width = %v, want %v", tk.Index, tk.Width, want)
		}
		if tk.Hour != (tk.Index%5 == 0) {
			t.Errorf("tick %d Hour = %v", tk.Index, tk.Hour)
		}
	}
}

func TestTicksUniformWithOneScale(t *testing.T) {
	f, _ := Resolve(Options{Scale: []string{"minute"}})
	for _, tk := range f.Ticks() {
		if tk.Width != MinuteTickWidth || tk.DotRadius != MinuteDotRadius {
			t.Errorf("tick %d = width %v dot %v, want minute dimensions", tk.Index, tk.Width, tk.DotRadius)
		}
	}

	f, _ = Resolve(Options{Scale: []string{"hour"}})
	for _, tk := range f.Ticks() {
		if !tk.Hour || tk.Width != HourTickWidth {
			t.Errorf("tick %d = hour %v width %v, want hour dimensions", tk.Index, tk.Hour, tk.Width)
		}
	}
}

func TestTickGeometry(t *testing.T) {
	f, _ := Resolve(Options{})
	ticks := f.Ticks()

	top := ticks[0]
	if top.Outer != (geometry.Point{X: 50, Y: 0}) {
		t.Errorf("tick 0 outer = %v, want 50%%,0%%", top.Outer)
	}
	if math.Abs(top.Inner.Y-HourTickLength) > 1e-9 {
		t.Errorf("tick 0 inner Y = %v, want %v", top.Inner.Y, HourTickLength)
	}

	quarter := ticks[15]
	if math.Abs(quarter.Outer.X-100) > 1e-9 || math.Abs(quarter.Outer.Y-50) > 1e-9 {
		t.Errorf("tick 15 outer = %v, want 100%%,50%%", quarter.Outer)
	}
	if quarter.Center != quarter.Outer {
		t.Errorf("tick 15 center = %v, want on scale radius", quarter.Center)
	}

	minor := ticks[1]
	d := math.Hypot(minor.Inner.X-50, minor.Inner.Y-50)
	if math.Abs(d-(50-MinuteTickLength)) > 1e-9 {
		t.Errorf("minor tick inner radius = %v, want %v", d, 50-MinuteTickLength)
	}
}

func TestRing(t *testing.T) {
	tests := []struct {
		name  string
		opts  Options
		wantN int
	}{
		{"24h with hour scale", Options{Hour24: true, Scale: []string{"hour"}}, 24},
		{"24h without hour scale", Options{Hour24: true, Scale: []string{"minute"}}, 0},
		{"12h", Options{Scale: []string{"hour"}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, _ := Resolve(tt.opts)
			if got := len(f.Ring()); got != tt.wantN {
				t.Errorf("len(Ring()) = %d, want %d", got, tt.wantN)
			}
		})
	}

	f, _ := Resolve(Options{Hour24: true})
	for i, p := range f.Ring() {
		d := math.Hypot(p.X-50, p.Y-50)
		if math.Abs(d-f.RingRadius()) > 1e-9 {
			t.Errorf("ring dot %d at radius %v, want %v", i, d, f.RingRadius())
		}
	}
}

func TestLabels(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		wantN    int
		wantTop  string
		wantLast int
	}{
		{"arabic", Options{Digits: "arabic"}, 12, "12", 12},
		{"roman", Options{Digits: "roman"}, 12, "XII", 12},
		{"arabic 24h", Options{Digits: "arabic", Hour24: true}, 24, "24", 24},
		{"roman 24h", Options{Digits: "roman", Hour24: true}, 24, "XII", 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, _ := Resolve(tt.opts)
			labels := f.Labels()
			if len(labels) != tt.wantN {
				t.Fatalf("len(Labels()) = %d, want %d", len(labels), tt.wantN)
			}
			top := labels[len(labels)-1]
			if top.Index != tt.wantLast || top.Text != tt.wantTop {
				t.Errorf("top label = %d %q, want %d %q", top.Index, top.Text, tt.wantLast, tt.wantTop)
			}
			// The top label sits at 12 o'clock.
			if math.Abs(top.At.X-50) > 1e-9 || top.At.Y >= 50 {
				t.Errorf("top label at %v, want straight above centre", top.At)
			}
			if labels[0].Index != 1 {
				t.Errorf("first label index = %d, want 1", labels[0].Index)
			}
		})
	}
}

func TestRomanLabels24HourRepeatHours(t *testing.T) {
	f, _ := Resolve(Options{Digits: "roman", Hour24: true})
	labels := f.Labels()
	want := []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X", "XI", "XII"}
	for i, d := range labels {
		if d.Text != want[i%12] {
			t.Errorf("label %d = %q, want %q", d.Index, d.Text, want[i%12])
		}
	}
}

func TestDigitRadiusFollowsScale(t *testing.T) {
	tests := []struct {
		opts Options
		want float64
	}{
		{Options{Digits: "arabic"}, 39},
		{Options{Digits: "roman"}, 35},
		{Options{Digits: "arabic", ScaleStyle: "dot"}, 39},
		{Options{Digits: "arabic", ScaleRadius: 45}, 34},
		{Options{Digits: "roman", ScaleStyle: "dot", ScaleRadius: 40}, 29},
	}
	for _, tt := range tests {
		f, _ := Resolve(tt.opts)
		if got := f.DigitRadius(); got != tt.want {
			t.Errorf("DigitRadius() for %+v = %v, want %v", tt.opts, got, tt.want)
		}
	}
}

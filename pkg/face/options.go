package face

// Scale names accepted in [Options.Scale].
const (
	ScaleHour   = "hour"
	ScaleMinute = "minute"
)

// Default option values.
const (
	DefaultScaleColor      = "#404040"
	DefaultHandColor       = "black"
	DefaultSecondHandColor = "red"
	DefaultIDPrefix        = "ptb"
)

// DefaultBackground is the background triple: invalid (no time received),
// connected and disconnected.
var DefaultBackground = [3]string{"lightgray", "#eaeaea", "#ffb2b2"}

// DefaultScale enables both scales.
var DefaultScale = []string{ScaleHour, ScaleMinute}

// Options contains all user-facing settings of a clock face.
// The zero value of every field selects its default.
type Options struct {
	// Scale lists the enabled scales ("hour", "minute"). Nil selects both;
	// an empty, non-nil slice disables all ticks.
	Scale []string `json:"scale,omitempty" toml:"scale" yaml:"scale"`

	ScaleColor      string `json:"scale_color,omitempty" toml:"scale_color" yaml:"scale_color"`
	HandColor       string `json:"hand_color,omitempty" toml:"hand_color" yaml:"hand_color"`
	SecondHandColor string `json:"second_hand_color,omitempty" toml:"second_hand_color" yaml:"second_hand_color"`

	// Background holds exactly three colors: invalid, connected,
	// disconnected.
	Background []string `json:"background,omitempty" toml:"background" yaml:"background"`

	ScaleStyle  string  `json:"scale_style,omitempty" toml:"scale_style" yaml:"scale_style"`
	ScaleRadius float64 `json:"scale_radius,omitempty" toml:"scale_radius" yaml:"scale_radius"` // percent

	Digits        string  `json:"digits,omitempty" toml:"digits" yaml:"digits"`
	DigitFontSize float64 `json:"digit_font_size,omitempty" toml:"digit_font_size" yaml:"digit_font_size"` // px

	Hour24   bool   `json:"hour24,omitempty" toml:"hour24" yaml:"hour24"`
	IDPrefix string `json:"id_prefix,omitempty" toml:"id_prefix" yaml:"id_prefix"`

	// Shadow lists the hands drawn with a drop shadow ("hour", "minute",
	// "second").
	Shadow []string `json:"shadow,omitempty" toml:"shadow" yaml:"shadow"`
}

// DefaultOptions returns Options with every field set to its default,
// suitable for displaying defaults in help text.
func DefaultOptions() Options {
	return Options{
		Scale:           append([]string(nil), DefaultScale...),
		ScaleColor:      DefaultScaleColor,
		HandColor:       DefaultHandColor,
		SecondHandColor: DefaultSecondHandColor,
		Background:      append([]string(nil), DefaultBackground[:]...),
		ScaleStyle:      string(ScaleLine),
		Digits:          string(DigitsNone),
		IDPrefix:        DefaultIDPrefix,
	}
}

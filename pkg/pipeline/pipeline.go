// Package pipeline runs the clockface generation pipeline.
//
// The pipeline is shared by the one-shot generator and the preview server so
// both resolve and render faces the same way.
//
// # Stages
//
//  1. Resolve: turn face options into a typed face, logging each fallback
//  2. Render: write the SVG document
//  3. Wrap: embed the SVG in an HTML page (HTML format only)
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Face:   face.Options{Digits: "roman"},
//	    Format: pipeline.FormatHTML,
//	})
//	if err != nil {
//	    return err
//	}
//	page := result.Output()
package pipeline

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/clockface/pkg/errors"
	"github.com/matzehuels/clockface/pkg/face"
	"github.com/matzehuels/clockface/pkg/render/sink"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatHTML = "html"
)

// DefaultFormat is the output format when none is set.
const DefaultFormat = FormatSVG

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatHTML: true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, html)", format)
	}
	return nil
}

// Options contains all configuration for one pipeline run.
type Options struct {
	Face   face.Options `json:"face"`
	Format string       `json:"format,omitempty"`

	// Page configures the HTML wrapper; ignored for SVG output.
	Page sink.PageOptions `json:"-"`

	// Logger receives notices and stage timings. Nil selects the runner's.
	Logger *log.Logger `json:"-"`
}

// SetDefaults fills unset fields.
func (o *Options) SetDefaults() {
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	o.Page.SetDefaults()
}

// Validate checks the fields that can make a run fail. Face options are
// never rejected; they fall back during resolution.
func (o *Options) Validate() error {
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	if o.Format == FormatHTML {
		return o.Page.Validate()
	}
	return nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Face is the resolved face.
	Face face.Face

	// Notices lists option values replaced by defaults.
	Notices []face.Notice

	// Format is the requested output format.
	Format string

	// Artifacts contains rendered outputs keyed by format. The SVG is
	// always present.
	Artifacts map[string][]byte

	// Stats contains counts and timing.
	Stats Stats
}

// Output returns the artifact for the requested format.
func (r *Result) Output() []byte {
	return r.Artifacts[r.Format]
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Ticks      int
	RingDots   int
	Digits     int
	RenderTime time.Duration
}

func (s Stats) String() string {
	return fmt.Sprintf("%d ticks, %d ring dots, %d digits", s.Ticks, s.RingDots, s.Digits)
}

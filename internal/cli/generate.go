package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/clockface/pkg/config"
	"github.com/matzehuels/clockface/pkg/errors"
	"github.com/matzehuels/clockface/pkg/face"
	"github.com/matzehuels/clockface/pkg/pipeline"
	"github.com/matzehuels/clockface/pkg/render/sink"
)

// scaleNone disables every scale when given as the only --scale value.
const scaleNone = "none"

// faceFlags holds the flags shared by the generator and the preview server.
// Values only take effect when the flag was set explicitly, so that a
// config file is not overridden by flag defaults.
type faceFlags struct {
	configPath string
	face       face.Options
	page       config.Page
}

func (f *faceFlags) bind(fs *pflag.FlagSet) {
	d := face.DefaultOptions()

	fs.StringVar(&f.configPath, "config", "", "read settings from a TOML or YAML file")

	fs.StringSliceVar(&f.face.Scale, "scale", d.Scale, `scales to draw: hour, minute or "none"`)
	fs.StringVar(&f.face.ScaleColor, "scale-color", d.ScaleColor, "tick and digit color")
	fs.StringVar(&f.face.HandColor, "hand-color", d.HandColor, "hour and minute hand color")
	fs.StringVar(&f.face.SecondHandColor, "second-hand-color", d.SecondHandColor, "second hand color")
	fs.StringSliceVar(&f.face.Background, "background", d.Background, "background colors: invalid,connected,disconnected")
	fs.StringVar(&f.face.ScaleStyle, "scale-style", d.ScaleStyle, "tick style: line or dot")
	fs.Float64Var(&f.face.ScaleRadius, "scale-radius", 0, "scale radius in percent (0 = 50 for lines, 46 for dots)")
	fs.StringVar(&f.face.Digits, "digits", d.Digits, "digit style: none, arabic or roman")
	fs.Float64Var(&f.face.DigitFontSize, "digit-font-size", 0, "digit font size in px (0 = style default)")
	fs.BoolVar(&f.face.Hour24, "24hour", false, "draw a 24-hour dial")
	fs.StringVar(&f.face.IDPrefix, "id-prefix", d.IDPrefix, "prefix for element ids")
	fs.StringSliceVar(&f.face.Shadow, "shadow", nil, "hands with a drop shadow: hour, minute, second")

	fs.StringVar(&f.page.Server, "server", sink.DefaultServer, "WebSocket time server")
	fs.StringVar(&f.page.Timezone, "tz", sink.DefaultTimezone, "default timezone as zone[,offset], e.g. UTC,3600")
	fs.StringVar(&f.page.Script, "script", sink.DefaultScript, "URL of the clock script")
	fs.StringVar(&f.page.Lang, "lang", sink.DefaultLanguage.String(), "page language (BCP 47)")
	fs.StringVar(&f.page.Title, "title", sink.DefaultTitle, "page title")
}

// resolve merges defaults, the config file and explicitly set flags.
func (f *faceFlags) resolve(fs *pflag.FlagSet) (face.Options, sink.PageOptions, error) {
	var opts face.Options
	var page config.Page
	if f.configPath != "" {
		cfg, err := config.Load(f.configPath)
		if err != nil {
			return face.Options{}, sink.PageOptions{}, err
		}
		opts, page = cfg.Face, cfg.Page
	}

	set := func(name string, apply func()) {
		if fs.Changed(name) {
			apply()
		}
	}
	set("scale", func() { opts.Scale = scaleList(f.face.Scale) })
	set("scale-color", func() { opts.ScaleColor = f.face.ScaleColor })
	set("hand-color", func() { opts.HandColor = f.face.HandColor })
	set("second-hand-color", func() { opts.SecondHandColor = f.face.SecondHandColor })
	set("background", func() { opts.Background = f.face.Background })
	set("scale-style", func() { opts.ScaleStyle = f.face.ScaleStyle })
	set("scale-radius", func() { opts.ScaleRadius = f.face.ScaleRadius })
	set("digits", func() { opts.Digits = f.face.Digits })
	set("digit-font-size", func() { opts.DigitFontSize = f.face.DigitFontSize })
	set("24hour", func() { opts.Hour24 = f.face.Hour24 })
	set("id-prefix", func() { opts.IDPrefix = f.face.IDPrefix })
	set("shadow", func() { opts.Shadow = f.face.Shadow })

	set("server", func() { page.Server = f.page.Server })
	set("tz", func() { page.Timezone = f.page.Timezone })
	set("script", func() { page.Script = f.page.Script })
	set("lang", func() { page.Lang = f.page.Lang })
	set("title", func() { page.Title = f.page.Title })

	pageOpts, err := page.Options()
	if err != nil {
		return face.Options{}, sink.PageOptions{}, err
	}
	return opts, pageOpts, nil
}

// scaleList maps a lone "none" to an empty, non-nil list.
func scaleList(values []string) []string {
	if len(values) == 1 && values[0] == scaleNone {
		return []string{}
	}
	return values
}

// generateFlags holds the root command's flags.
type generateFlags struct {
	faceFlags
	svg    bool
	html   bool
	output string
}

func (g *generateFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.BoolVar(&g.svg, "svg", false, "write the SVG clock face")
	fs.BoolVar(&g.html, "html", false, "write an HTML page embedding the clock face")
	fs.StringVarP(&g.output, "output", "o", "", "output file (default: stdout)")
	g.faceFlags.bind(fs)
	cmd.MarkFlagsMutuallyExclusive("svg", "html")
}

// format returns the selected output format, or "" when neither --svg nor
// --html was given.
func (g *generateFlags) format() string {
	switch {
	case g.svg:
		return pipeline.FormatSVG
	case g.html:
		return pipeline.FormatHTML
	}
	return ""
}

func (c *CLI) runGenerate(cmd *cobra.Command, g *generateFlags) error {
	format := g.format()
	if format == "" {
		printUsageHint(cmd)
		return nil
	}

	faceOpts, page, err := g.resolve(cmd.Flags())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	result, err := c.newRunner().Execute(ctx, pipeline.Options{
		Face:   faceOpts,
		Format: format,
		Page:   page,
		Logger: logger,
	})
	if err != nil {
		return err
	}
	prog.done("Rendered " + result.Stats.String())

	return writeOutput(cmd, g.output, result.Output())
}

func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write output")
		}
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	printSuccess(cmd.ErrOrStderr(), "Wrote clock face")
	printFile(cmd.ErrOrStderr(), path)
	return nil
}

func printUsageHint(cmd *cobra.Command) {
	w := cmd.ErrOrStderr()
	printInfo(w, "Nothing to do: choose an output format")
	printDetail(w, "--svg   the bare clock face")
	printDetail(w, "--html  a page that runs the clock")
	printNextStep(w, "Try", appName+" --svg --digits arabic")
}

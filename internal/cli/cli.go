// Package cli implements the clockface command-line interface.
//
// The root command writes a clock face as SVG or as an HTML page; serve
// hosts the same page over HTTP for previewing. Settings come from built-in
// defaults, an optional TOML or YAML file (--config) and flags, in that order
// of precedence.
//
// All commands support --verbose (-v) for debug-level logging. The logger
// travels on the command context so subcommands share it.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/clockface/pkg/buildinfo"
	"github.com/matzehuels/clockface/pkg/pipeline"
)

// appName is the application name used for display.
const appName = "clockface"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool
	gen := &generateFlags{}

	root := &cobra.Command{
		Use:   appName,
		Short: "Clockface draws analog clock faces for web clocks",
		Long: `Clockface generates the SVG markup of an analog clock face, optionally
wrapped in an HTML page that drives it through a WebSocket time service.

Hands and readouts carry stable element ids so that a client script can
animate them.`,
		Example: `  clockface --svg --digits roman > face.svg
  clockface --html --tz UTC,3600 --server wss://time.example.org/ws -o clock.html
  clockface --svg --config clock.toml --24hour`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, gen)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	gen.bind(root)

	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

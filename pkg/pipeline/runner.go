package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/clockface/pkg/face"
	"github.com/matzehuels/clockface/pkg/observability"
	"github.com/matzehuels/clockface/pkg/render/sink"
)

// Runner executes the pipeline. It holds no per-run state, so one Runner
// can serve concurrent callers.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs resolve → render → wrap.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := r.logger(opts)
	hooks := observability.Pipeline()

	start := time.Now()
	hooks.OnRenderStart(ctx, opts.Format)

	f, notices := face.Resolve(opts.Face)
	for _, n := range notices {
		logger.Warn("option fallback", "field", n.Field, "value", n.Value, "using", n.Fallback)
		hooks.OnFallback(ctx, n.Field)
	}

	result := &Result{
		Face:      f,
		Notices:   notices,
		Format:    opts.Format,
		Artifacts: make(map[string][]byte),
		Stats: Stats{
			Ticks:    len(f.Ticks()),
			RingDots: len(f.Ring()),
			Digits:   len(f.Labels()),
		},
	}

	svg := sink.RenderSVG(f, sink.WithLabels(sink.LabelsFor(opts.Page.Lang)))
	result.Artifacts[FormatSVG] = svg

	if opts.Format == FormatHTML {
		page, err := sink.RenderHTML(svg, opts.Page)
		if err != nil {
			hooks.OnRenderComplete(ctx, opts.Format, time.Since(start), err)
			return nil, fmt.Errorf("render html: %w", err)
		}
		result.Artifacts[FormatHTML] = page
	}

	result.Stats.RenderTime = time.Since(start)
	hooks.OnRenderComplete(ctx, opts.Format, result.Stats.RenderTime, nil)
	logger.Debug("rendered clock face",
		"format", opts.Format,
		"ticks", result.Stats.Ticks,
		"ring", result.Stats.RingDots,
		"digits", result.Stats.Digits,
		"bytes", len(result.Output()),
		"duration", result.Stats.RenderTime)

	return result, nil
}

func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}

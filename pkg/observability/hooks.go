// Package observability provides hooks for instrumenting clockface runs.
//
// Libraries call the registered hooks; binaries decide what to do with the
// events. The default hooks do nothing, so the pipeline has no dependency on
// a metrics backend.
//
// # Usage
//
// Register hooks at start-up:
//
//	observability.SetPipelineHooks(metrics)
//
// The pipeline reports its stages:
//
//	observability.Pipeline().OnRenderStart(ctx, "svg")
//	// ... render ...
//	observability.Pipeline().OnRenderComplete(ctx, "svg", time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the generation pipeline.
type PipelineHooks interface {
	// OnFallback records an option value replaced by its default.
	OnFallback(ctx context.Context, field string)

	OnRenderStart(ctx context.Context, format string)
	OnRenderComplete(ctx context.Context, format string, duration time.Duration, err error)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnFallback(context.Context, string)                             {}
func (NoopPipelineHooks) OnRenderStart(context.Context, string)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, time.Duration, error) {}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks. A nil h is ignored.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores the no-op hooks.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}

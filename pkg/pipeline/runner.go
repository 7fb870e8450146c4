package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordstack/pkg/fetch"
	"github.com/matzehuels/wordstack/pkg/histogram"
	"github.com/matzehuels/wordstack/pkg/observability"
)

// Runner executes the pipeline against one [fetch.Fetcher].
//
// The Runner keeps no per-run state; it may be reused for several paths.
type Runner struct {
	Fetcher fetch.Fetcher
	Logger  *log.Logger
}

// NewRunner creates a runner reading word counts from f.
// If logger is nil, the default charmbracelet logger is used.
func NewRunner(f fetch.Fetcher, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Fetcher: f, Logger: logger}
}

// Execute runs the complete fetch → transform → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result, err := r.Prepare(ctx, opts)
	if err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	renderStart := time.Now()

	c, err := BuildChart(result.Entries, opts)
	if err == nil {
		result.Chart = c
		result.Artifacts, err = Render(c, opts)
	}
	result.Stats.RenderTime = time.Since(renderStart)
	hooks.OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	r.Logger.Info("rendered chart",
		"formats", opts.Formats,
		"bars", len(c.Bars),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Prepare runs the fetch and transform stages only.
func (r *Runner) Prepare(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateForFetch(); err != nil {
		return nil, err
	}
	if err := opts.ValidateForTransform(); err != nil {
		return nil, err
	}

	words, fetchTime, err := r.fetch(ctx, opts.Path)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	start := time.Now()
	entries, err := Layout(words, opts)
	transformTime := time.Since(start)
	observability.Pipeline().OnTransformComplete(ctx, len(entries), histogram.Total(entries), transformTime, err)
	if err != nil {
		return nil, fmt.Errorf("transform: %w", err)
	}

	result := &Result{
		Words:   words,
		Entries: entries,
		Stats: Stats{
			Distinct:      len(words),
			Shown:         len(entries),
			Total:         histogram.Total(entries),
			FetchTime:     fetchTime,
			TransformTime: transformTime,
		},
	}
	if len(words) == 0 {
		r.Logger.Warn("no words found", "path", opts.Path)
	}
	r.Logger.Debug("laid out words",
		"order", opts.Order,
		"shown", result.Stats.Shown,
		"total", result.Stats.Total)
	return result, nil
}

func (r *Runner) fetch(ctx context.Context, path string) (histogram.Frequencies, time.Duration, error) {
	source := sourceName(r.Fetcher)
	hooks := observability.Pipeline()
	hooks.OnFetchStart(ctx, source, path)

	start := time.Now()
	words, err := r.Fetcher.Fetch(ctx, path)
	elapsed := time.Since(start)
	hooks.OnFetchComplete(ctx, source, path, len(words), elapsed, err)
	if err != nil {
		return nil, elapsed, err
	}

	r.Logger.Info("fetched word counts",
		"source", source,
		"words", len(words),
		"duration", elapsed)
	return words, elapsed, nil
}

func sourceName(f fetch.Fetcher) string {
	if s, ok := f.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", f)
}

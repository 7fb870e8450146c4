// Package pipeline provides the fetch → transform → render pipeline shared by
// every wordstack command.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Fetch: Ask a [fetch.Fetcher] for the word counts of a path
//  2. Transform: Order the counts, keep the top words and lay them out end
//     to end with [histogram.Transform]
//  3. Render: Build the chart geometry and write it in each requested
//     format (SVG, PNG, JSON)
//
// # Usage
//
//	client, _ := fetch.NewClient("")
//	runner := pipeline.NewRunner(client, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Path:    "/data/books",
//	    Formats: []string{"svg", "png"},
//	})
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts["svg"]
//
// Commands that only need the layout (a table, the terminal viewer) call
// [Runner.Prepare] instead, which stops after the transform stage.
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordstack/pkg/errors"
	"github.com/matzehuels/wordstack/pkg/fetch"
	"github.com/matzehuels/wordstack/pkg/histogram"
	"github.com/matzehuels/wordstack/pkg/render/chart"
	"github.com/matzehuels/wordstack/pkg/render/sink"
)

// =============================================================================
// Default Values - Single Source of Truth for the CLI and config file
// =============================================================================

const (
	// DefaultEndpoint is the word-count service the CLI talks to.
	DefaultEndpoint = fetch.DefaultEndpoint

	// DefaultTimeout bounds each request to the word-count service.
	DefaultTimeout = fetch.DefaultTimeout

	// DefaultOrder keeps words in the order the source returned them.
	DefaultOrder = histogram.OrderInsertion

	// DefaultMode places bars end to end.
	DefaultMode = chart.ModeStacked

	// DefaultWidth is the total chart width in pixels.
	DefaultWidth = chart.DefaultWidth

	// DefaultBarHeight is the height allotted to each word.
	DefaultBarHeight = chart.DefaultBarHeight

	// DefaultScale is the PNG scale factor.
	DefaultScale = sink.DefaultScale
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Fetch options
	Path string `json:"path"`

	// Transform options
	Order string `json:"order,omitempty"`
	Top   int    `json:"top,omitempty"` // Keep only the N most frequent words (0 = all)

	// Render options
	Mode      string   `json:"mode,omitempty"`
	Width     float64  `json:"width,omitempty"`
	BarHeight float64  `json:"bar_height,omitempty"`
	Formats   []string `json:"formats,omitempty"`
	Scale     float64  `json:"scale,omitempty"`
	Static    bool     `json:"static,omitempty"` // Omit the SVG hover script
	NoLegend  bool     `json:"no_legend,omitempty"`
	ChartID   string   `json:"chart_id,omitempty"` // Fixed chart id (random when empty)

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Words are the counts as returned by the fetcher.
	Words histogram.Frequencies

	// Entries is the layout, after ordering and top-N selection.
	Entries []histogram.Entry

	// Chart is the rendered geometry. It is zero after [Runner.Prepare].
	Chart chart.Chart

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Distinct      int // Words returned by the fetcher
	Shown         int // Words kept in the layout
	Total         int // Sum of the counts kept in the layout
	FetchTime     time.Duration
	TransformTime time.Duration
	RenderTime    time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated format list such as "svg,png",
// dropping blanks and duplicates.
func ParseFormats(s string) ([]string, error) {
	var formats []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || slices.Contains(formats, f) {
			continue
		}
		if err := ValidateFormat(f); err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}
	return formats, nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. Calling it more than once has no further effect.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForFetch(); err != nil {
		return err
	}
	if err := o.ValidateForTransform(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForFetch checks the path.
func (o *Options) ValidateForFetch() error {
	if err := errors.ValidateRequestPath(o.Path); err != nil {
		return err
	}
	o.setLogger()
	return nil
}

// SetTransformDefaults sets default values for ordering.
func (o *Options) SetTransformDefaults() {
	if o.Order == "" {
		o.Order = string(DefaultOrder)
	}
	o.setLogger()
}

// ValidateForTransform validates and sets defaults for the transform stage.
func (o *Options) ValidateForTransform() error {
	o.SetTransformDefaults()
	if _, err := histogram.ParseOrder(o.Order); err != nil {
		return err
	}
	if o.Top < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "top must not be negative, got %d", o.Top)
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if o.Mode == "" {
		o.Mode = string(DefaultMode)
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.BarHeight == 0 {
		o.BarHeight = DefaultBarHeight
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	o.setLogger()
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if _, err := chart.ParseMode(o.Mode); err != nil {
		return err
	}
	if o.Width < 0 || o.BarHeight < 0 || o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "width, bar height and scale must be positive")
	}
	if err := chart.ValidateID(o.ChartID); err != nil {
		return err
	}
	return ValidateFormats(o.Formats)
}

// Dimensions returns the chart dimensions for these options.
func (o *Options) Dimensions() chart.Dimensions {
	d := chart.DefaultDimensions()
	if o.Width > 0 {
		d.Width = o.Width
	}
	if o.BarHeight > 0 {
		d.BarHeight = o.BarHeight
	}
	return d
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

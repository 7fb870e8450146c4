package chart

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/matzehuels/wordstack/pkg/errors"
	"github.com/matzehuels/wordstack/pkg/histogram"
)

// Mode selects where bars start on the x axis.
type Mode string

const (
	// ModeStacked starts each bar at its offset; the axis runs to the total.
	ModeStacked Mode = "stacked"
	// ModeBaseline starts every bar at zero; the axis runs to the largest count.
	ModeBaseline Mode = "baseline"
)

// Modes lists the supported modes.
var Modes = []Mode{ModeStacked, ModeBaseline}

// ParseMode converts a name such as "baseline" into a [Mode].
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if slices.Contains(Modes, m) {
		return m, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "invalid mode: %q (must be stacked or baseline)", s)
}

// Default geometry.
const (
	DefaultWidth     = 1000.0
	DefaultBarHeight = 50.0
	DefaultLegend    = 180.0
	BandPadding      = 0.1
	TickCount        = 10
)

// Margins around the plot area, in pixels.
type Margins struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Dimensions controls the overall size of a chart.
type Dimensions struct {
	Width     float64 // Total width, legend included
	BarHeight float64 // Height allotted to each word, margins included
	Legend    float64 // Width of the legend panel right of the plot
	Margins   Margins
}

// DefaultDimensions returns the standard 1000px wide layout.
func DefaultDimensions() Dimensions {
	return Dimensions{
		Width:     DefaultWidth,
		BarHeight: DefaultBarHeight,
		Legend:    DefaultLegend,
		Margins:   Margins{Top: 12, Right: 24, Bottom: 24, Left: 100},
	}
}

func (d Dimensions) normalized() Dimensions {
	if d.Width <= 0 {
		d.Width = DefaultWidth
	}
	if d.BarHeight <= 0 {
		d.BarHeight = DefaultBarHeight
	}
	d.Legend = max(d.Legend, 0)
	d.Margins.Top = max(d.Margins.Top, 0)
	d.Margins.Right = max(d.Margins.Right, 0)
	d.Margins.Bottom = max(d.Margins.Bottom, 0)
	d.Margins.Left = max(d.Margins.Left, 0)
	return d
}

// PlotWidth is the width left for bars once margins and legend are removed.
func (d Dimensions) PlotWidth() float64 {
	return max(0, d.Width-d.Margins.Left-d.Margins.Right-d.Legend)
}

// PlotHeight is the height of the bar area for n words.
func (d Dimensions) PlotHeight(n int) float64 {
	return max(0, d.BarHeight*float64(n)-d.Margins.Top-d.Margins.Bottom)
}

// Bar is one word's rectangle, positioned relative to the plot origin.
type Bar struct {
	Index  int     `json:"index"`
	Label  string  `json:"label"`
	Count  int     `json:"count"`
	Offset int     `json:"offset"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Color  string  `json:"color"`
}

// CenterY returns the vertical centre of the bar.
func (b Bar) CenterY() float64 { return b.Y + b.Height/2 }

// Tooltip returns the hover text for the bar.
func (b Bar) Tooltip() string { return TooltipText(b.Label, b.Count) }

// Tick is an x axis tick.
type Tick struct {
	Value float64 `json:"value"`
	X     float64 `json:"x"`
	Label string  `json:"label"`
}

// Chart is the complete, renderer-independent geometry of a histogram.
type Chart struct {
	ID         string            `json:"id"`
	Title      string            `json:"title,omitempty"`
	Mode       Mode              `json:"mode"`
	Width      float64           `json:"width"`
	Height     float64           `json:"height"`
	Margins    Margins           `json:"margins"`
	Legend     float64           `json:"legend"`
	PlotWidth  float64           `json:"plot_width"`
	PlotHeight float64           `json:"plot_height"`
	Domain     float64           `json:"domain"`
	Bars       []Bar             `json:"bars"`
	Ticks      []Tick            `json:"ticks"`
	Summary    histogram.Summary `json:"summary"`
}

// LegendX returns the left edge of the legend panel in chart coordinates.
func (c Chart) LegendX() float64 {
	return c.Margins.Left + c.PlotWidth + c.Margins.Right
}

// Option configures [Build].
type Option func(*builder)

type builder struct {
	mode    Mode
	id      string
	title   string
	palette []string
}

// WithMode selects the bar placement. Unknown modes fall back to stacked.
func WithMode(m Mode) Option { return func(b *builder) { b.mode = m } }

// WithID sets the chart id instead of generating a random one. Use
// [ValidateID] first for ids that come from users; sinks replace
// characters outside [A-Za-z0-9_-].
func WithID(id string) Option { return func(b *builder) { b.id = id } }

// ValidateID checks that id can be used as an element id, a CSS selector
// and a script string without escaping. The empty id is valid and means
// "generate one".
func ValidateID(id string) error {
	if len(id) > 64 {
		return errors.New(errors.ErrCodeInvalidInput, "chart id too long (max 64 characters)")
	}
	for _, r := range id {
		if !IsIDRune(r) {
			return errors.New(errors.ErrCodeInvalidInput, "invalid chart id %q (use letters, digits, '-' and '_')", id)
		}
	}
	return nil
}

// IsIDRune reports whether r may appear in a chart id.
func IsIDRune(r rune) bool {
	return r == '-' || r == '_' || ('0' <= r && r <= '9') || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// WithTitle sets a title, usually the path the counts came from.
func WithTitle(t string) Option { return func(b *builder) { b.title = t } }

// WithPalette replaces the bar colours.
func WithPalette(colors []string) Option {
	return func(b *builder) { b.palette = slices.Clone(colors) }
}

// Build lays out entries in the order given.
//
// Empty entries produce a chart with no bars and no ticks whose height is
// just the top and bottom margins.
func Build(entries []histogram.Entry, dims Dimensions, opts ...Option) Chart {
	b := builder{mode: ModeStacked}
	for _, opt := range opts {
		opt(&b)
	}
	if !slices.Contains(Modes, b.mode) {
		b.mode = ModeStacked
	}
	if b.id == "" {
		b.id = uuid.NewString()
	}

	dims = dims.normalized()
	plotW := dims.PlotWidth()
	plotH := dims.PlotHeight(len(entries))

	domain := histogram.Total(entries)
	if b.mode == ModeBaseline {
		domain = histogram.MaxLength(entries)
	}
	x := Linear{Max: float64(domain), Range: plotW}
	y := NewBand(len(entries), plotH, BandPadding)

	c := Chart{
		ID:         b.id,
		Title:      b.title,
		Mode:       b.mode,
		Width:      dims.Width,
		Height:     plotH + dims.Margins.Top + dims.Margins.Bottom,
		Margins:    dims.Margins,
		Legend:     dims.Legend,
		PlotWidth:  plotW,
		PlotHeight: plotH,
		Domain:     float64(domain),
		Bars:       make([]Bar, len(entries)),
		Ticks:      []Tick{},
		Summary:    histogram.Summarize(wordCounts(entries)),
	}

	for i, e := range entries {
		start := e.Offset
		if b.mode == ModeBaseline {
			start = 0
		}
		c.Bars[i] = Bar{
			Index:  i,
			Label:  e.Label,
			Count:  e.Length,
			Offset: e.Offset,
			X:      x.Scale(float64(start)),
			Y:      y.Position(i),
			Width:  x.Scale(float64(e.Length)),
			Height: y.Width,
			Color:  colorAt(b.palette, i),
		}
	}

	values, step := x.Ticks(TickCount)
	for _, v := range values {
		c.Ticks = append(c.Ticks, Tick{Value: v, X: x.Scale(v), Label: FormatTick(v, step)})
	}
	return c
}

// TooltipText formats the hover text shown for a word.
func TooltipText(word string, count int) string {
	return fmt.Sprintf("word: %s  count: %d", word, count)
}

func wordCounts(entries []histogram.Entry) []histogram.WordCount {
	words := make([]histogram.WordCount, len(entries))
	for i, e := range entries {
		words[i] = histogram.WordCount{Word: e.Label, Count: e.Length}
	}
	return words
}

package sink

import (
	"encoding/json"

	"github.com/matzehuels/wordstack/pkg/render/chart"
)

// JSONOption configures [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	compact bool
}

// WithCompactJSON writes the document without indentation.
func WithCompactJSON() JSONOption { return func(r *jsonRenderer) { r.compact = true } }

type jsonOutput struct {
	chart.Chart
	Tooltips []string `json:"tooltips"`
}

// RenderJSON exports the chart geometry as a JSON document: dimensions,
// margins, one entry per bar with its rectangle and colour, the x axis
// ticks, the summary statistics and the hover text for every bar.
//
// Bars appear in chart order. RenderJSON returns an error only if JSON
// marshaling fails.
func RenderJSON(c chart.Chart, opts ...JSONOption) ([]byte, error) {
	var r jsonRenderer
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{Chart: c, Tooltips: make([]string, len(c.Bars))}
	if out.Bars == nil {
		out.Bars = []chart.Bar{}
	}
	if out.Ticks == nil {
		out.Ticks = []chart.Tick{}
	}
	for i, b := range c.Bars {
		out.Tooltips[i] = b.Tooltip()
	}

	if r.compact {
		return json.Marshal(out)
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

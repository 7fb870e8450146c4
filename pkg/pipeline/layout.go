package pipeline

import (
	"github.com/matzehuels/wordstack/pkg/histogram"
	"github.com/matzehuels/wordstack/pkg/render/chart"
)

// Layout orders words, keeps the top opts.Top of them and lays them out.
func Layout(words histogram.Frequencies, opts Options) ([]histogram.Entry, error) {
	if err := opts.ValidateForTransform(); err != nil {
		return nil, err
	}
	order, _ := histogram.ParseOrder(opts.Order)

	ordered := words.Sorted(order)
	if opts.Top > 0 {
		ordered = histogram.Top(ordered, opts.Top)
	}
	return histogram.Transform(ordered)
}

// BuildChart computes the chart geometry for entries.
func BuildChart(entries []histogram.Entry, opts Options) (chart.Chart, error) {
	if err := opts.ValidateForRender(); err != nil {
		return chart.Chart{}, err
	}
	mode, _ := chart.ParseMode(opts.Mode)

	chartOpts := []chart.Option{chart.WithMode(mode), chart.WithTitle(opts.Path)}
	if opts.ChartID != "" {
		chartOpts = append(chartOpts, chart.WithID(opts.ChartID))
	}
	return chart.Build(entries, opts.Dimensions(), chartOpts...), nil
}

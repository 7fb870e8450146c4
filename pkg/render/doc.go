// Package render draws word histograms.
//
// Rendering happens in two steps. The [chart] subpackage turns laid-out
// histogram entries into renderer-independent geometry: bar rectangles, the
// x axis ticks, colours and tooltips. The [sink] subpackage writes that
// geometry out:
//
//   - [sink.RenderSVG]: standalone SVG with a hover tooltip
//   - [sink.RenderPNG]: raster image drawn with gg
//   - [sink.RenderJSON]: the geometry itself, for other front-ends
//
// The terminal viewer in the CLI consumes the same entries but scales them
// to character cells instead.
//
//	c := chart.Build(entries, chart.DefaultDimensions(), chart.WithMode(chart.ModeBaseline))
//	png, err := sink.RenderPNG(c, sink.WithScale(2))
package render

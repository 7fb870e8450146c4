// Package sink writes a [chart.Chart] in an output format.
//
//   - [RenderSVG]: a standalone SVG document with axes, a legend panel and
//     a hover tooltip showing each word and its count
//   - [RenderPNG]: a raster image drawn with fogleman/gg
//   - [RenderJSON]: the chart geometry for other front-ends
//
// All sinks are pure functions of the chart; none of them touch the disk.
package sink

// Package chart computes the geometry of a horizontal word-frequency chart.
//
// [Build] turns the layout entries produced by histogram.Transform into a
// [Chart]: one bar per word, an ordinal y axis of words and a linear x axis
// of counts with evenly spaced ticks. A Chart holds plain numbers and
// colours; the sink package turns it into SVG, PNG or JSON.
//
// # Geometry
//
// The chart is laid out like this:
//
//	+--------------------------------------------------------------+
//	|            margin top                                        |
//	| margin  +------------------------------+ margin  +---------+ |
//	|  left   |  plot: one band per word     |  right  | legend  | |
//	| (labels)|                              |         |         | |
//	|         +------------------------------+         +---------+ |
//	|            margin bottom (x axis)                            |
//	+--------------------------------------------------------------+
//
// Each word gets BarHeight pixels of total height, margins included. Bands
// are padded by 10% and rounded to whole pixels. Bar coordinates are
// relative to the plot origin.
//
// # Modes
//
// In [ModeStacked] every bar starts at its entry's offset, so bars follow
// one another end to end and the x axis runs to the total count. In
// [ModeBaseline] every bar starts at zero and the x axis runs to the
// largest count.
package chart

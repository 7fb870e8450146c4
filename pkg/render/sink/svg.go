package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/matzehuels/wordstack/pkg/render/chart"
)

const (
	axisColor   = "#333333"
	tickSize    = 6.0
	tickPadding = 3.0
	fontSize    = 11.0
	legendPad   = 16.0
	legendLine  = 18.0
)

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	interactive bool
	legend      bool
	font        string
	background  string
}

// WithoutInteraction leaves out the hover tooltip script and styles.
func WithoutInteraction() SVGOption { return func(r *svgRenderer) { r.interactive = false } }

// WithoutLegend leaves the legend panel empty.
func WithoutLegend() SVGOption { return func(r *svgRenderer) { r.legend = false } }

// WithFontFamily sets the CSS font family for all text.
func WithFontFamily(f string) SVGOption { return func(r *svgRenderer) { r.font = f } }

// WithBackground fills the whole image with a colour.
func WithBackground(color string) SVGOption { return func(r *svgRenderer) { r.background = color } }

// RenderSVG renders c as a standalone SVG document.
//
// Element ids are prefixed with the chart id so several charts can share
// one HTML page.
func RenderSVG(c chart.Chart, opts ...SVGOption) []byte {
	r := svgRenderer{interactive: true, legend: true, font: "sans-serif"}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" id="%s" class="wordstack" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f" font-family="%s" font-size="%.0f">`+"\n",
		rootID(c), c.Width, c.Height, c.Width, c.Height, escape(r.font), fontSize)
	if c.Title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", escape(c.Title))
	}
	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", escape(r.background))
	}

	fmt.Fprintf(&buf, `  <g class="plot" transform="translate(%.1f,%.1f)">`+"\n", c.Margins.Left, c.Margins.Top)
	renderBars(&buf, c)
	renderXAxis(&buf, c)
	renderYAxis(&buf, c)
	buf.WriteString("  </g>\n")

	if r.legend {
		renderLegend(&buf, c)
	}
	if r.interactive {
		renderTooltip(&buf, c)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderBars(buf *bytes.Buffer, c chart.Chart) {
	buf.WriteString(`    <g class="bars">` + "\n")
	for _, b := range c.Bars {
		fmt.Fprintf(buf, `      <rect class="bar" id="%s-bar-%d" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" data-tooltip="%s">`,
			rootID(c), b.Index, b.X, b.Y, b.Width, b.Height, escape(b.Color), escape(b.Tooltip()))
		fmt.Fprintf(buf, "<title>%s</title></rect>\n", escape(b.Tooltip()))
	}
	buf.WriteString("    </g>\n")
}

func renderXAxis(buf *bytes.Buffer, c chart.Chart) {
	fmt.Fprintf(buf, `    <g class="axis x-axis" transform="translate(0,%.1f)">`+"\n", c.PlotHeight)
	for _, t := range c.Ticks {
		fmt.Fprintf(buf, `      <g class="tick" transform="translate(%.2f,0)"><line y2="%.0f" stroke="%s"/><text y="%.0f" dy=".71em" text-anchor="middle">%s</text></g>`+"\n",
			t.X, tickSize, axisColor, tickSize+tickPadding, escape(t.Label))
	}
	fmt.Fprintf(buf, `      <path class="domain" d="M0,%.0fV0H%.2fV%.0f" fill="none" stroke="%s"/>`+"\n",
		tickSize, c.PlotWidth, tickSize, axisColor)
	buf.WriteString("    </g>\n")
}

func renderYAxis(buf *bytes.Buffer, c chart.Chart) {
	buf.WriteString(`    <g class="axis y-axis">` + "\n")
	for _, b := range c.Bars {
		fmt.Fprintf(buf, `      <g class="tick" transform="translate(0,%.2f)"><line x2="%.0f" stroke="%s"/><text x="%.0f" dy=".32em" text-anchor="end">%s</text></g>`+"\n",
			b.CenterY(), -tickSize, axisColor, -(tickSize + tickPadding), escape(b.Label))
	}
	fmt.Fprintf(buf, `      <path class="domain" d="M%.0f,0H0V%.2fH%.0f" fill="none" stroke="%s"/>`+"\n",
		-tickSize, c.PlotHeight, -tickSize, axisColor)
	buf.WriteString("    </g>\n")
}

func renderLegend(buf *bytes.Buffer, c chart.Chart) {
	if c.Legend <= 0 {
		return
	}
	fmt.Fprintf(buf, `  <g class="legend" transform="translate(%.1f,%.1f)">`+"\n", c.LegendX()+legendPad, c.Margins.Top)
	for i, line := range legendLines(c) {
		weight := ""
		if i == 0 {
			weight = ` font-weight="bold"`
		}
		fmt.Fprintf(buf, `    <text y="%.1f"%s>%s</text>`+"\n", float64(i+1)*legendLine, weight, escape(line))
	}
	buf.WriteString("  </g>\n")
}

// legendLines lists the text shown in the legend panel.
func legendLines(c chart.Chart) []string {
	s := c.Summary
	lines := []string{"Summary"}
	if c.Title != "" {
		lines = append(lines, c.Title)
	}
	return append(lines,
		fmt.Sprintf("words: %d", s.Words),
		fmt.Sprintf("distinct: %d", s.Distinct),
		fmt.Sprintf("max: %d", s.Max),
		fmt.Sprintf("mean: %.2f", s.Mean),
		fmt.Sprintf("std dev: %.2f", s.StdDev),
		fmt.Sprintf("mode: %s", c.Mode),
	)
}

// rootID returns the id of the <svg> element. It always starts with a
// letter and holds only [A-Za-z0-9_-], so it is safe in attributes, CSS
// selectors and script strings alike.
func rootID(c chart.Chart) string {
	return "wordstack-" + strings.Map(func(r rune) rune {
		if chart.IsIDRune(r) {
			return r
		}
		return '_'
	}, c.ID)
}

func escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

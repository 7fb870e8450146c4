package sink

import (
	"bytes"
	"fmt"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/matzehuels/wordstack/pkg/render/chart"
)

// DefaultScale renders PNGs at twice the chart's nominal size.
const DefaultScale = 2.0

// PNGOption configures [RenderPNG].
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale      float64
	basicFont  bool
	background string
	legend     bool
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// WithBasicFont draws labels with the fixed 7x13 bitmap font instead of
// Go Regular. The bitmap font does not grow with the scale factor.
func WithBasicFont() PNGOption { return func(r *pngRenderer) { r.basicFont = true } }

// WithPNGBackground sets the background colour (default white).
func WithPNGBackground(hex string) PNGOption { return func(r *pngRenderer) { r.background = hex } }

// WithoutPNGLegend leaves the legend panel empty.
func WithoutPNGLegend() PNGOption { return func(r *pngRenderer) { r.legend = false } }

// RenderPNG rasterises c.
func RenderPNG(c chart.Chart, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: DefaultScale, background: "#ffffff", legend: true}
	for _, opt := range opts {
		opt(&r)
	}

	face, err := r.face()
	if err != nil {
		return nil, err
	}

	w := max(1, int(math.Ceil(c.Width*r.scale)))
	h := max(1, int(math.Ceil(c.Height*r.scale)))
	dc := gg.NewContext(w, h)
	dc.SetHexColor(r.background)
	dc.Clear()
	dc.SetFontFace(face)

	// Text anchoring in gg measures in device pixels, so coordinates are
	// scaled here rather than through the context transform.
	p := func(v float64) float64 { return v * r.scale }
	ox, oy := c.Margins.Left, c.Margins.Top

	for _, b := range c.Bars {
		dc.SetHexColor(b.Color)
		dc.DrawRectangle(p(ox+b.X), p(oy+b.Y), p(b.Width), p(b.Height))
		dc.Fill()
	}

	dc.SetHexColor(axisColor)
	dc.SetLineWidth(p(1))

	axisY := oy + c.PlotHeight
	dc.DrawLine(p(ox), p(axisY), p(ox+c.PlotWidth), p(axisY))
	dc.Stroke()
	for _, t := range c.Ticks {
		dc.DrawLine(p(ox+t.X), p(axisY), p(ox+t.X), p(axisY+tickSize))
		dc.Stroke()
		dc.DrawStringAnchored(t.Label, p(ox+t.X), p(axisY+tickSize+tickPadding), 0.5, 1)
	}

	dc.DrawLine(p(ox), p(oy), p(ox), p(axisY))
	dc.Stroke()
	for _, b := range c.Bars {
		cy := oy + b.CenterY()
		dc.DrawLine(p(ox-tickSize), p(cy), p(ox), p(cy))
		dc.Stroke()
		dc.DrawStringAnchored(b.Label, p(ox-tickSize-tickPadding), p(cy), 1, 0.35)
	}

	if r.legend && c.Legend > 0 {
		lx := c.LegendX() + legendPad
		for i, line := range legendLines(c) {
			dc.DrawStringAnchored(line, p(lx), p(oy+float64(i+1)*legendLine), 0, 0)
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func (r pngRenderer) face() (font.Face, error) {
	if r.basicFont {
		return basicfont.Face7x13, nil
	}
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{Size: fontSize * r.scale, DPI: 72}), nil
}

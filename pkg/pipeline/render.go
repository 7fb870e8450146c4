package pipeline

import (
	"fmt"

	"github.com/matzehuels/wordstack/pkg/render/chart"
	"github.com/matzehuels/wordstack/pkg/render/sink"
)

// Render generates output artifacts in the requested formats.
func Render(c chart.Chart, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(c, buildSVGOptions(opts)...)
		case FormatPNG:
			data, err = sink.RenderPNG(c, buildPNGOptions(opts)...)
		case FormatJSON:
			data, err = sink.RenderJSON(c)
		}
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func buildSVGOptions(opts Options) []sink.SVGOption {
	var svgOpts []sink.SVGOption
	if opts.Static {
		svgOpts = append(svgOpts, sink.WithoutInteraction())
	}
	if opts.NoLegend {
		svgOpts = append(svgOpts, sink.WithoutLegend())
	}
	return svgOpts
}

func buildPNGOptions(opts Options) []sink.PNGOption {
	pngOpts := []sink.PNGOption{sink.WithScale(opts.Scale)}
	if opts.NoLegend {
		pngOpts = append(pngOpts, sink.WithoutPNGLegend())
	}
	return pngOpts
}

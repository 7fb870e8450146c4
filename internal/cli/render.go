package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordstack/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	source    sourceFlags
	output    string // output file (single format) or base path (several formats)
	formats   string // comma-separated output formats
	order     string
	mode      string
	width     float64
	barHeight float64
	top       int
	scale     float64
	static    bool // omit the hover script from SVG output
	noLegend  bool
	id        string
	explicit  []string // config keys set by flags
}

func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <path>",
		Short: "Render the word histogram of a path to SVG, PNG or JSON",
		Long: `Render fetches the word counts under <path> and draws them as a horizontal
bar chart. Each bar starts where the previous one ends, so the chart reads as
one stacked run of every word in order.

With a single format, -o names the output file. With several formats, -o is a
base path and each file gets its format as extension. Without -o the files are
named after the last element of <path>.`,
		Example: `  wordstack render /data/books
  wordstack render /data/books -f svg,png -o out/books --order count --top 20
  wordstack render ./notes --local --mode baseline`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.explicit = explicitKeys(cmd)
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	opts.source.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg, png, json (comma-separated)")
	cmd.Flags().StringVar(&opts.order, "order", "", "word order: insertion, alphabetical, count")
	cmd.Flags().StringVar(&opts.mode, "mode", "", "bar placement: stacked, baseline")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "chart width in pixels")
	cmd.Flags().Float64Var(&opts.barHeight, "bar-height", 0, "height per word in pixels")
	cmd.Flags().IntVar(&opts.top, "top", 0, "keep only the N most frequent words (0 = all)")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.static, "static", false, "omit the hover tooltip script from SVG output")
	cmd.Flags().BoolVar(&opts.noLegend, "no-legend", false, "omit the summary legend")
	cmd.Flags().StringVar(&opts.id, "id", "", "fixed chart id of letters, digits, - and _ (random by default)")

	return cmd
}

// pipelineOptions merges flags and config into pipeline options.
func (c *CLI) pipelineOptions(path string, opts renderOpts) (pipeline.Options, error) {
	formats, err := pipeline.ParseFormats(opts.formats)
	if err != nil {
		return pipeline.Options{}, err
	}
	po := pipeline.Options{
		Path:      path,
		Order:     opts.order,
		Top:       opts.top,
		Mode:      opts.mode,
		Width:     opts.width,
		BarHeight: opts.barHeight,
		Formats:   formats,
		Scale:     opts.scale,
		Static:    opts.static,
		NoLegend:  opts.noLegend,
		ChartID:   opts.id,
		Logger:    c.Logger,
	}
	c.Config.Apply(&po, opts.explicit...)
	return po, po.ValidateAndSetDefaults()
}

func (c *CLI) runRender(ctx context.Context, path string, opts renderOpts) error {
	logger := loggerFromContext(ctx)

	po, err := c.pipelineOptions(path, opts)
	if err != nil {
		return err
	}
	runner, err := c.newRunner(opts.source)
	if err != nil {
		return err
	}

	logger.Debugf("Rendering %s as %v", path, po.Formats)
	spinner := newSpinner(ctx, c.errOut, fmt.Sprintf("Fetching words for %s...", path))
	spinner.Start()
	result, err := runner.Execute(ctx, po)
	spinner.Stop()
	if err != nil {
		return err
	}

	paths := outputPaths(opts.output, path, po.Formats)
	for _, format := range po.Formats {
		if err := writeFile(paths[format], result.Artifacts[format]); err != nil {
			return err
		}
		logger.Debugf("Wrote %s: %d bytes", paths[format], len(result.Artifacts[format]))
	}

	if result.Stats.Distinct == 0 {
		printWarning(c.errOut, "No words found under %s", path)
	}
	printSuccess(c.errOut, "Rendered %s", path)
	for _, format := range po.Formats {
		printFile(c.errOut, paths[format])
	}
	printStats(c.errOut, result.Stats.Shown, result.Stats.Distinct, result.Stats.Total)
	return nil
}

// outputPaths maps each format to its file. A single format writes to
// output verbatim when given.
func outputPaths(output, input string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

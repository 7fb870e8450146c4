package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordstack/pkg/histogram"
	"github.com/matzehuels/wordstack/pkg/pipeline"
)

type wordsOpts struct {
	source   sourceFlags
	order    string
	top      int
	json     bool
	explicit []string
}

func (c *CLI) wordsCommand() *cobra.Command {
	var opts wordsOpts

	cmd := &cobra.Command{
		Use:   "words <path>",
		Short: "Print the laid-out words of a path",
		Long: `Words fetches the word counts under <path>, orders them and prints one row
per word with its count and the offset where its bar starts.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.explicit = explicitKeys(cmd)
			return c.runWords(cmd.Context(), args[0], opts)
		},
	}

	opts.source.register(cmd)
	cmd.Flags().StringVar(&opts.order, "order", "", "word order: insertion, alphabetical, count")
	cmd.Flags().IntVar(&opts.top, "top", 0, "keep only the N most frequent words (0 = all)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the entries as JSON")

	return cmd
}

func (c *CLI) runWords(ctx context.Context, path string, opts wordsOpts) error {
	po := pipeline.Options{Path: path, Order: opts.order, Top: opts.top, Logger: c.Logger}
	c.Config.Apply(&po, opts.explicit...)

	runner, err := c.newRunner(opts.source)
	if err != nil {
		return err
	}
	prog := newProgress(loggerFromContext(ctx))
	result, err := runner.Prepare(ctx, po)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Laid out %d words", len(result.Entries)))

	if opts.json {
		return writeEntriesJSON(c.out, result.Entries)
	}
	if len(result.Entries) == 0 {
		printWarning(c.errOut, "No words found under %s", path)
		return nil
	}
	fmt.Fprintln(c.out, entriesTable(result.Entries))
	printStats(c.out, result.Stats.Shown, result.Stats.Distinct, result.Stats.Total)
	return nil
}

type entryJSON struct {
	Word   string `json:"word"`
	Count  int    `json:"count"`
	Offset int    `json:"offset"`
}

func writeEntriesJSON(w io.Writer, entries []histogram.Entry) error {
	out := make([]entryJSON, len(entries))
	for i, e := range entries {
		out[i] = entryJSON{Word: e.Label, Count: e.Length, Offset: e.Offset}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// entriesTable renders entries as a rounded lipgloss table.
func entriesTable(entries []histogram.Entry) string {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			e.Label,
			strconv.Itoa(e.Length),
			strconv.Itoa(e.Offset),
			strconv.Itoa(e.End()),
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("#", "Word", "Count", "Offset", "End").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == -1:
				return styleHeader.Padding(0, 1)
			case col == 0:
				return base.Foreground(colorDim)
			case col == 1:
				return base.Foreground(colorWhite)
			default:
				return base.Foreground(colorCyan).Align(lipgloss.Right)
			}
		}).
		Render()
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordstack/pkg/histogram"
	"github.com/matzehuels/wordstack/pkg/pipeline"
	"github.com/matzehuels/wordstack/pkg/render/chart"
)

const (
	viewMinWidth  = 40
	viewMinHeight = 5
	maxLabelWidth = 18
)

var (
	viewLabelStyle    = lipgloss.NewStyle().Foreground(colorGray)
	viewSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	viewStatusStyle   = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
)

type viewOpts struct {
	source   sourceFlags
	order    string
	mode     string
	top      int
	explicit []string
}

func (c *CLI) viewCommand() *cobra.Command {
	var opts viewOpts

	cmd := &cobra.Command{
		Use:   "view <path>",
		Short: "Browse the word histogram of a path in the terminal",
		Long: `View draws the histogram in the terminal. Use up/down (or k/j) to move the
highlight between bars; the status line shows the highlighted word and its
count. Press q to quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.explicit = explicitKeys(cmd)
			return c.runView(cmd.Context(), args[0], opts)
		},
	}

	opts.source.register(cmd)
	cmd.Flags().StringVar(&opts.order, "order", "", "word order: insertion, alphabetical, count")
	cmd.Flags().StringVar(&opts.mode, "mode", "", "bar placement: stacked, baseline")
	cmd.Flags().IntVar(&opts.top, "top", 0, "keep only the N most frequent words (0 = all)")

	return cmd
}

func (c *CLI) runView(ctx context.Context, path string, opts viewOpts) error {
	po := pipeline.Options{Path: path, Order: opts.order, Mode: opts.mode, Top: opts.top, Logger: c.Logger}
	c.Config.Apply(&po, opts.explicit...)
	if err := po.ValidateAndSetDefaults(); err != nil {
		return err
	}
	mode, _ := chart.ParseMode(po.Mode)

	runner, err := c.newRunner(opts.source)
	if err != nil {
		return err
	}
	spinner := newSpinner(ctx, c.errOut, fmt.Sprintf("Fetching words for %s...", path))
	spinner.Start()
	result, err := runner.Prepare(ctx, po)
	spinner.Stop()
	if err != nil {
		return err
	}
	if len(result.Entries) == 0 {
		printWarning(c.errOut, "No words found under %s", path)
		return nil
	}

	p := tea.NewProgram(newChartModel(path, result.Entries, mode), tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return nil
}

// =============================================================================
// chartModel - interactive terminal histogram
// =============================================================================

// chartModel is the bubbletea model behind the view command. The cursor
// stands in for the pointer: the highlighted bar is the one "hovered".
type chartModel struct {
	title   string
	entries []histogram.Entry
	mode    chart.Mode
	domain  int

	cursor int
	offset int // first visible row
	width  int
	height int // visible rows
}

func newChartModel(title string, entries []histogram.Entry, mode chart.Mode) chartModel {
	domain := histogram.Total(entries)
	if mode == chart.ModeBaseline {
		domain = histogram.MaxLength(entries)
	}
	return chartModel{
		title:   title,
		entries: entries,
		mode:    mode,
		domain:  domain,
		width:   80,
		height:  20,
	}
}

func (m chartModel) Init() tea.Cmd {
	return nil
}

func (m chartModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			m.cursor = max(len(m.entries)-1, 0)
		}
	case tea.WindowSizeMsg:
		m.width = max(msg.Width, viewMinWidth)
		m.height = max(msg.Height-6, viewMinHeight)
	}

	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
	return m, nil
}

func (m chartModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ move  q quit"))
	b.WriteString("\n\n")

	labelWidth := m.labelWidth()
	barWidth := max(m.width-labelWidth-3, 10)

	end := min(m.offset+m.height, len(m.entries))
	for i := m.offset; i < end; i++ {
		e := m.entries[i]
		label := truncate(e.Label, labelWidth)
		label += strings.Repeat(" ", labelWidth-lipgloss.Width(label))

		start, cells := m.barCells(e, barWidth)
		bar := lipgloss.NewStyle().Foreground(lipgloss.Color(chart.Category10[i%len(chart.Category10)]))

		marker := "  "
		labelStyle := viewLabelStyle
		if i == m.cursor {
			marker = "▸ "
			labelStyle = viewSelectedStyle
			bar = bar.Bold(true).Reverse(true)
		}
		b.WriteString(marker)
		b.WriteString(labelStyle.Render(label))
		b.WriteString(" ")
		b.WriteString(strings.Repeat(" ", start))
		b.WriteString(bar.Render(strings.Repeat("█", cells)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(viewStatusStyle.Render(m.status()))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.entries))))
	return b.String()
}

// status is the tooltip text of the highlighted bar.
func (m chartModel) status() string {
	if len(m.entries) == 0 {
		return ""
	}
	e := m.entries[m.cursor]
	return chart.TooltipText(e.Label, e.Length)
}

// barCells returns the start column and width of e within width columns.
func (m chartModel) barCells(e histogram.Entry, width int) (start, cells int) {
	if m.domain <= 0 {
		return 0, 0
	}
	scale := float64(width) / float64(m.domain)
	from := 0
	if m.mode != chart.ModeBaseline {
		from = e.Offset
	}
	x0 := int(math.Round(float64(from) * scale))
	x1 := int(math.Round(float64(from+e.Length) * scale))
	return x0, max(x1-x0, 0)
}

func (m chartModel) labelWidth() int {
	w := 1
	for _, e := range m.entries {
		w = max(w, lipgloss.Width(e.Label))
	}
	return min(w, maxLabelWidth)
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > width {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}

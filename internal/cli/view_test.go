package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/wordstack/pkg/histogram"
	"github.com/matzehuels/wordstack/pkg/render/chart"
)

var viewEntries = []histogram.Entry{
	{Label: "cat", Length: 3, Offset: 0},
	{Label: "dog", Length: 5, Offset: 3},
	{Label: "eel", Length: 2, Offset: 8},
}

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(m chartModel, msgs ...tea.Msg) (chartModel, tea.Cmd) {
	var cmd tea.Cmd
	var next tea.Model = m
	for _, msg := range msgs {
		next, cmd = next.(chartModel).Update(msg)
	}
	return next.(chartModel), cmd
}

func TestChartModelNavigation(t *testing.T) {
	m := newChartModel("/data", viewEntries, chart.ModeStacked)

	if got := m.status(); got != "word: cat  count: 3" {
		t.Errorf("initial status = %q", got)
	}

	m, _ = update(m, key("down"))
	if got := m.status(); got != "word: dog  count: 5" {
		t.Errorf("status after down = %q", got)
	}

	m, _ = update(m, key("down"), key("down"), key("down"))
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want clamp at 2", m.cursor)
	}

	m, _ = update(m, key("k"), key("up"), key("up"))
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want clamp at 0", m.cursor)
	}

	m, _ = update(m, key("G"))
	if m.cursor != 2 {
		t.Errorf("cursor after G = %d, want 2", m.cursor)
	}
}

func TestChartModelQuit(t *testing.T) {
	m := newChartModel("/data", viewEntries, chart.ModeStacked)
	_, cmd := update(m, key("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestChartModelScrolls(t *testing.T) {
	entries := make([]histogram.Entry, 30)
	for i := range entries {
		entries[i] = histogram.Entry{Label: "w", Length: 1, Offset: i}
	}
	m := newChartModel("/data", entries, chart.ModeStacked)
	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 16})
	if m.height != 10 {
		t.Fatalf("height = %d, want 10", m.height)
	}

	for range 15 {
		m, _ = update(m, key("j"))
	}
	if m.offset != 6 {
		t.Errorf("offset = %d, want 6", m.offset)
	}
	if !strings.Contains(m.View(), "[16/30]") {
		t.Error("view should show cursor position 16/30")
	}
}

func TestChartModelBarCells(t *testing.T) {
	stacked := newChartModel("/data", viewEntries, chart.ModeStacked)
	tests := []struct {
		entry       histogram.Entry
		start, size int
	}{
		{viewEntries[0], 0, 30},
		{viewEntries[1], 30, 50},
		{viewEntries[2], 80, 20},
	}
	for _, tt := range tests {
		start, size := stacked.barCells(tt.entry, 100)
		if start != tt.start || size != tt.size {
			t.Errorf("stacked barCells(%s) = %d,%d want %d,%d", tt.entry.Label, start, size, tt.start, tt.size)
		}
	}

	baseline := newChartModel("/data", viewEntries, chart.ModeBaseline)
	start, size := baseline.barCells(viewEntries[1], 100)
	if start != 0 || size != 100 {
		t.Errorf("baseline barCells(dog) = %d,%d want 0,100", start, size)
	}

	zero := newChartModel("/data", []histogram.Entry{{Label: "a"}}, chart.ModeStacked)
	if start, size := zero.barCells(zero.entries[0], 100); start != 0 || size != 0 {
		t.Errorf("zero-domain barCells = %d,%d", start, size)
	}
}

func TestChartModelView(t *testing.T) {
	m := newChartModel("/data/books", viewEntries, chart.ModeStacked)
	v := m.View()
	for _, want := range []string{"/data/books", "cat", "dog", "eel", "word: cat  count: 3", "▸"} {
		if !strings.Contains(v, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"cat", 5, "cat"},
		{"elephant", 5, "elep…"},
		{"äöüäöü", 4, "äöü…"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

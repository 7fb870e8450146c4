package chart

import (
	"strings"
	"testing"

	"github.com/matzehuels/wordstack/pkg/errors"
	"github.com/matzehuels/wordstack/pkg/histogram"
)

func catDog(t *testing.T) []histogram.Entry {
	t.Helper()
	entries, err := histogram.Transform([]histogram.WordCount{{Word: "cat", Count: 3}, {Word: "dog", Count: 5}})
	if err != nil {
		t.Fatal(err)
	}
	return entries
}

func TestBuildStacked(t *testing.T) {
	c := Build(catDog(t), DefaultDimensions(), WithID("test"))

	if c.ID != "test" || c.Mode != ModeStacked {
		t.Errorf("ID/Mode = %q/%q", c.ID, c.Mode)
	}
	if c.PlotWidth != 696 || c.PlotHeight != 64 {
		t.Errorf("plot = %vx%v, want 696x64", c.PlotWidth, c.PlotHeight)
	}
	if c.Width != 1000 || c.Height != 100 {
		t.Errorf("size = %vx%v, want 1000x100", c.Width, c.Height)
	}
	if c.Domain != 8 {
		t.Errorf("Domain = %v, want 8", c.Domain)
	}
	if len(c.Bars) != 2 {
		t.Fatalf("len(Bars) = %d, want 2", len(c.Bars))
	}

	cat, dog := c.Bars[0], c.Bars[1]
	if cat.Label != "cat" || cat.X != 0 || cat.Width != 261 {
		t.Errorf("cat bar = %+v", cat)
	}
	if dog.Label != "dog" || dog.X != 261 || dog.Width != 435 {
		t.Errorf("dog bar = %+v", dog)
	}
	if dog.X+dog.Width != c.PlotWidth {
		t.Errorf("last bar ends at %v, want %v", dog.X+dog.Width, c.PlotWidth)
	}
	if cat.Y != 4 || dog.Y != 34 || cat.Height != 27 {
		t.Errorf("band layout y=%v,%v h=%v", cat.Y, dog.Y, cat.Height)
	}
	if cat.Color != Category10[0] || dog.Color != Category10[1] {
		t.Errorf("colors = %s, %s", cat.Color, dog.Color)
	}
	if len(c.Ticks) != 9 || c.Ticks[8].Label != "8" || c.Ticks[8].X != 696 {
		t.Errorf("ticks = %+v", c.Ticks)
	}
	if c.Summary.Words != 8 || c.Summary.Distinct != 2 {
		t.Errorf("summary = %+v", c.Summary)
	}
}

func TestBuildBaseline(t *testing.T) {
	c := Build(catDog(t), DefaultDimensions(), WithMode(ModeBaseline))

	if c.Domain != 5 {
		t.Errorf("Domain = %v, want 5", c.Domain)
	}
	for _, b := range c.Bars {
		if b.X != 0 {
			t.Errorf("bar %s starts at %v, want 0", b.Label, b.X)
		}
		if b.Width > c.PlotWidth {
			t.Errorf("bar %s wider than plot", b.Label)
		}
	}
	if c.Bars[1].Width != c.PlotWidth {
		t.Errorf("largest bar width = %v, want %v", c.Bars[1].Width, c.PlotWidth)
	}
	if c.Bars[1].Offset != 3 {
		t.Errorf("offset not carried: %+v", c.Bars[1])
	}
}

func TestBuildEmpty(t *testing.T) {
	c := Build(nil, DefaultDimensions())

	if c.Bars == nil || len(c.Bars) != 0 {
		t.Errorf("Bars = %#v, want empty", c.Bars)
	}
	if len(c.Ticks) != 0 {
		t.Errorf("Ticks = %v, want none", c.Ticks)
	}
	if c.PlotHeight != 0 || c.Height != 36 {
		t.Errorf("height plot=%v total=%v, want 0/36", c.PlotHeight, c.Height)
	}
	if c.ID == "" {
		t.Error("generated ID is empty")
	}
}

func TestBuildZeroCounts(t *testing.T) {
	entries, _ := histogram.Transform([]histogram.WordCount{{Word: "a", Count: 0}, {Word: "b", Count: 0}})
	c := Build(entries, DefaultDimensions())
	for _, b := range c.Bars {
		if b.X != 0 || b.Width != 0 {
			t.Errorf("bar %+v should be empty", b)
		}
	}
}

func TestBuildBarsStayInPlot(t *testing.T) {
	words := make([]histogram.WordCount, 40)
	for i := range words {
		words[i] = histogram.WordCount{Word: string(rune('a' + i%26)), Count: (i*37)%11 + 1}
	}
	entries, err := histogram.Transform(words)
	if err != nil {
		t.Fatal(err)
	}

	for _, mode := range Modes {
		c := Build(entries, DefaultDimensions(), WithMode(mode))
		for i, b := range c.Bars {
			if b.X < 0 || b.X+b.Width > c.PlotWidth+1e-9 {
				t.Fatalf("%s: bar %d spans [%v, %v] outside plot width %v", mode, i, b.X, b.X+b.Width, c.PlotWidth)
			}
			if b.Y < 0 || b.Y+b.Height > c.PlotHeight {
				t.Fatalf("%s: bar %d spans y [%v, %v] outside plot height %v", mode, i, b.Y, b.Y+b.Height, c.PlotHeight)
			}
			if i > 0 && mode == ModeStacked && b.X < c.Bars[i-1].X {
				t.Fatalf("stacked bars move backwards at %d", i)
			}
		}
	}
}

func TestBuildOptions(t *testing.T) {
	dims := Dimensions{Width: 600, BarHeight: 20, Legend: 0, Margins: Margins{Left: 50}}
	c := Build(catDog(t), dims, WithTitle("/data"), WithPalette([]string{"#000"}), WithMode("bogus"))

	if c.Title != "/data" {
		t.Errorf("Title = %q", c.Title)
	}
	if c.Mode != ModeStacked {
		t.Errorf("unknown mode should fall back to stacked, got %q", c.Mode)
	}
	if c.PlotWidth != 550 || c.PlotHeight != 40 {
		t.Errorf("plot = %vx%v, want 550x40", c.PlotWidth, c.PlotHeight)
	}
	for _, b := range c.Bars {
		if b.Color != "#000" {
			t.Errorf("bar color = %s, want #000", b.Color)
		}
	}
	if c.LegendX() != 600 {
		t.Errorf("LegendX() = %v, want 600", c.LegendX())
	}
}

func TestValidateID(t *testing.T) {
	for _, id := range []string{"", "abc", "chart-1_B"} {
		if err := ValidateID(id); err != nil {
			t.Errorf("ValidateID(%q) error: %v", id, err)
		}
	}
	for _, id := range []string{"it's", "a b", "<x>", "\"q\"", "é", strings.Repeat("a", 65)} {
		if err := ValidateID(id); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("ValidateID(%q) error = %v, want INVALID_INPUT", id, err)
		}
	}
}

func TestBuildZeroDimensionsUseDefaults(t *testing.T) {
	c := Build(catDog(t), Dimensions{})
	if c.Width != DefaultWidth {
		t.Errorf("Width = %v, want %v", c.Width, DefaultWidth)
	}
	if c.PlotHeight != 2*DefaultBarHeight {
		t.Errorf("PlotHeight = %v, want %v", c.PlotHeight, 2*DefaultBarHeight)
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes {
		got, err := ParseMode(string(m))
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %q, %v", m, got, err)
		}
	}
	if _, err := ParseMode("vertical"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("ParseMode(vertical) error = %v, want INVALID_INPUT", err)
	}
}

func TestTooltipText(t *testing.T) {
	if got := TooltipText("cat", 3); got != "word: cat  count: 3" {
		t.Errorf("TooltipText() = %q", got)
	}
	b := Bar{Label: "dog", Count: 5}
	if got := b.Tooltip(); got != "word: dog  count: 5" {
		t.Errorf("Tooltip() = %q", got)
	}
}
